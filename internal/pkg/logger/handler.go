package logger

import (
	"context"
	"log/slog"
	"sync"
)

type handlerRouter struct {
	mu      sync.RWMutex
	current slog.Handler
}

func (r *handlerRouter) get() slog.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *handlerRouter) set(h slog.Handler) {
	r.mu.Lock()
	r.current = h
	r.mu.Unlock()
}

// handlerOp is a WithAttrs or WithGroup call recorded for replay
type handlerOp struct {
	attrs []slog.Attr
	group string
}

// dynamicHandler resolves the routed handler on every record and replays
// the attrs and groups it was derived with
type dynamicHandler struct {
	router *handlerRouter
	ops    []handlerOp
}

func (h *dynamicHandler) resolve() slog.Handler {
	base := h.router.get()
	for _, op := range h.ops {
		if op.group != "" {
			base = base.WithGroup(op.group)
		} else {
			base = base.WithAttrs(op.attrs)
		}
	}
	return base
}

func (h *dynamicHandler) Enabled(ctx context.Context, l slog.Level) bool {
	if l < level.Level() {
		return false
	}
	return h.router.get().Enabled(ctx, l)
}

func (h *dynamicHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.resolve().Handle(ctx, r)
}

func (h *dynamicHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.with(handlerOp{attrs: attrs})
}

func (h *dynamicHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.with(handlerOp{group: name})
}

func (h *dynamicHandler) with(op handlerOp) *dynamicHandler {
	ops := make([]handlerOp, len(h.ops), len(h.ops)+1)
	copy(ops, h.ops)
	return &dynamicHandler{router: h.router, ops: append(ops, op)}
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
