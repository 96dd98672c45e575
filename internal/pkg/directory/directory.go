// Package directory holds the address book, conversations and recent calls
// shown by the phone UI, and resolves numbers to contacts for caller ID.
package directory

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/endorses/lippyphone/internal/pkg/phonematcher"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleYAML []byte

// Status is a contact's presence
type Status string

const (
	StatusOnline  Status = "online"
	StatusBusy    Status = "busy"
	StatusOffline Status = "offline"
)

// CallType is the direction of a logged call
type CallType string

const (
	CallIncoming CallType = "incoming"
	CallOutgoing CallType = "outgoing"
	CallMissed   CallType = "missed"
)

// Recording references an audio file captured during a call
type Recording struct {
	URL      string `yaml:"url" json:"url"`
	Duration string `yaml:"duration,omitempty" json:"duration,omitempty"`
}

// CallRecord is one entry of a contact's call history
type CallRecord struct {
	ID        string     `yaml:"id" json:"id"`
	Type      CallType   `yaml:"type" json:"type"`
	Duration  string     `yaml:"duration,omitempty" json:"duration,omitempty"`
	At        time.Time  `yaml:"at" json:"at"`
	Recording *Recording `yaml:"recording,omitempty" json:"recording,omitempty"`
}

// Contact is an address book entry
type Contact struct {
	ID         string       `yaml:"id" json:"id"`
	Name       string       `yaml:"name" json:"name"`
	Email      string       `yaml:"email,omitempty" json:"email,omitempty"`
	Phone      string       `yaml:"phone" json:"phone"`
	Avatar     string       `yaml:"avatar,omitempty" json:"avatar,omitempty"`
	Status     Status       `yaml:"status,omitempty" json:"status,omitempty"`
	Department string       `yaml:"department,omitempty" json:"department,omitempty"`
	Title      string       `yaml:"title,omitempty" json:"title,omitempty"`
	Favorite   bool         `yaml:"favorite,omitempty" json:"favorite,omitempty"`
	History    []CallRecord `yaml:"history,omitempty" json:"history,omitempty"`
}

// Initials returns up to two upper-case initials for avatar fallbacks
func (c Contact) Initials() string {
	return Initials(c.Name)
}

// Initials returns up to two upper-case initials of name
func Initials(name string) string {
	var out []rune
	for _, f := range strings.Fields(name) {
		out = append(out, []rune(strings.ToUpper(f))[0])
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

// Message is one chat message
type Message struct {
	ID     string    `yaml:"id" json:"id"`
	FromMe bool      `yaml:"from_me" json:"from_me"`
	Text   string    `yaml:"text" json:"text"`
	At     time.Time `yaml:"at" json:"at"`
}

// Conversation is a chat thread with a contact or group
type Conversation struct {
	ID        string    `yaml:"id" json:"id"`
	Name      string    `yaml:"name" json:"name"`
	ContactID string    `yaml:"contact_id,omitempty" json:"contact_id,omitempty"`
	Avatar    string    `yaml:"avatar,omitempty" json:"avatar,omitempty"`
	Unread    int       `yaml:"unread,omitempty" json:"unread,omitempty"`
	Online    bool      `yaml:"online,omitempty" json:"online,omitempty"`
	Messages  []Message `yaml:"messages,omitempty" json:"messages,omitempty"`
}

// LastMessage returns the newest message, if any
func (c Conversation) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// RecentCall is an entry of the dialer's recent calls list
type RecentCall struct {
	ID       string    `yaml:"id" json:"id"`
	Name     string    `yaml:"name" json:"name"`
	Number   string    `yaml:"number" json:"number"`
	Avatar   string    `yaml:"avatar,omitempty" json:"avatar,omitempty"`
	Type     CallType  `yaml:"type" json:"type"`
	Duration string    `yaml:"duration,omitempty" json:"duration,omitempty"`
	At       time.Time `yaml:"at" json:"at"`
}

// document is the on-disk layout
type document struct {
	Contacts      []Contact      `yaml:"contacts"`
	Conversations []Conversation `yaml:"conversations"`
	Recents       []RecentCall   `yaml:"recents"`
}

// Directory is a loaded address book. Contacts and recents are read-only
// after load; conversations accept appended messages.
type Directory struct {
	source   string
	contacts []Contact
	recents  []RecentCall
	matcher  *phonematcher.Matcher

	mu            sync.RWMutex
	conversations []Conversation
}

// ErrNotFound is returned for unknown contact or conversation ids
var ErrNotFound = errors.New("not found")

// Sample returns the embedded sample directory
func Sample() (*Directory, error) {
	d, err := Parse(bytes.NewReader(sampleYAML))
	if err != nil {
		return nil, fmt.Errorf("embedded sample: %w", err)
	}
	d.source = "embedded"
	return d, nil
}

// Load reads and validates a directory file
func Load(path string) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory file: %w", err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.source = path
	return d, nil
}

// Open loads path, or the embedded sample when path is empty
func Open(path string) (*Directory, error) {
	if path == "" {
		return Sample()
	}
	return Load(path)
}

// Parse decodes and validates a directory document. Unknown fields are
// rejected so typos in hand-written files surface early.
func Parse(r io.Reader) (*Directory, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse directory: %w", err)
	}
	d := New(doc.Contacts, doc.Conversations, doc.Recents)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// New builds a directory from already decoded data without validating it
func New(contacts []Contact, conversations []Conversation, recents []RecentCall) *Directory {
	d := &Directory{
		contacts:      slices.Clone(contacts),
		recents:       slices.Clone(recents),
		conversations: slices.Clone(conversations),
		matcher:       phonematcher.New(),
	}
	numbers := make(map[string]string, len(contacts))
	for _, c := range contacts {
		if c.Phone != "" {
			numbers[c.Phone] = c.ID
		}
	}
	d.matcher.UpdateEntries(numbers)
	return d
}

// Validate reports every structural problem in the directory
func (d *Directory) Validate() error {
	var errs []error

	seen := make(map[string]bool)
	for i, c := range d.contacts {
		switch {
		case c.ID == "":
			errs = append(errs, fmt.Errorf("contact %d: missing id", i))
		case seen[c.ID]:
			errs = append(errs, fmt.Errorf("contact %q: duplicate id", c.ID))
		}
		seen[c.ID] = true
		if strings.TrimSpace(c.Name) == "" {
			errs = append(errs, fmt.Errorf("contact %q: missing name", c.ID))
		}
		switch c.Status {
		case "", StatusOnline, StatusBusy, StatusOffline:
		default:
			errs = append(errs, fmt.Errorf("contact %q: unknown status %q", c.ID, c.Status))
		}
		for _, h := range c.History {
			if !validCallType(h.Type) {
				errs = append(errs, fmt.Errorf("contact %q history %q: unknown call type %q", c.ID, h.ID, h.Type))
			}
		}
	}

	d.mu.RLock()
	convSeen := make(map[string]bool)
	for i, conv := range d.conversations {
		switch {
		case conv.ID == "":
			errs = append(errs, fmt.Errorf("conversation %d: missing id", i))
		case convSeen[conv.ID]:
			errs = append(errs, fmt.Errorf("conversation %q: duplicate id", conv.ID))
		}
		convSeen[conv.ID] = true
		if strings.TrimSpace(conv.Name) == "" {
			errs = append(errs, fmt.Errorf("conversation %q: missing name", conv.ID))
		}
		if conv.ContactID != "" && !seen[conv.ContactID] {
			errs = append(errs, fmt.Errorf("conversation %q: unknown contact %q", conv.ID, conv.ContactID))
		}
	}
	d.mu.RUnlock()

	for i, r := range d.recents {
		if r.Number == "" {
			errs = append(errs, fmt.Errorf("recent call %d: missing number", i))
		}
		if !validCallType(r.Type) {
			errs = append(errs, fmt.Errorf("recent call %d: unknown call type %q", i, r.Type))
		}
	}

	return errors.Join(errs...)
}

func validCallType(t CallType) bool {
	switch t {
	case CallIncoming, CallOutgoing, CallMissed:
		return true
	}
	return false
}

// Source names where the directory was loaded from
func (d *Directory) Source() string {
	return d.source
}

// Contacts returns all contacts in file order
func (d *Directory) Contacts() []Contact {
	return slices.Clone(d.contacts)
}

// Recents returns the recent calls in file order
func (d *Directory) Recents() []RecentCall {
	return slices.Clone(d.recents)
}

// Contact returns the contact with the given id
func (d *Directory) Contact(id string) (Contact, error) {
	for _, c := range d.contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return Contact{}, fmt.Errorf("contact %q: %w", id, ErrNotFound)
}

// Lookup resolves a phone number in any common notation to a contact
func (d *Directory) Lookup(number string) (Contact, bool) {
	id, ok := d.matcher.Lookup(number)
	if !ok {
		return Contact{}, false
	}
	c, err := d.Contact(id)
	return c, err == nil
}

// Search returns contacts whose name, email or department contains query,
// case-insensitively. An empty query returns every contact.
func (d *Directory) Search(query string) []Contact {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return d.Contacts()
	}
	var out []Contact
	for _, c := range d.contacts {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Email), q) ||
			strings.Contains(strings.ToLower(c.Department), q) {
			out = append(out, c)
		}
	}
	return out
}

// Conversations returns a copy of all conversations
func (d *Directory) Conversations() []Conversation {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Conversation, len(d.conversations))
	for i, c := range d.conversations {
		c.Messages = slices.Clone(c.Messages)
		out[i] = c
	}
	return out
}

// Conversation returns a copy of the conversation with the given id
func (d *Directory) Conversation(id string) (Conversation, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, c := range d.conversations {
		if c.ID == id {
			c.Messages = slices.Clone(c.Messages)
			return c, nil
		}
	}
	return Conversation{}, fmt.Errorf("conversation %q: %w", id, ErrNotFound)
}

// AppendMessage adds a message sent by the user to a conversation. Messages
// live in memory only.
func (d *Directory) AppendMessage(conversationID, text string, at time.Time) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, errors.New("empty message")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.conversations {
		if d.conversations[i].ID != conversationID {
			continue
		}
		m := Message{ID: uuid.NewString(), FromMe: true, Text: text, At: at}
		d.conversations[i].Messages = append(d.conversations[i].Messages, m)
		return m, nil
	}
	return Message{}, fmt.Errorf("conversation %q: %w", conversationID, ErrNotFound)
}

// MarkRead clears the unread counter of a conversation
func (d *Directory) MarkRead(conversationID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.conversations {
		if d.conversations[i].ID == conversationID {
			d.conversations[i].Unread = 0
			return
		}
	}
}
