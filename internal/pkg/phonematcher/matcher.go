// Package phonematcher resolves dialed or displayed phone numbers to
// directory entries by digit-suffix matching. A bloom filter rejects
// unknown numbers before the exact map lookup, so the directory can be
// queried on every keystroke of the dial pad.
//
// Suffix matching works both ways: a registered number may end the observed
// digits, or the observed digits may end a registered number. This lets
// "+1 (555) 123-4567", "555-123-4567" and "0015551234567" resolve to the
// same entry.
package phonematcher

import (
	"slices"
	"sort"
	"sync/atomic"

	"github.com/bits-and-blooms/bloom/v3"
)

// DefaultMinLength is the minimum suffix length to check. Seven digits is a
// local subscriber number; anything shorter is too ambiguous.
const DefaultMinLength = 7

// DefaultBloomFPRate is the target false positive rate for the bloom filter.
const DefaultBloomFPRate = 0.001

// Matcher maps phone numbers to entry keys.
//
// Thread-safe: reads are lock-free via atomic pointer swap.
// Updates rebuild the entire state and atomically swap it in.
type Matcher struct {
	state atomic.Pointer[matcherState]
}

// matcherState holds the immutable matching state.
type matcherState struct {
	bloom     *bloom.BloomFilter
	entries   map[string]string // normalized digits -> key
	suffixes  map[string]string // proper suffixes (>= minLength) -> normalized digits
	lengths   []int             // unique lengths, sorted descending
	minLength int
}

// Result describes a successful lookup
type Result struct {
	// Key is the value registered for the matched number
	Key string
	// Matched is the normalized number that matched
	Matched string
	// Observed is the normalized digits that were checked
	Observed string
}

// New creates a Matcher with DefaultMinLength
func New() *Matcher {
	return NewWithMinLength(DefaultMinLength)
}

// NewWithMinLength creates a Matcher with a custom minimum suffix length
func NewWithMinLength(minLength int) *Matcher {
	m := &Matcher{}
	m.state.Store(emptyState(minLength))
	return m
}

func emptyState(minLength int) *matcherState {
	return &matcherState{
		bloom:     bloom.NewWithEstimates(1, DefaultBloomFPRate),
		entries:   make(map[string]string),
		suffixes:  make(map[string]string),
		minLength: minLength,
	}
}

// UpdateEntries rebuilds the matcher from number -> key pairs. Numbers are
// normalized to digits; numbers without digits are skipped. When two
// numbers normalize to the same digits the lexically smaller key wins so
// the result does not depend on map iteration order.
func (m *Matcher) UpdateEntries(numbers map[string]string) {
	minLength := m.state.Load().minLength
	if len(numbers) == 0 {
		m.state.Store(emptyState(minLength))
		return
	}

	entries := make(map[string]string, len(numbers))
	lengthSet := make(map[int]struct{})
	for number, key := range numbers {
		digits := NormalizeToDigits(number)
		if digits == "" {
			continue
		}
		if prev, ok := entries[digits]; ok && prev <= key {
			continue
		}
		entries[digits] = key
		lengthSet[len(digits)] = struct{}{}
	}

	lengths := make([]int, 0, len(lengthSet))
	for l := range lengthSet {
		lengths = append(lengths, l)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	suffixes := indexSuffixes(entries, minLength)

	bf := bloom.NewWithEstimates(uint((len(entries)+len(suffixes))*10+1), DefaultBloomFPRate)
	for digits := range entries {
		bf.AddString(digits)
	}
	for suffix := range suffixes {
		bf.AddString(suffix)
	}

	m.state.Store(&matcherState{
		bloom:     bf,
		entries:   entries,
		suffixes:  suffixes,
		lengths:   lengths,
		minLength: minLength,
	})
}

// indexSuffixes maps every proper suffix of at least minLength digits to the
// registered number it ends. A suffix shared by several numbers goes to the
// shortest one, then to the lexically smaller digits.
func indexSuffixes(entries map[string]string, minLength int) map[string]string {
	suffixes := make(map[string]string)
	for digits := range entries {
		for k := minLength; k < len(digits); k++ {
			suffix := digits[len(digits)-k:]
			if _, exact := entries[suffix]; exact {
				continue
			}
			if prev, ok := suffixes[suffix]; ok {
				if len(prev) < len(digits) || (len(prev) == len(digits) && prev < digits) {
					continue
				}
			}
			suffixes[suffix] = digits
		}
	}
	return suffixes
}

// UpdatePatterns registers numbers whose key is the normalized number itself
func (m *Matcher) UpdatePatterns(patterns []string) {
	numbers := make(map[string]string, len(patterns))
	for _, p := range patterns {
		numbers[p] = NormalizeToDigits(p)
	}
	m.UpdateEntries(numbers)
}

// Lookup returns the key registered for observed. The longest registered
// number ending observed's digits wins; failing that, a registered number
// that observed's digits end is used.
func (m *Matcher) Lookup(observed string) (key string, ok bool) {
	res, ok := m.state.Load().lookup(observed)
	return res.Key, ok
}

// LookupWithDetails is Lookup returning the matched and observed digits too
func (m *Matcher) LookupWithDetails(observed string) (Result, bool) {
	return m.state.Load().lookup(observed)
}

func (s *matcherState) lookup(observed string) (Result, bool) {
	if len(s.entries) == 0 {
		return Result{}, false
	}

	digits := NormalizeToDigits(observed)
	if len(digits) < s.minLength {
		return Result{}, false
	}

	// Check each candidate suffix length (longest first)
	for _, k := range s.lengths {
		if k > len(digits) {
			continue
		}
		if k < s.minLength {
			break
		}

		suffix := digits[len(digits)-k:]
		if !s.bloom.TestString(suffix) {
			continue
		}
		if key, exists := s.entries[suffix]; exists {
			return Result{Key: key, Matched: suffix, Observed: digits}, true
		}
	}

	// Observed is a shortened form of a registered number
	if !s.bloom.TestString(digits) {
		return Result{}, false
	}
	if full, exists := s.suffixes[digits]; exists {
		return Result{Key: s.entries[full], Matched: full, Observed: digits}, true
	}
	return Result{}, false
}

// Size returns the number of registered numbers
func (m *Matcher) Size() int {
	return len(m.state.Load().entries)
}

// Lengths returns the unique registered lengths (sorted descending)
func (m *Matcher) Lengths() []int {
	return slices.Clone(m.state.Load().lengths)
}

// MinLength returns the minimum suffix length being checked
func (m *Matcher) MinLength() int {
	return m.state.Load().minLength
}
