package perm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/segmentio/fasthash/jody"
)

// ErrDuplicateElement is returned by Validate when an element repeats.
var ErrDuplicateElement = fmt.Errorf("duplicate element: %w", ErrInvalidArgument)

// Sequence is an ordered list of distinct unsigned integers.
// It implements the pflag.Value interface so it can be set from a
// comma-separated command line flag.
type Sequence []uint64

// Len returns the length of the sequence.
func (s Sequence) Len() int {
	return len(s)
}

// Clone returns a copy of the sequence.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Equal reports whether both sequences hold the same elements in the same order.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Hash returns an order-sensitive hash of the sequence.
func (s Sequence) Hash() uint64 {
	h := jody.HashUint64(uint64(len(s)))
	for _, x := range s {
		h = jody.AddUint64(h, x)
	}
	return h
}

// Validate checks that the sequence can be permuted: it must be non-empty, no
// longer than MaxLength, and its elements must be distinct.
func (s Sequence) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("sequence is empty: %w", ErrInvalidArgument)
	}
	if len(s) > MaxLength {
		return fmt.Errorf("sequence length %d exceeds maximum %d: %w", len(s), MaxLength, ErrInvalidArgument)
	}
	seen := make(map[uint64]int, len(s))
	for i, x := range s {
		if j, ok := seen[x]; ok {
			return fmt.Errorf("element %d at positions %d and %d: %w", x, j, i, ErrDuplicateElement)
		}
		seen[x] = i
	}
	return nil
}

// String formats the sequence as a bracketed, comma-separated list, e.g. "[1, 2, 3]".
func (s Sequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatUint(x, 10))
	}
	b.WriteByte(']')
	return b.String()
}

// Set parses a comma-separated list into the sequence (part of pflag.Value).
func (s *Sequence) Set(value string) error {
	if len(*s) > 0 {
		return errors.New("sequence flag already set")
	}
	parsed, err := ParseSequence(value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type names the flag value type (part of pflag.Value).
func (s *Sequence) Type() string {
	return "sequence"
}

// ParseSequence parses a list such as "1,2,3" or "[1, 2, 3]".
func ParseSequence(value string) (Sequence, error) {
	trimmed := strings.TrimSpace(value)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")
	if strings.TrimSpace(trimmed) == "" {
		return nil, fmt.Errorf("parse sequence %q: no elements: %w", value, ErrInvalidArgument)
	}

	fields := strings.Split(trimmed, ",")
	out := make(Sequence, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseUint(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse sequence %q: element %d: %w", value, i, err)
		}
		out[i] = x
	}
	return out, nil
}
