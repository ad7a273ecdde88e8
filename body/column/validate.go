package column

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyKey     = errors.New("column key is empty")
	ErrDuplicateKey = errors.New("column key is duplicated")
	ErrInvalidFixed = errors.New("column fixed side is invalid")
	ErrInvalidKind  = errors.New("column kind is invalid")
	ErrInvalidAlign = errors.New("column alignment is invalid")
)

// Validate checks a column configuration before it reaches the body. The
// body itself never validates; it renders whatever it is given.
func Validate(columns []Descriptor) error {
	seen := make(map[Key]int, len(columns))
	for i := range columns {
		c := &columns[i]
		if c.Key == "" {
			return fmt.Errorf("column %d: %w", i, ErrEmptyKey)
		}
		if prev, ok := seen[c.Key]; ok {
			return fmt.Errorf("column %d %q (first seen at %d): %w",
				i, c.Key, prev, ErrDuplicateKey)
		}
		seen[c.Key] = i

		switch c.Fixed {
		case FixedNone, FixedLeft, FixedRight:
		default:
			return fmt.Errorf("column %q: %v: %w", c.Key, c.Fixed, ErrInvalidFixed)
		}
		switch c.Kind {
		case KindGeneric, KindSelection:
		default:
			return fmt.Errorf("column %q: %v: %w", c.Key, c.Kind, ErrInvalidKind)
		}
		switch c.Align {
		case AlignNone, AlignLeft, AlignCenter, AlignRight:
		default:
			return fmt.Errorf("column %q: %q: %w", c.Key, c.Align, ErrInvalidAlign)
		}
	}
	return nil
}
