package seq

import (
	"log"

	"github.com/sarchlab/seq/id"
	"github.com/sarchlab/seq/naming"
)

// Builder is a builder for Sequence.
type Builder[T any] struct {
	capacity int
	elements []T
}

// WithCapacity defines the fixed capacity of the sequence.
func (b Builder[T]) WithCapacity(capacity int) Builder[T] {
	b.capacity = capacity
	return b
}

// WithElements defines the initial contents of the sequence. Elements
// beyond the capacity are silently dropped, following the bulk-copy
// truncation behavior.
func (b Builder[T]) WithElements(elements ...T) Builder[T] {
	b.elements = elements
	return b
}

// Build builds a new Sequence.
func (b Builder[T]) Build(name string) Sequence[T] {
	naming.MustBeValid(name)

	if b.capacity < 0 {
		log.Panic("sequence capacity must not be negative")
	}

	s := &sequenceImpl[T]{
		NamedBase: naming.MakeNamedBase(name),
		id:        id.GetGenerator().Generate(),
		elements:  make([]T, b.capacity),
	}

	s.Assign(b.elements...)

	return s
}
