package seq

import (
	"log"

	"github.com/sarchlab/seq/hooking"
	"github.com/sarchlab/seq/id"
	"github.com/sarchlab/seq/naming"
)

// HookPosSeqAppend marks when an element is appended to a sequence.
var HookPosSeqAppend = &hooking.HookPos{Name: "Sequence Append"}

// HookPosSeqErase marks when an element is erased from a sequence.
var HookPosSeqErase = &hooking.HookPos{Name: "Sequence Erase"}

// HookPosSeqClear marks when a non-empty sequence is cleared.
var HookPosSeqClear = &hooking.HookPos{Name: "Sequence Clear"}

// A Sequence is a fixed-capacity ordered container. Capacity is set at
// construction and never changes; the backing storage is allocated once
// and is owned exclusively by the sequence.
//
// Operations split into two failure categories. Appending to a full
// sequence, checked access out of bounds, and Back on an empty sequence
// are programming errors and terminate the process. Bulk copies that run
// out of capacity and Erase with an out-of-range index are benign: excess
// elements are silently dropped and the erase is a no-op.
//
// A Sequence is not safe for concurrent use without external
// synchronization.
type Sequence[T any] interface {
	naming.Named
	hooking.Hookable

	// ID returns the unique ID of the sequence.
	ID() string

	// IsEmpty returns true if the sequence holds no element.
	IsEmpty() bool

	// Size returns the number of elements currently in the sequence.
	Size() int

	// Capacity returns the fixed capacity of the sequence.
	Capacity() int

	// Elements returns a view over the live elements, in order. The view
	// aliases the backing storage and is invalidated by any mutation of
	// the sequence.
	Elements() []T

	// Data returns the full backing storage, including the slots past
	// Size. Access past Size is not validated; the values there are
	// unspecified and reading or writing them is the caller's
	// responsibility.
	Data() []T

	// Back returns a pointer to the last element. Calling Back on an
	// empty sequence terminates the process.
	Back() *T

	// At returns a pointer to the element at the given index. An index
	// outside [0, Size) terminates the process.
	At(index int) *T

	// Append adds an element at the end. Appending to a full sequence
	// terminates the process.
	Append(element T)

	// Insert copies the given elements to the end, one by one. The
	// position argument is accepted for call-site compatibility with
	// resizable containers and is otherwise ignored. Elements that do
	// not fit are silently dropped.
	Insert(position int, elements ...T)

	// Assign copies the given elements to the end, one by one, with the
	// same truncation behavior as Insert. Assign does not clear the
	// sequence first.
	Assign(elements ...T)

	// Erase removes the element at the given index and shifts the
	// elements after it one slot toward the front. An index outside
	// [0, Size) is a no-op.
	Erase(index int)

	// Clear resets the size to zero. The backing storage is not wiped;
	// stale values remain in memory until overwritten, which matters if
	// the elements carry sensitive data.
	Clear()

	// Clone returns an independent copy of the sequence with a fresh ID.
	// Mutating the clone never affects the original.
	Clone() Sequence[T]
}

// NewSequence creates a sequence with the given name and capacity.
func NewSequence[T any](name string, capacity int) Sequence[T] {
	return Builder[T]{}.WithCapacity(capacity).Build(name)
}

type sequenceImpl[T any] struct {
	hooking.HookableBase
	naming.NamedBase

	id       string
	elements []T
	count    int
}

func (s *sequenceImpl[T]) ID() string {
	return s.id
}

func (s *sequenceImpl[T]) IsEmpty() bool {
	return s.count == 0
}

func (s *sequenceImpl[T]) Size() int {
	return s.count
}

func (s *sequenceImpl[T]) Capacity() int {
	return len(s.elements)
}

func (s *sequenceImpl[T]) Elements() []T {
	return s.elements[:s.count]
}

func (s *sequenceImpl[T]) Data() []T {
	return s.elements
}

func (s *sequenceImpl[T]) Back() *T {
	if s.count == 0 {
		log.Panic("sequence is empty")
	}

	return &s.elements[s.count-1]
}

func (s *sequenceImpl[T]) At(index int) *T {
	if index < 0 || index >= s.count {
		log.Panic("sequence index out of range")
	}

	return &s.elements[index]
}

func (s *sequenceImpl[T]) Append(element T) {
	if s.count >= len(s.elements) {
		log.Panic("sequence overflow")
	}

	s.elements[s.count] = element
	s.count++

	if s.NumHooks() > 0 {
		s.InvokeHook(hooking.HookCtx{
			Domain: s,
			Pos:    HookPosSeqAppend,
			Item:   element,
			Detail: nil,
		})
	}
}

func (s *sequenceImpl[T]) Insert(_ int, elements ...T) {
	for _, element := range elements {
		if s.count >= len(s.elements) {
			return
		}

		s.Append(element)
	}
}

func (s *sequenceImpl[T]) Assign(elements ...T) {
	s.Insert(0, elements...)
}

func (s *sequenceImpl[T]) Erase(index int) {
	if index < 0 || index >= s.count {
		return
	}

	removed := s.elements[index]

	// A capacity-1 sequence never has anything to shift.
	if len(s.elements) > 1 {
		for i := index; i < s.count-1; i++ {
			s.elements[i] = s.elements[i+1]
		}
	}

	s.count--

	if s.NumHooks() > 0 {
		s.InvokeHook(hooking.HookCtx{
			Domain: s,
			Pos:    HookPosSeqErase,
			Item:   removed,
			Detail: index,
		})
	}
}

// Clear only resets the element count. Stale values stay in the backing
// storage until future appends overwrite them.
func (s *sequenceImpl[T]) Clear() {
	hadElements := s.count > 0
	s.count = 0

	if hadElements && s.NumHooks() > 0 {
		s.InvokeHook(hooking.HookCtx{
			Domain: s,
			Pos:    HookPosSeqClear,
			Item:   nil,
			Detail: nil,
		})
	}
}

func (s *sequenceImpl[T]) Clone() Sequence[T] {
	clone := &sequenceImpl[T]{
		NamedBase: naming.MakeNamedBase(s.Name()),
		id:        id.GetGenerator().Generate(),
		elements:  make([]T, len(s.elements)),
		count:     s.count,
	}

	copy(clone.elements, s.elements[:s.count])

	return clone
}
