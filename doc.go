// Package seq provides a fixed-capacity, growth-free sequence container
// for code that must not allocate after initialization, such as firmware
// ported from targets without a dynamic collections library.
//
// A Sequence is created with a capacity that never changes. Its backing
// storage is allocated once, at construction, and every later operation
// works inside that block. Appending past capacity is a programming error
// and terminates the process, while bulk copies that would overflow are
// silently truncated instead. See the Sequence documentation for the full
// contract.
//
// Basic usage:
//
//	s := seq.NewSequence[int]("TxQueue", 8)
//	s.Append(42)
//	v := *s.At(0)
//
// Sequences can also be built with initial contents:
//
//	s := seq.Builder[int]{}.
//		WithCapacity(4).
//		WithElements(1, 2, 3).
//		Build("RxQueue")
package seq
