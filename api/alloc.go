// Package api holds types, constants and interfaces that are common
// to the memalloc packages and their applications.
package api

import "io"
import "unsafe"

// Mallocer interface for custom memory management. Implementations
// are expected to be safe for concurrent callers.
type Mallocer interface {
	// Malloc allocate a block of `n` bytes. Allocated memory is
	// always 16-byte aligned, with usable capacity `n` rounded up
	// to a multiple of 16. Nil when the request cannot be served.
	Malloc(n int64) unsafe.Pointer

	// Calloc allocate zero initialized memory for `count` elements
	// of `elemsize` bytes each. Nil when either argument is invalid,
	// when their product overflows, or when the request cannot be
	// served.
	Calloc(count, elemsize int64) unsafe.Pointer

	// Realloc grow the allocation at ptr to `n` bytes, moving the
	// payload when the recorded capacity cannot cover it. Nil ptr
	// behaves as Malloc, n <= 0 behaves as Free.
	Realloc(ptr unsafe.Pointer, n int64) unsafe.Pointer

	// Free the block at ptr, a nil ptr is a no-op. Only pointers
	// previously returned by this allocator, and not freed since,
	// may be passed.
	Free(ptr unsafe.Pointer)

	// Sizeof the recorded capacity of a live pointer.
	Sizeof(ptr unsafe.Pointer) int64

	// Release the allocator and every backing region it still holds.
	Release()

	// Info of memory accounting for this allocator.
	Info() (capacity, heap, alloc, overhead int64)

	// Utilization percentage of backing memory handed out.
	Utilization() float64

	// Dump a human readable listing of the block list to w.
	Dump(w io.Writer)
}
