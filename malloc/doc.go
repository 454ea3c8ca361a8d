// Package malloc implements a thread safe, mmap backed memory
// allocator, with a limited scope:
//
//   - Memory is obtained from the kernel as anonymous, private,
//     read-write mappings, never from the Go heap.
//   - A single free list shared by every caller is searched first-fit,
//     over sized blocks are split to bound fragmentation and physically
//     adjacent free blocks are merged back.
//   - A mapping is returned to the kernel as soon as the block at the
//     tail of the list becomes free and spans the whole mapping,
//     earlier free blocks are retained as reusable space.
//   - Pointers returned by this package will always be 16-byte aligned.
//   - Only pointers previously returned by a heap, and not freed since,
//     may be passed back to Free, Realloc or Sizeof. Violating this is
//     undefined behaviour, debug builds validate a header sentinel.
//
// Every Heap is an independent instance owning its own block list and
// mutex, there is no package level state.
package malloc
