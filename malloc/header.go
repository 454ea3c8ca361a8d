package malloc

import "unsafe"

// Alignment payload pointers handed out by this package are always
// aligned to Alignment bytes, and block sizes are rounded up to its
// multiple.
const Alignment = int64(16)

// Minblocksize smallest useful payload, splitting never produces a
// block below this size.
const Minblocksize = int64(32)

// header prefixes every block inside its mapping. The trailing pad
// keeps the header size a multiple of Alignment, so that the payload
// starting right after it stays 16-byte aligned.
type header struct {
	size   int64          // payload bytes, always a multiple of Alignment
	isfree uint32         // 1 when block is on the free list
	magic  uint32         // sentinel, validated in debug builds
	next   unsafe.Pointer // *header, linked in allocation order
	_      [8]byte
}

const headersize = int64(unsafe.Sizeof(header{}))

const headermagic = uint32(0x6d656d61)

// headersize must stay a multiple of Alignment.
var _ = [1]struct{}{}[headersize%Alignment]

// align size up to the next multiple of alignment, which must be a
// power of two (unchecked).
func align(size, alignment int64) int64 {
	return (size + alignment - 1) &^ (alignment - 1)
}

func (blk *header) nextblock() *header {
	return (*header)(blk.next)
}

// payload pointer handed to the application, one header past blk.
func (blk *header) payload() unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(blk), headersize)
}

// headerof recover the block header from a payload pointer issued
// earlier by payload().
func headerof(ptr unsafe.Pointer) *header {
	return (*header)(unsafe.Add(ptr, -headersize))
}

// adjacent is true when next begins exactly where blk's payload ends,
// that is, both blocks live back to back in the same mapping.
func adjacent(blk, next *header) bool {
	end := uintptr(unsafe.Pointer(blk)) + uintptr(headersize+blk.size)
	return end == uintptr(unsafe.Pointer(next))
}
