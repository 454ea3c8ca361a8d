//go:build debug
// +build debug

package malloc

import "unsafe"

// checkheader validate the sentinel on a pointer handed back by the
// application, catching foreign pointers and double frees before they
// corrupt the list.
func checkheader(blk *header) {
	if blk.magic != headermagic {
		panicerr("invalid or foreign pointer %p", unsafe.Pointer(blk))
	} else if blk.isfree == 1 {
		panicerr("block %p already free", unsafe.Pointer(blk))
	}
}

// checkorder assert that list order never runs against address order
// within a mapping, coalescing depends on it. A block physically
// preceding its list predecessor is legitimate only when the
// predecessor heads its own mapping.
func (mheap *Heap) checkorder(blk, next *header) {
	if _, isbase := mheap.regions[uintptr(unsafe.Pointer(blk))]; isbase {
		return
	}
	if adjacent(next, blk) {
		fmsg := "block list out of address order: %p after %p"
		panicerr(fmsg, unsafe.Pointer(next), unsafe.Pointer(blk))
	}
}
