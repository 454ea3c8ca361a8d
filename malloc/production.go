//go:build !debug
// +build !debug

package malloc

// Pointer provenance and list ordering are documented preconditions,
// validated only under the debug build tag.

func checkheader(blk *header) {}

func (mheap *Heap) checkorder(blk, next *header) {}
