package malloc

import "fmt"
import "io"
import "unsafe"

// Info memory accounting for this heap: configured capacity, bytes
// held from the OS (headers included), payload bytes handed out, and
// the overhead of managing them.
func (mheap *Heap) Info() (capacity, heap, alloc, overhead int64) {
	mheap.mu.Lock()
	defer mheap.mu.Unlock()

	self := int64(unsafe.Sizeof(*mheap))
	overhead = self + mheap.nblocks()*headersize
	return mheap.capacity, mheap.heaped, mheap.alloced, overhead
}

// Utilization percentage of OS held memory handed out to the
// application.
func (mheap *Heap) Utilization() float64 {
	mheap.mu.Lock()
	defer mheap.mu.Unlock()

	if mheap.heaped == 0 {
		return 0
	}
	return (float64(mheap.alloced) / float64(mheap.heaped)) * 100
}

// Stats count of heap activity since creation, along with a
// statistical summary of request sizes.
func (mheap *Heap) Stats() map[string]interface{} {
	mheap.mu.Lock()
	defer mheap.mu.Unlock()

	return map[string]interface{}{
		"n_blocks": mheap.nblocks(),
		"n_mmaps":  mheap.n_mmaps,
		"n_unmaps": mheap.n_unmaps,
		"n_reuse":  mheap.n_reuse,
		"n_splits": mheap.n_splits,
		"n_merges": mheap.n_merges,
		"heaped":   mheap.heaped,
		"alloced":  mheap.alloced,
		"reqsizes": mheap.reqsizes.Stats(),
	}
}

// Dump the block list to w, one line per block with its address,
// payload size and free flag, followed by totals of used and free
// payload bytes. Human readable, carries no compatibility contract.
func (mheap *Heap) Dump(w io.Writer) {
	mheap.mu.Lock()
	defer mheap.mu.Unlock()

	totalused, totalfree := int64(0), int64(0)
	fmt.Fprintf(w, "block list:\n")
	for blk := mheap.head; blk != nil; blk = blk.nextblock() {
		free := blk.isfree == 1
		fmt.Fprintf(
			w, "addr:%p size:%v free:%v\n",
			unsafe.Pointer(blk), blk.size, free,
		)
		if free {
			totalfree += blk.size
		} else {
			totalused += blk.size
		}
	}
	fmt.Fprintf(w, "total used: %v bytes\n", totalused)
	fmt.Fprintf(w, "total free: %v bytes\n", totalfree)
}

// with mu held.
func (mheap *Heap) nblocks() (n int64) {
	for blk := mheap.head; blk != nil; blk = blk.nextblock() {
		n++
	}
	return n
}
