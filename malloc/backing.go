package malloc

import "unsafe"

// Backing store operations, each block list entry began life as one
// whole mapping. Callers hold mheap.mu.

// acquire map a fresh region for an aligned payload of size bytes and
// append its block at the tail, setting head when the list was empty.
// Nil when the capacity ceiling would be crossed or the kernel denies
// the mapping.
func (mheap *Heap) acquire(size int64) *header {
	total := headersize + size
	if mheap.heaped+total > mheap.capacity {
		debugf("%v capacity %v exhausted\n", mheap.logprefix, mheap.capacity)
		return nil
	}
	mem, err := osacquire(total)
	if err != nil {
		debugf("%v mmap %v bytes: %v\n", mheap.logprefix, total, err)
		return nil
	}

	base := unsafe.Pointer(&mem[0])
	blk := (*header)(base)
	blk.size = size
	blk.isfree = 0
	blk.magic = headermagic
	blk.next = nil
	if mheap.head == nil {
		mheap.head = blk
	}
	if mheap.tail != nil {
		mheap.tail.next = base
	}
	mheap.tail = blk

	mheap.regions[uintptr(base)] = mem
	mheap.heaped += total
	mheap.n_mmaps++
	return blk
}

// releasetail unmap trailing free blocks that span one whole mapping,
// retreating the tail each time, so that a run of releasable mappings
// goes back to the kernel in a single call. A free tail that is a
// split fragment of its mapping stays on the list as reusable space.
func (mheap *Heap) releasetail() {
	for mheap.tail != nil && mheap.tail.isfree == 1 {
		base := uintptr(unsafe.Pointer(mheap.tail))
		mem, ok := mheap.regions[base]
		if !ok || int64(len(mem)) != headersize+mheap.tail.size {
			return
		}
		if mheap.tail == mheap.head {
			mheap.head, mheap.tail = nil, nil
		} else {
			prev := mheap.head
			for prev.nextblock() != mheap.tail {
				prev = prev.nextblock()
			}
			prev.next = nil
			mheap.tail = prev
		}
		delete(mheap.regions, base)
		mheap.heaped -= int64(len(mem))
		mheap.n_unmaps++
		if err := osrelease(mem); err != nil {
			panicerr("munmap %v bytes: %v", len(mem), err)
		}
	}
}
