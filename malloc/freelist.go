package malloc

import "unsafe"

// Free list operations over the shared block list. Callers hold
// mheap.mu.

// firstfit return the first free block that can hold size bytes,
// scanning from head in allocation order, nil when the list is
// exhausted. O(n) in block count.
func (mheap *Heap) firstfit(size int64) *header {
	for blk := mheap.head; blk != nil; blk = blk.nextblock() {
		if blk.isfree == 1 && blk.size >= size {
			return blk
		}
	}
	return nil
}

// split carve the remainder of blk into a new free block, when the
// remainder can hold at least Minblocksize bytes of payload past its
// own header. The new block is blk's physical successor and is linked
// immediately after it, preserving address order within the mapping.
// Shrinks blk to exactly size bytes.
func (mheap *Heap) split(blk *header, size int64) {
	if blk.size < size+headersize+Minblocksize {
		return
	}
	rem := (*header)(unsafe.Add(unsafe.Pointer(blk), headersize+size))
	rem.size = blk.size - size - headersize
	rem.isfree = 1
	rem.magic = headermagic
	rem.next = blk.next
	blk.size = size
	blk.next = unsafe.Pointer(rem)
	if mheap.tail == blk {
		mheap.tail = rem
	}
	mheap.n_splits++
}

// mergeable when next begins exactly where blk's payload ends and is
// not itself the base of a mapping. The kernel may map two regions
// back to back, a merged block must never span them or the tail
// release rule would stop matching whole mappings.
func (mheap *Heap) mergeable(blk, next *header) bool {
	if !adjacent(blk, next) {
		return false
	}
	_, isbase := mheap.regions[uintptr(unsafe.Pointer(next))]
	return !isbase
}

// coalesce merge runs of free, physically adjacent blocks in a single
// forward pass, without advancing past a merge, so that three or more
// adjacent free blocks collapse into one. Blocks of distinct mappings
// are list neighbours but never merged. Returns the number of merges
// performed, zero when called twice in a row.
func (mheap *Heap) coalesce() (merges int64) {
	for blk := mheap.head; blk != nil; {
		next := blk.nextblock()
		if next == nil {
			break
		}
		if blk.isfree == 1 && next.isfree == 1 && mheap.mergeable(blk, next) {
			blk.size += headersize + next.size
			blk.next = next.next
			if mheap.tail == next {
				mheap.tail = blk
			}
			merges++
			continue
		}
		mheap.checkorder(blk, next)
		blk = next
	}
	mheap.n_merges += merges
	return merges
}
