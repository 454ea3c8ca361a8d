package malloc

import "fmt"
import "sync"
import "unsafe"

import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

import "github.com/bnclabs/memalloc/lib"

// Heap manage a single block list of mmapped memory shared by every
// caller. One mutex serializes all operations for their full duration,
// including the mmap and munmap calls made while it is held.
type Heap struct {
	mu      sync.Mutex
	head    *header
	tail    *header
	regions map[uintptr][]byte // mapping base -> mapping

	// accounting, all under mu
	heaped   int64 // bytes held from the OS, headers included
	alloced  int64 // payload bytes handed out
	n_mmaps  int64
	n_unmaps int64
	n_reuse  int64
	n_splits int64
	n_merges int64
	reqsizes lib.AverageInt64 // sample of aligned request sizes

	// settings
	capacity  int64  // ceiling on heaped bytes
	allocator string // allocation policy
	logprefix string
}

// New create a new heap. What is not supplied in setts is taken from
// Defaultsettings().
func New(name string, setts s.Settings) *Heap {
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	mheap := &Heap{
		regions: make(map[uintptr][]byte),
		// settings
		capacity:  setts.Int64("capacity"),
		allocator: setts.String("allocator"),
		logprefix: fmt.Sprintf("MALLOC [%v]", name),
	}
	if mheap.capacity <= 0 {
		panicerr("invalid capacity %v", mheap.capacity)
	}
	switch mheap.allocator {
	case "flist":
	default:
		panicerr("unknown allocator %q", mheap.allocator)
	}
	fmsg := "%v started with capacity %v\n"
	infof(fmsg, mheap.logprefix, humanize.Bytes(uint64(mheap.capacity)))
	return mheap
}

//---- operations

// Malloc allocate size bytes, 16-byte aligned, usable capacity will be
// size rounded up to a multiple of 16. Nil when size <= 0, when the
// configured capacity would be exceeded, or when the kernel denies the
// mapping.
func (mheap *Heap) Malloc(size int64) unsafe.Pointer {
	if size <= 0 {
		return nil
	}
	size = align(size, Alignment)

	mheap.mu.Lock()
	defer mheap.mu.Unlock()

	if mheap.regions == nil {
		panicerr("heap released")
	}

	if blk := mheap.firstfit(size); blk != nil {
		blk.isfree = 0
		mheap.split(blk, size)
		mheap.alloced += blk.size
		mheap.n_reuse++
		mheap.reqsizes.Add(size)
		return blk.payload()
	}
	blk := mheap.acquire(size)
	if blk == nil {
		return nil
	}
	mheap.alloced += blk.size
	mheap.reqsizes.Add(size)
	return blk.payload()
}

// Free return ptr's block to the heap, nil is a no-op. ptr must have
// been returned by this heap and not freed since, violating that is
// undefined behaviour. Physically adjacent free blocks are merged and
// free mappings at the tail of the list are returned to the kernel.
func (mheap *Heap) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}

	mheap.mu.Lock()
	defer mheap.mu.Unlock()

	blk := headerof(ptr)
	checkheader(blk)
	blk.isfree = 1
	mheap.alloced -= blk.size
	mheap.coalesce()
	mheap.releasetail()
}

// Calloc allocate zero initialized memory for count elements of
// elemsize bytes each. Nil when either argument is <= 0 or when
// count*elemsize overflows the int64 range.
func (mheap *Heap) Calloc(count, elemsize int64) unsafe.Pointer {
	if count <= 0 || elemsize <= 0 {
		return nil
	}
	size := count * elemsize
	if elemsize != size/count {
		return nil
	}
	ptr := mheap.Malloc(size)
	if ptr == nil {
		return nil
	}
	zeroblock(ptr, headerof(ptr).size)
	return ptr
}

// Realloc resize the allocation at ptr to size bytes. Nil ptr behaves
// as Malloc(size), size <= 0 frees ptr and returns nil. When the
// block's recorded capacity already covers size the same pointer comes
// back, capacity never shrinks through this path. Otherwise the full
// old payload is copied into a fresh block and the old one freed, and
// if that fresh allocation fails the original block is left untouched.
func (mheap *Heap) Realloc(ptr unsafe.Pointer, size int64) unsafe.Pointer {
	if ptr == nil {
		return mheap.Malloc(size)
	} else if size <= 0 {
		mheap.Free(ptr)
		return nil
	}

	blk := headerof(ptr)
	checkheader(blk)
	if blk.size >= size {
		return ptr
	}
	newptr := mheap.Malloc(size)
	if newptr == nil {
		return nil
	}
	src := unsafe.Slice((*byte)(ptr), blk.size)
	dst := unsafe.Slice((*byte)(newptr), blk.size)
	copy(dst, src)
	mheap.Free(ptr)
	return newptr
}

// Sizeof recorded capacity of a live pointer, at least as large as the
// size requested for it.
func (mheap *Heap) Sizeof(ptr unsafe.Pointer) int64 {
	blk := headerof(ptr)
	checkheader(blk)
	return blk.size
}

// Release unmap every region still held and poison the heap, further
// use except Release panics.
func (mheap *Heap) Release() {
	mheap.mu.Lock()
	defer mheap.mu.Unlock()

	for base, mem := range mheap.regions {
		delete(mheap.regions, base)
		if err := osrelease(mem); err != nil {
			panicerr("munmap %v bytes: %v", len(mem), err)
		}
	}
	fmsg := "%v released, %v over %v mmaps\n"
	heaped := humanize.Bytes(uint64(mheap.heaped))
	infof(fmsg, mheap.logprefix, heaped, mheap.n_mmaps)
	mheap.head, mheap.tail, mheap.regions = nil, nil, nil
	mheap.heaped, mheap.alloced = 0, 0
}
