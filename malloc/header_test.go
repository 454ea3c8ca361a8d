package malloc

import "testing"
import "unsafe"

func TestHeadersize(t *testing.T) {
	if x := headersize % Alignment; x != 0 {
		t.Errorf("headersize %v not a multiple of %v", headersize, Alignment)
	}
	if headersize != 32 {
		t.Errorf("expected 32, got %v", headersize)
	}
}

func TestAlign(t *testing.T) {
	if x := align(0, 16); x != 0 {
		t.Errorf("expected 0, got %v", x)
	} else if x = align(1, 16); x != 16 {
		t.Errorf("expected 16, got %v", x)
	} else if x = align(15, 16); x != 16 {
		t.Errorf("expected 16, got %v", x)
	} else if x = align(16, 16); x != 16 {
		t.Errorf("expected 16, got %v", x)
	} else if x = align(17, 16); x != 32 {
		t.Errorf("expected 32, got %v", x)
	} else if x = align(100, 16); x != 112 {
		t.Errorf("expected 112, got %v", x)
	} else if x = align(1023, 1024); x != 1024 {
		t.Errorf("expected 1024, got %v", x)
	}
}

func TestHeaderof(t *testing.T) {
	var buf [8]uint64

	blk := (*header)(unsafe.Pointer(&buf[0]))
	blk.size = 16
	ptr := blk.payload()
	if diff := uintptr(ptr) - uintptr(unsafe.Pointer(blk)); diff != uintptr(headersize) {
		t.Errorf("expected %v, got %v", headersize, diff)
	}
	if back := headerof(ptr); back != blk {
		t.Errorf("expected %p, got %p", blk, back)
	}
}

func TestAdjacent(t *testing.T) {
	var buf [16]uint64

	blk := (*header)(unsafe.Pointer(&buf[0]))
	blk.size = 32
	next := (*header)(unsafe.Add(unsafe.Pointer(blk), headersize+blk.size))
	if adjacent(blk, next) == false {
		t.Errorf("expected adjacency")
	}
	far := (*header)(unsafe.Add(unsafe.Pointer(next), 16))
	if adjacent(blk, far) {
		t.Errorf("unexpected adjacency")
	}
}
