//go:build windows
// +build windows

package malloc

import "unsafe"

import "golang.org/x/sys/windows"

// osacquire obtain a committed, read-write region of size bytes from
// the kernel. VirtualAlloc regions are allocation-granularity aligned,
// hence 16-byte aligned.
func osacquire(size int64) ([]byte, error) {
	addr, err := windows.VirtualAlloc(
		0, uintptr(size),
		windows.MEM_COMMIT|windows.MEM_RESERVE,
		windows.PAGE_READWRITE,
	)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

// osrelease return mem to the kernel, mem must be the same slice that
// osacquire returned.
func osrelease(mem []byte) error {
	addr := uintptr(unsafe.Pointer(&mem[0]))
	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}
