//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd
// +build darwin dragonfly freebsd linux netbsd openbsd

package malloc

import "golang.org/x/sys/unix"

// osacquire obtain an anonymous, private, read-write mapping of size
// bytes from the kernel. Mappings are page aligned, hence 16-byte
// aligned.
func osacquire(size int64) ([]byte, error) {
	return unix.Mmap(
		-1, 0, int(size),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE,
	)
}

// osrelease return mem to the kernel, mem must be the same slice that
// osacquire returned.
func osrelease(mem []byte) error {
	return unix.Munmap(mem)
}
