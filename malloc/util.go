package malloc

import "fmt"
import "unsafe"

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}

// zeroblock clear size bytes starting at ptr.
func zeroblock(ptr unsafe.Pointer, size int64) {
	block := unsafe.Slice((*byte)(ptr), size)
	for i := range block {
		block[i] = 0
	}
}
