package malloc

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// Defaultsettings for heap instances.
//
// "capacity" (int64, default: free system RAM)
//		Maximum number of bytes the heap will hold from the OS at
//		any point in time, block headers included. Requests that
//		would cross the ceiling return nil.
//
// "allocator" (string, default: "flist")
//		Allocation policy. Only "flist", first-fit over a single
//		shared free list, is supported.
func Defaultsettings() s.Settings {
	return s.Settings{
		"capacity":  freeram(),
		"allocator": "flist",
	}
}

func freeram() int64 {
	mem := sigar.Mem{}
	mem.Get()
	if mem.Free == 0 { // stats unavailable on this platform
		return 1024 * 1024 * 1024
	}
	return int64(mem.Free)
}
