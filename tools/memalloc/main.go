// Stress the memalloc heap with a mixed workload of allocations,
// frees and resizes across several goroutines, then report heap
// accounting and system memory.
package main

import "flag"
import "fmt"
import "math/rand"
import "os"
import "strconv"
import "strings"
import "sync"
import "time"
import "unsafe"

import "github.com/bnclabs/golog"
import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"
import hm "github.com/dustin/go-humanize"

import "github.com/bnclabs/memalloc/api"
import "github.com/bnclabs/memalloc/malloc"

var options struct {
	n        int
	par      int
	capacity int
	sizes    [2]int // min,max payload size
	dump     bool
	loglevel string
}

func argParse() {
	var sizes string

	flag.IntVar(&options.n, "n", 100000,
		"number of operations per goroutine")
	flag.IntVar(&options.par, "par", 8,
		"number of concurrent goroutines")
	flag.IntVar(&options.capacity, "capacity", 1024*1024*1024,
		"heap capacity in bytes")
	flag.StringVar(&sizes, "sizes", "",
		"minsize,maxsize - request sizes between [minsize,maxsize)")
	flag.BoolVar(&options.dump, "dump", false,
		"dump the block list after the run")
	flag.StringVar(&options.loglevel, "loglevel", "info",
		"log level for the run")
	flag.Parse()

	options.sizes = [2]int{16, 4096}
	if sizes != "" {
		for i, field := range strings.Split(sizes, ",") {
			ln, _ := strconv.Atoi(field)
			options.sizes[i] = ln
		}
	}
}

func main() {
	argParse()
	log.SetLogger(nil, map[string]interface{}{
		"log.level": options.loglevel, "log.file": "",
	})

	mheap := malloc.New("stress", s.Settings{
		"capacity": int64(options.capacity),
	})

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(options.par)
	for i := 0; i < options.par; i++ {
		go stress(mheap, options.n, &wg)
	}
	wg.Wait()
	elapsed := time.Since(start)

	ops := int64(options.n) * int64(options.par)
	fmt.Printf("%v operations in %v across %v goroutines\n",
		ops, elapsed, options.par)
	report(mheap)

	if options.dump {
		mheap.Dump(os.Stdout)
	}
	mheap.Release()
}

// a third of the operations resize, the rest pair an allocation with
// an eventual free, keeping around 1000 blocks live per goroutine.
func stress(mheap api.Mallocer, n int, wg *sync.WaitGroup) {
	defer wg.Done()

	minsize := options.sizes[0]
	span := options.sizes[1] - minsize
	live := make([]unsafe.Pointer, 0, 1000)
	for i := 0; i < n; i++ {
		size := int64(minsize + rand.Intn(span))
		switch {
		case len(live) > 0 && i%3 == 0:
			j := rand.Intn(len(live))
			if ptr := mheap.Realloc(live[j], size); ptr != nil {
				live[j] = ptr
			}
		case len(live) >= 1000:
			j := rand.Intn(len(live))
			mheap.Free(live[j])
			live[j] = live[len(live)-1]
			live = live[:len(live)-1]
		default:
			if ptr := mheap.Malloc(size); ptr != nil {
				live = append(live, ptr)
			}
		}
	}
	for _, ptr := range live {
		mheap.Free(ptr)
	}
}

func report(mheap api.Mallocer) {
	capacity, heap, alloc, overhead := mheap.Info()
	fmt.Printf("heap capacity  : %v\n", hm.Bytes(uint64(capacity)))
	fmt.Printf("heap held      : %v\n", hm.Bytes(uint64(heap)))
	fmt.Printf("heap alloced   : %v\n", hm.Bytes(uint64(alloc)))
	fmt.Printf("heap overhead  : %v\n", hm.Bytes(uint64(overhead)))
	fmt.Printf("utilization    : %.2f%%\n", mheap.Utilization())

	mem := sigar.Mem{}
	mem.Get()
	fmt.Printf("system total   : %v\n", hm.Bytes(mem.Total))
	fmt.Printf("system used    : %v\n", hm.Bytes(mem.Used))
	fmt.Printf("system free    : %v\n", hm.Bytes(mem.Free))
}
