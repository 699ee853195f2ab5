// ABOUTME: Spike to measure mark/sweep pause times on large object graphs
// ABOUTME: Validates O(live objects + live edges) behavior as heaps grow

package main

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/prateek/marksweep/gc"
)

type obj struct {
	out []gc.Ref[obj]
}

func (o obj) Trace(tr *gc.Tracer[obj]) {
	for _, r := range o.out {
		tr.Visit(r)
	}
}

// buildGraph allocates n objects wired into a ring with random chords,
// keeps every tenth object rooted, and drops the rest.
func buildGraph(h *gc.Heap[obj], rng *rand.Rand, n int) []gc.Root[obj] {
	roots := make([]gc.Root[obj], n)
	for i := 0; i < n; i++ {
		roots[i] = h.Allocate(obj{})
	}
	for i := 0; i < n; i++ {
		v := roots[i].Value()
		v.out = append(v.out, roots[(i+1)%n].Ref())
		for c := 0; c < 2; c++ {
			v.out = append(v.out, roots[rng.Intn(n)].Ref())
		}
	}

	var kept []gc.Root[obj]
	for i, r := range roots {
		if i%10 == 0 {
			kept = append(kept, r)
			continue
		}
		r.Drop()
	}
	return kept
}

func measure(n int) {
	rng := rand.New(rand.NewSource(42))
	h := gc.New[obj](gc.WithThreshold(0))

	kept := buildGraph(h, rng, n)

	// Everything sits on the ring, so the first cycle frees nothing.
	start := time.Now()
	freed := h.Collect()
	full := time.Since(start)

	// Cut the ring loose and measure a reclaiming cycle.
	for _, r := range kept {
		r.Drop()
	}
	start = time.Now()
	freed = h.Collect()
	reclaim := time.Since(start)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	fmt.Printf("n=%-8d mark-only pause: %-12v reclaim pause: %-12v freed: %-8d heapAlloc: %d MB\n",
		n, full, reclaim, freed, mem.HeapAlloc/1024/1024)
}

func main() {
	fmt.Println("Collection pause scaling")
	fmt.Println("========================")

	for _, n := range []int{1000, 10000, 100000, 500000} {
		measure(n)
	}
}
