//go:build memtest

package suggest

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
	"testing"
	"time"

	"github.com/bastiangx/worddict/pkg/dictionary"
	"github.com/stretchr/testify/require"
)

var longPatterns = [][]string{
	{"a", "ab", "abc", "abcd", "abcde"},
	{"h", "he", "hel", "hell", "hello"},
	{"p", "pr", "pro", "prog", "progr", "progra", "program"},
	{"c", "co", "com", "comp", "compu", "comput", "computer"},
	{"i", "in", "int", "inte", "inter", "intern", "interna", "internat"},
}

// syntheticWords builds n distinct lowercase words spread over many prefixes.
// The four letter suffix keeps every word unique.
func syntheticWords(n int) []dictionary.WordFrequency {
	seeds := []string{"abcde", "hello", "program", "computer", "international"}
	entries := make([]dictionary.WordFrequency, 0, n)
	for i := 0; i < n; i++ {
		seed := seeds[i%len(seeds)]
		entries = append(entries, dictionary.WordFrequency{
			Word:      seed[:1+i%len(seed)] + padLetters(i),
			Frequency: 1 + (i*7919)%100000,
		})
	}
	return entries
}

func encodeLetters(i int) string {
	var b []byte
	for {
		b = append(b, byte('a'+i%26))
		i /= 26
		if i == 0 {
			return string(b)
		}
	}
}

func padLetters(i int) string {
	s := encodeLetters(i)
	for len(s) < 4 {
		s += "a"
	}
	return s
}

func newLoadedCompleter(t *testing.T, kind Kind) *Completer {
	t.Helper()
	c, err := NewCompleter(kind, time.Minute)
	require.NoError(t, err)
	require.NoError(t, c.Build(syntheticWords(20000)))
	return c
}

func TestMemoryLeakConcurrent(t *testing.T) {
	configs := []struct {
		workers             int
		iterationsPerWorker int
	}{
		{workers: 1, iterationsPerWorker: 400},
		{workers: 4, iterationsPerWorker: 100},
		{workers: 8, iterationsPerWorker: 50},
	}

	for _, kind := range []Kind{KindTrie, KindRadix} {
		for _, cfg := range configs {
			t.Run(fmt.Sprintf("%s_workers_%d", kind, cfg.workers), func(t *testing.T) {
				runConcurrentMemoryTest(t, kind, cfg.workers, cfg.iterationsPerWorker)
			})
		}
	}
}

func TestMemoryStabilityChurn(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long-running memory stability test in short mode")
	}

	memFile, err := os.CreateTemp(t.TempDir(), "churn-*.prof")
	require.NoError(t, err)
	defer memFile.Close()

	c := newLoadedCompleter(t, KindTrie)

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)

	// add and delete the same batch repeatedly; pruning must return the memory
	batch := make([]dictionary.WordFrequency, 500)
	for i := range batch {
		batch[i] = dictionary.WordFrequency{Word: "zz" + encodeLetters(i) + "q", Frequency: i + 1}
	}

	var maxMemDelta int64
	for cycle := 0; cycle < 40; cycle++ {
		for _, wf := range batch {
			_, err := c.Add(wf)
			require.NoError(t, err)
		}
		_ = c.Complete("zz")
		for _, wf := range batch {
			_, err := c.Delete(wf.Word)
			require.NoError(t, err)
		}

		if cycle%10 == 0 {
			var m runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&m)
			delta := int64(m.HeapAlloc) - int64(baseline.HeapAlloc)
			if delta > maxMemDelta {
				maxMemDelta = delta
			}
			t.Logf("cycle=%d mem_delta=%d bytes", cycle, delta)
		}
	}

	require.NoError(t, pprof.WriteHeapProfile(memFile))
	require.Equal(t, 20000, c.Stats()["totalWords"])

	if maxMemDelta > 10*1024*1024 {
		t.Errorf("excessive peak memory usage: %d bytes", maxMemDelta)
	}
}

func runConcurrentMemoryTest(t *testing.T, kind Kind, workers, iterationsPerWorker int) {
	c := newLoadedCompleter(t, kind)

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	var wg sync.WaitGroup
	var mu sync.Mutex
	totalOps := 0

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ops := 0
			for iter := 0; iter < iterationsPerWorker; iter++ {
				for _, pattern := range longPatterns {
					for _, prefix := range pattern {
						_ = c.Complete(prefix)
						ops++
					}
				}
			}
			mu.Lock()
			totalOps += ops
			mu.Unlock()
		}()
	}
	wg.Wait()

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)

	memDelta := int64(final.HeapAlloc) - int64(baseline.HeapAlloc)
	goroutineDelta := runtime.NumGoroutine() - baselineGoroutines
	memPerOp := float64(memDelta) / float64(totalOps)

	t.Logf("workers=%d total_ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
		workers, totalOps, memDelta, memPerOp, goroutineDelta)

	if memPerOp > 1000 {
		t.Errorf("excessive memory usage per operation: %.2f bytes", memPerOp)
	}
	if goroutineDelta > 2 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}
