package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"stepca/internal/core"
	"stepca/internal/sims/primelife"
	pcore "stepca/pkg/core"
)

type scenarioResult struct {
	workers int
	elapsed time.Duration
	alive   int
	matches bool
	err     error
}

func main() {
	generations := flag.Int("generations", 100, "generations to simulate per scenario")
	rows := flag.Int("rows", 256, "rows of the random board")
	cols := flag.Int("cols", 256, "columns of the random board")
	seed := flag.Int64("seed", 1337, "seed for the random board")
	density := flag.Float64("density", 0.35, "fraction of cells alive at the start")
	maxWorkers := flag.Int("max-workers", 2*runtime.NumCPU(), "largest worker count to try")
	parallel := flag.Int("parallel", 1, "scenarios to run at once")
	flag.Parse()

	if *maxWorkers < 1 || *parallel < 1 || *generations < 1 {
		log.Fatalf("-max-workers, -parallel and -generations must be at least 1")
	}

	board := pcore.RandomGrid(*rows, *cols, *seed, *density)
	ctx := context.Background()

	fmt.Printf("Baseline: %dx%d board, %d generations, 1 worker\n", board.Rows, board.Cols, *generations)
	start := time.Now()
	baseline, err := primelife.Run(ctx, board, primelife.Config{Workers: 1, Generations: *generations}, nil)
	if err != nil {
		log.Fatalf("baseline: %v", err)
	}
	baseElapsed := time.Since(start)

	counts := workerCounts(*maxWorkers)
	fmt.Printf("Sweeping %d worker counts (%d at a time)\n", len(counts), *parallel)

	jobs := make(chan int)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *parallel; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for workers := range jobs {
				results <- runScenario(ctx, board, baseline, workers, *generations)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, w := range counts {
			jobs <- w
		}
		close(jobs)
	}()

	var all []scenarioResult
	failed := 0
	for res := range results {
		all = append(all, res)
		if res.err != nil || !res.matches {
			failed++
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].elapsed < all[j].elapsed })

	fmt.Printf("\nResults (baseline %s):\n", baseElapsed.Round(time.Millisecond))
	for i, res := range all {
		status := "ok"
		switch {
		case res.err != nil:
			status = "error: " + res.err.Error()
		case !res.matches:
			status = "MISMATCH"
		}
		speedup := 0.0
		if res.elapsed > 0 {
			speedup = float64(baseElapsed) / float64(res.elapsed)
		}
		fmt.Printf("%2d) workers=%-4d elapsed=%-10s speedup=%.2fx alive=%d %s\n",
			i+1, res.workers, res.elapsed.Round(time.Millisecond), speedup, res.alive, status)
	}

	if failed > 0 {
		log.Fatalf("%d worker counts diverged from the sequential baseline", failed)
	}
}

func runScenario(ctx context.Context, board, baseline *core.Grid, workers, generations int) scenarioResult {
	start := time.Now()
	final, err := primelife.Run(ctx, board, primelife.Config{Workers: workers, Generations: generations}, nil)
	res := scenarioResult{workers: workers, elapsed: time.Since(start), err: err}
	if err != nil {
		return res
	}
	res.alive = final.Alive()
	res.matches = final.Equal(baseline)
	return res
}

// workerCounts returns powers of two up to limit, plus limit itself.
func workerCounts(limit int) []int {
	var counts []int
	for w := 1; w <= limit; w *= 2 {
		counts = append(counts, w)
	}
	if counts[len(counts)-1] != limit {
		counts = append(counts, limit)
	}
	return counts
}
