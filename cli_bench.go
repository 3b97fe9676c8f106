package monitor

import (
	"math/rand"
	"sync"
	"time"
)

// piWorker generates n random points in the unit square and counts those
// inside the unit circle.
func piWorker(n int, seed int64) int {
	rng := rand.New(rand.NewSource(seed))
	hits := 0
	for i := 0; i < n; i++ {
		x := rng.Float64()
		y := rng.Float64()
		if x*x+y*y <= 1.0 {
			hits++
		}
	}
	return hits
}

// splitSamples distributes samples across workers, spreading any remainder
// over the first workers.
func splitSamples(samples, workers int) []int {
	counts := make([]int, workers)
	per := samples / workers
	rem := samples % workers
	for i := range counts {
		counts[i] = per
		if i < rem {
			counts[i]++
		}
	}
	return counts
}

// estimatePi splits samples across workers goroutines and returns the pi
// estimate and elapsed time.
func estimatePi(samples, workers int) (float64, time.Duration) {
	counts := splitSamples(samples, workers)
	results := make([]int, workers)

	start := time.Now()
	var wg sync.WaitGroup
	for i := range counts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = piWorker(counts[i], benchSeedBase+int64(i))
		}(i)
	}
	wg.Wait()
	elapsed := time.Since(start)

	hits := 0
	for _, h := range results {
		hits += h
	}
	return 4.0 * float64(hits) / float64(samples), elapsed
}

func runBench(args []string) {
	if profileEnabled {
		defer startProfile("./bench.pprof").Stop()
	}

	printf("Monte Carlo pi estimation benchmark...")
	printf("")
	setTabWriter(0)
	printf("samples\tworkers\tpi\telapsed\tmem before\tmem after\tdelta\t")
	for _, samples := range DefaultBenchSamples {
		for _, workers := range DefaultBenchWorkers {
			before, err := processRSS()
			exitOnError(err, exitCodeRuntimeError)

			pi, elapsed := estimatePi(samples, workers)

			after, err := processRSS()
			exitOnError(err, exitCodeRuntimeError)

			printf("%d\t%d\t%.6f\t%s\t%s\t%s\t%+.2f MB\t",
				samples, workers, pi, elapsed.Round(time.Microsecond),
				formatMB(before), formatMB(after),
				(float64(after)-float64(before))/bytesPerMB)
		}
		printf("\t\t\t\t\t\t\t")
	}
	flush()
}
