package monitor

import (
	"math"
	"testing"
)

func TestSplitSamples(t *testing.T) {
	cases := []struct {
		samples, workers int
		want             []int
	}{
		{10, 4, []int{3, 3, 2, 2}},
		{8, 4, []int{2, 2, 2, 2}},
		{3, 5, []int{1, 1, 1, 0, 0}},
		{7, 1, []int{7}},
	}
	for _, c := range cases {
		got := splitSamples(c.samples, c.workers)
		if len(got) != len(c.want) {
			t.Errorf("splitSamples(%d, %d) = %v, want %v", c.samples, c.workers, got, c.want)
			continue
		}
		sum := 0
		for i := range got {
			sum += got[i]
			if got[i] != c.want[i] {
				t.Errorf("splitSamples(%d, %d) = %v, want %v", c.samples, c.workers, got, c.want)
				break
			}
		}
		if sum != c.samples {
			t.Errorf("splitSamples(%d, %d) assigns %d samples", c.samples, c.workers, sum)
		}
	}
}

func TestPiWorkerDeterministic(t *testing.T) {
	a := piWorker(100000, benchSeedBase)
	b := piWorker(100000, benchSeedBase)
	if a != b {
		t.Errorf("same seed produced different hit counts: %d, %d", a, b)
	}
	if a <= 0 || a > 100000 {
		t.Errorf("hit count %d out of range", a)
	}
}

func TestEstimatePi(t *testing.T) {
	pi, elapsed := estimatePi(2000000, 4)
	if math.Abs(pi-math.Pi) > 0.01 {
		t.Errorf("estimate %f too far from pi", pi)
	}
	if elapsed <= 0 {
		t.Errorf("non-positive elapsed time %s", elapsed)
	}
}
