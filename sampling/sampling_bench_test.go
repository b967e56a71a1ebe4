package sampling

import (
	"context"
	"testing"
)

func benchmarkRun(b *testing.B, workers int) {
	cfg := DefaultConfig()
	cfg.Grid.Count = 50
	cfg.Workers = workers

	for b.Loop() {
		_, err := Run(context.Background(), cfg)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRunSequential(b *testing.B) { benchmarkRun(b, 1) }
func BenchmarkRunParallel(b *testing.B)   { benchmarkRun(b, 4) }
