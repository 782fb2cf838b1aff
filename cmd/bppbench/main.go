// Command bppbench drives a synthetic workload against a bptree.Tree and
// reports timing and the tree's structural statistics. It runs a fill of
// keys 0..n-1 in shuffled order, a shuffled-order search of every key, a
// delete of a shuffled half of the keys, and one range scan, against this
// tree's single-owner, single-goroutine API.
//
// Usage:
//
//	bppbench -n 200000 -order 64 -leaf-capacity 256
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/bpptree/bpptree/bptree"
)

func main() {
	var (
		n             = flag.Int("n", 200_000, "number of keys")
		order         = flag.Int("order", 64, "internal node fanout")
		leafCap       = flag.Int("leaf-capacity", 256, "initial leaf capacity")
		trainInterval = flag.Int("train-interval", 10, "predictor retrain interval")
		probeRadius   = flag.Int("probe-radius", 3, "predictor probe radius")
		seed          = flag.Uint64("seed", 1, "workload PRNG seed")
		jsonOut       = flag.Bool("json", false, "emit the log records as JSON instead of text")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	if *jsonOut {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	cfg := bptree.Config{
		Order:               *order,
		InitialLeafCapacity: *leafCap,
		TrainingInterval:    *trainInterval,
		ProbeRadius:         *probeRadius,
	}
	tree, err := bptree.New[int64, int64](cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bppbench: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))

	sequential := make([]int64, *n)
	for i := range sequential {
		sequential[i] = int64(i)
	}

	permuted := append([]int64(nil), sequential...)
	rng.Shuffle(len(permuted), func(i, j int) { permuted[i], permuted[j] = permuted[j], permuted[i] })

	logger.Info("workload starting", "n", *n, "order", *order, "leaf_capacity", *leafCap)

	insertElapsed := timed(func() {
		for _, k := range permuted {
			tree.Insert(k, k*2)
		}
	})
	report(logger, "insert", insertElapsed, *n)

	searchOrder := append([]int64(nil), sequential...)
	rng.Shuffle(len(searchOrder), func(i, j int) { searchOrder[i], searchOrder[j] = searchOrder[j], searchOrder[i] })
	var misses int
	searchElapsed := timed(func() {
		for _, k := range searchOrder {
			if _, ok := tree.Search(k); !ok {
				misses++
			}
		}
	})
	report(logger, "search", searchElapsed, *n)
	if misses > 0 {
		logger.Warn("unexpected search misses against a fully populated tree", "misses", misses)
	}

	deleteOrder := append([]int64(nil), sequential...)
	rng.Shuffle(len(deleteOrder), func(i, j int) { deleteOrder[i], deleteOrder[j] = deleteOrder[j], deleteOrder[i] })
	half := len(deleteOrder) / 2
	deleteElapsed := timed(func() {
		for _, k := range deleteOrder[:half] {
			tree.Delete(k)
		}
	})
	report(logger, "delete_half", deleteElapsed, half)

	var rangeCount int
	lo, hi := int64(*n/4), int64(*n/4)+int64(*n/10)
	rangeElapsed := timed(func() {
		for range tree.Range(lo, hi) {
			rangeCount++
		}
	})
	report(logger, "range_scan", rangeElapsed, rangeCount)

	stats := tree.Stats()
	logger.Info("final stats",
		"size", stats.Size,
		"leaves", stats.Leaves,
		"height", stats.Height,
		"avg_utilization", stats.AvgUtilization,
		"leaves_with_models", stats.LeavesWithModels,
		"model_hit_rate", stats.ModelHitRate,
		"has_model_hit_rate", stats.HasModelHitRate,
	)
}

func timed(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

func report(logger *slog.Logger, phase string, elapsed time.Duration, ops int) {
	var nsPerOp float64
	if ops > 0 {
		nsPerOp = float64(elapsed.Nanoseconds()) / float64(ops)
	}
	logger.Info("phase complete", "phase", phase, "ops", ops, "elapsed", elapsed, "ns_per_op", nsPerOp)
}
