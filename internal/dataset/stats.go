package dataset

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Partition selects the training or testing half of the pool.
type Partition int

// Pool partitions.
const (
	PartitionTraining Partition = iota
	PartitionTesting
)

// String returns the partition name.
func (p Partition) String() string {
	if p == PartitionTesting {
		return "testing"
	}
	return "training"
}

// ChannelStats summarizes one input map over a partition.
type ChannelStats struct {
	Mean   float64
	StdDev float64 // Sample standard deviation
	Min    float64
	Max    float64
	Count  int
}

// bounds returns the pool range of a partition.
func (d *TensorStreamDataset) bounds(p Partition) (lo, hi int) {
	if p == PartitionTesting {
		return d.trainingPairs, d.trainingPairs + d.testingPairs
	}
	return 0, d.trainingPairs
}

// InputStats computes per-map statistics of the data tensors in p.
// It returns nil for an empty partition.
func (d *TensorStreamDataset) InputStats(p Partition) []ChannelStats {
	lo, hi := d.bounds(p)
	if lo == hi {
		return nil
	}

	plane := d.width * d.height
	buf := make([]float64, plane)
	sums := make([]float64, d.inputMaps)
	sumSquares := make([]float64, d.inputMaps)
	stats := make([]ChannelStats, d.inputMaps)
	for m := range stats {
		stats[m].Min = math.Inf(1)
		stats[m].Max = math.Inf(-1)
	}

	for i := lo; i < hi; i++ {
		sample := d.data[i]
		for s := 0; s < sample.Samples(); s++ {
			for m := 0; m < d.inputMaps; m++ {
				start := sample.Index(0, 0, m, s)
				for j, v := range sample.Data()[start : start+plane] {
					buf[j] = float64(v)
				}
				sums[m] += floats.Sum(buf)
				sumSquares[m] += floats.Dot(buf, buf)
				stats[m].Min = math.Min(stats[m].Min, floats.Min(buf))
				stats[m].Max = math.Max(stats[m].Max, floats.Max(buf))
				stats[m].Count += plane
			}
		}
	}

	for m := range stats {
		n := float64(stats[m].Count)
		stats[m].Mean = sums[m] / n
		if stats[m].Count > 1 {
			variance := (sumSquares[m] - n*stats[m].Mean*stats[m].Mean) / (n - 1)
			stats[m].StdDev = math.Sqrt(math.Max(variance, 0))
		}
	}
	return stats
}
