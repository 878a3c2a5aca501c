// Package dataset loads paired data/label tensor corpora from record streams
// and serves samples to a training loop by index.
//
// A corpus is built from two record streams, one for training and one for
// testing. Each stream holds alternating data and label records. Both are
// scanned once to count records, rewound, and replayed into a single pool:
// training pairs occupy the low indices and testing pairs the high ones.
//
// Every sample is served with a shared per-pixel error-weight tensor computed
// once at construction from a WeightFunc.
//
// Example usage:
//
//	d, err := dataset.FromConfiguration("kitti.set")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	batch, err := dataset.NewBatch(d, 8)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := batch.LoadTraining(d, []int{0, 1, 2, 3, 4, 5, 6, 7}); err != nil {
//	    log.Fatal(err)
//	}
package dataset
