// Package serialization reads and writes tensor record streams.
//
// A record stream is a plain concatenation of serialized tensors with no
// count prefix and no file header:
//
//	Record Structure (all fields little-endian):
//	  [8 bytes: samples (uint64)]
//	  [8 bytes: width   (uint64)]
//	  [8 bytes: height  (uint64)]
//	  [8 bytes: maps    (uint64)]
//	  [samples*maps*height*width float32 values]
//
// Values are ordered ((sample*maps + map)*height + y)*width + x.
//
// The stream ends at end-of-data or at the first record whose header
// describes zero elements. Corpora store data and label tensors as
// alternating records, so a well-formed corpus stream always holds an even
// number of records.
//
// Example usage:
//
//	// Count records without materializing them
//	n, err := serialization.CountRecords(file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Decode records one at a time
//	rr := serialization.NewRecordReader(file)
//	for {
//	    t, err := rr.Next()
//	    if err == io.EOF || (err == nil && t.NumElements() == 0) {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    ...
//	}
package serialization
