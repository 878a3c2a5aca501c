package serialization

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// ComputeChecksumReader computes SHA-256 checksum from an io.Reader.
// This is useful for computing checksums of large files without loading them entirely into memory.
func ComputeChecksumReader(r io.Reader) ([32]byte, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return [32]byte{}, err
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// Fingerprint returns the SHA-256 checksum of a whole stream as a hex string.
// The stream is rewound before and after hashing.
func Fingerprint(rs io.ReadSeeker) (string, error) {
	if err := Rewind(rs); err != nil {
		return "", err
	}
	sum, err := ComputeChecksumReader(rs)
	if err != nil {
		return "", err
	}
	if err := Rewind(rs); err != nil {
		return "", err
	}
	return hex.EncodeToString(sum[:]), nil
}
