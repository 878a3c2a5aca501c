package serialization

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

// TestComputeChecksumReader verifies checksum computation from reader.
func TestComputeChecksumReader(t *testing.T) {
	data := []byte("test data for reader")

	checksum, err := ComputeChecksumReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ComputeChecksumReader failed: %v", err)
	}

	// Should match direct computation
	if checksum != sha256.Sum256(data) {
		t.Error("Reader checksum should match direct checksum")
	}
}

// TestFingerprintRewinds verifies the stream is left at its start.
func TestFingerprintRewinds(t *testing.T) {
	r := bytes.NewReader([]byte("hello world"))
	if _, err := r.Seek(5, 0); err != nil {
		t.Fatal(err)
	}

	got, err := Fingerprint(r)
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}

	// Known SHA-256 vector for "hello world"
	const want = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}

	if pos, _ := r.Seek(0, 1); pos != 0 {
		t.Errorf("Expected stream position 0 after Fingerprint, got %d", pos)
	}
}

// TestFingerprintEmpty verifies the empty-stream vector.
func TestFingerprintEmpty(t *testing.T) {
	got, err := Fingerprint(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	sum := sha256.Sum256(nil)
	if got != hex.EncodeToString(sum[:]) {
		t.Errorf("Unexpected empty fingerprint %s", got)
	}
}
