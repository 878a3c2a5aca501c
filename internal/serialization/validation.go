package serialization

import "fmt"

// Validation limits for resource protection against corrupted headers.
const (
	MaxDimension      = 1 << 24 // Maximum size of any single dimension
	MaxRecordElements = 1 << 31 // Maximum number of values in one record
)

// ValidateRecordHeader checks that every dimension and the total element
// count stay within the validation limits.
//
// A header with a zero dimension is valid whatever the other dimensions hold:
// it is the end-of-records sentinel.
func ValidateRecordHeader(h RecordHeader) error {
	if h.Samples == 0 || h.Width == 0 || h.Height == 0 || h.Maps == 0 {
		return nil
	}

	dims := []struct {
		name  string
		value uint64
	}{
		{"samples", h.Samples},
		{"width", h.Width},
		{"height", h.Height},
		{"maps", h.Maps},
	}

	elements := uint64(1)
	for _, d := range dims {
		if d.value > MaxDimension {
			return &ValidationError{
				Type:    "dimension_too_large",
				Field:   d.name,
				Details: fmt.Sprintf("got %d, max %d", d.value, MaxDimension),
				Err:     ErrInvalidDims,
			}
		}
		// Factor <= 2^24 and running product <= 2^31, so no uint64 overflow.
		elements *= d.value
		if elements > MaxRecordElements {
			return &ValidationError{
				Type:    "too_many_elements",
				Details: fmt.Sprintf("%d×%d×%d×%d exceeds %d", h.Samples, h.Maps, h.Height, h.Width, MaxRecordElements),
				Err:     ErrRecordTooLarge,
			}
		}
	}

	return nil
}
