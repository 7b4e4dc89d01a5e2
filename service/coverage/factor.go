package coverage

import "strings"

const shapeSeparator = "."

// normalizationFactors maps an instance size to its EC2 normalization factor,
// as published by AWS for size-flexible reserved instances.
var normalizationFactors = map[string]float64{
	"nano":      0.25,
	"micro":     0.5,
	"small":     1,
	"medium":    2,
	"large":     4,
	"xlarge":    8,
	"2xlarge":   16,
	"3xlarge":   24,
	"4xlarge":   32,
	"6xlarge":   48,
	"8xlarge":   64,
	"9xlarge":   72,
	"10xlarge":  80,
	"12xlarge":  96,
	"16xlarge":  128,
	"18xlarge":  144,
	"24xlarge":  192,
	"32xlarge":  256,
	"56xlarge":  448,
	"112xlarge": 896,
}

// NormalizationFactor returns the factor for an instance size such as
// "large" or "2xlarge".
func NormalizationFactor(size string) (float64, bool) {
	f, ok := normalizationFactors[size]
	return f, ok
}

// SplitShape splits an instance type like "m5.large" into its family and
// size at the first separator.
func SplitShape(shape string) (family, size string, err error) {
	family, size, found := strings.Cut(shape, shapeSeparator)
	if !found {
		return "", "", &ShapeError{Shape: shape}
	}
	return family, size, nil
}
