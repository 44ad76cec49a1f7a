package model

import "strings"

// DatePrecision describes how much of a PartialDate is known.
type DatePrecision int

const (
	// PrecisionNone is reported for an empty date.
	PrecisionNone DatePrecision = iota
	// PrecisionYear is "YYYY".
	PrecisionYear
	// PrecisionMonth is "YYYY-MM".
	PrecisionMonth
	// PrecisionDay is "YYYY-MM-DD".
	PrecisionDay
)

// PartialDate is a release date truncated to the precision the source knows:
// "YYYY-MM-DD", "YYYY-MM" or "YYYY".
type PartialDate string

// Year returns the year component.
func (d PartialDate) Year() string {
	year, _, _ := strings.Cut(string(d), "-")
	return year
}

// Precision reports how many components the date carries.
func (d PartialDate) Precision() DatePrecision {
	if d == "" {
		return PrecisionNone
	}
	switch strings.Count(string(d), "-") {
	case 0:
		return PrecisionYear
	case 1:
		return PrecisionMonth
	default:
		return PrecisionDay
	}
}
