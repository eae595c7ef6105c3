package pcf2d

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Sample represents one ring center. It is a view structure for accessing a
// point in a Result.
// The sample's index corresponds to the index of its position in the Result's Points.
type Sample struct {
	idx int
	r   *Result
}

// Index returns the index of the point in the Result's Points.
func (s Sample) Index() int {
	return s.idx
}

// Position returns the coordinates of the point.
func (s Sample) Position() r2.Point {
	return s.r.Points[s.idx]
}

// BoundaryDistance returns the distance from the point to the nearest
// boundary of the domain.
func (s Sample) BoundaryDistance() float64 {
	return s.r.BoundaryDistances[s.idx]
}

// NormalizationFactors returns the fraction of each ring around the point
// that lies inside the domain.
func (s Sample) NormalizationFactors() []float64 {
	return s.r.Normalization(s.idx)
}

// NormalizationFactor returns the factor of bin j.
// It returns an error if the index is out of range.
func (s Sample) NormalizationFactor(j int) (float64, error) {
	nb := s.r.NumBins()
	if j < 0 || j >= nb {
		return 0, fmt.Errorf("NormalizationFactor: index %d out of range [0 %d)", j, nb)
	}
	return s.r.NormalizationFactors[s.idx*nb+j], nil
}

// Corrected reports whether any ring around the point crosses the boundary.
func (s Sample) Corrected() bool {
	for _, f := range s.NormalizationFactors() {
		if f < 1 {
			return true
		}
	}
	return false
}
