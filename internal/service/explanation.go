package service

import (
	"fmt"

	"github.com/optic-derm-explorer/internal/domain"
)

// Canned meanings per comparison band. The wording mirrors the clinical
// prototype this dashboard demonstrates.
var meanings = map[domain.Comparison]string{
	domain.BELOW_RANGE:  "May indicate altered differentiation or reduced barrier function.",
	domain.ABOVE_RANGE:  "May indicate hyperkeratosis or altered metabolic activity.",
	domain.WITHIN_RANGE: "Consistent with healthy reference tissue.",
}

// ExplanationService classifies descriptor values against their reference
// ranges and renders plain-language explanation sentences.
type ExplanationService struct{}

// NewExplanationService creates a new explanation service
func NewExplanationService() *ExplanationService {
	return &ExplanationService{}
}

// Classify places a value relative to the reference range. Values equal to
// either boundary classify as within range.
func (s *ExplanationService) Classify(value float64, ref domain.ReferenceRange) domain.Comparison {
	switch {
	case value < ref.Min:
		return domain.BELOW_RANGE
	case value > ref.Max:
		return domain.ABOVE_RANGE
	default:
		return domain.WITHIN_RANGE
	}
}

// Explain returns the explanation sentence for a descriptor value:
// "<label>: <value> (<comparison>). <meaning>". Total over all real values.
func (s *ExplanationService) Explain(value float64, ref domain.ReferenceRange) string {
	comp := s.Classify(value, ref)
	return fmt.Sprintf("%s: %.2f (%s). %s", ref.Label, value, comp.Phrase(), meanings[comp])
}

// RangeFraction returns the position of the value within the reference
// range, clamped to [0, 1]. Degenerate ranges report the midpoint. The
// dashboard uses this to drive per-descriptor progress bars.
func (s *ExplanationService) RangeFraction(value float64, ref domain.ReferenceRange) float64 {
	if ref.Max <= ref.Min {
		return 0.5
	}
	frac := (value - ref.Min) / (ref.Max - ref.Min)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}
