// Package service implements the descriptor and explanation generators:
// pure functions that turn a (biopsy, ROI) selection into quantitative
// tissue descriptors and plain-language range comparisons.
package service

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"github.com/optic-derm-explorer/internal/domain"
)

// Sampling intervals for the three descriptors. Wider than the normal
// reference ranges so that demo values fall below, inside, or above them.
const (
	keratinMin, keratinMax           = 0.12, 0.62
	metabolicMin, metabolicMax       = 0.28, 0.82
	organizationMin, organizationMax = 0.40, 0.95
)

// DescriptorService generates mock tissue descriptors for a biopsy and ROI.
type DescriptorService struct {
	logger *logrus.Logger
}

// NewDescriptorService creates a new descriptor service
func NewDescriptorService(logger *logrus.Logger) *DescriptorService {
	return &DescriptorService{logger: logger}
}

// Seed derives a deterministic 32-bit seed from the concatenation of the
// identifier strings. xxhash has fixed parameters, so the same identifiers
// produce the same seed on every platform and in every process. The result
// is reduced modulo 2^32 to match the seed domain of the original prototype.
func Seed(parts ...string) uint64 {
	h := xxhash.New()
	for _, p := range parts {
		// Write on xxhash.Digest never returns an error.
		_, _ = h.WriteString(p)
	}
	return h.Sum64() % (1 << 32)
}

// Descriptors returns the descriptor set for a biopsy and ROI. The function
// is pure: identical inputs always yield identical values. Identifiers are
// not validated against the catalog; unknown ids still hash to a stable,
// plausible-looking result. Callers that need validation do it at the API
// boundary.
func (s *DescriptorService) Descriptors(biopsyID, roiID string) domain.DescriptorSet {
	seed := Seed(biopsyID, roiID)
	rng := rand.New(rand.NewPCG(seed, seed))

	// Draw order is fixed; changing it changes every generated value.
	set := domain.DescriptorSet{
		KeratinDominance:   uniform(rng, keratinMin, keratinMax),
		MetabolicState:     uniform(rng, metabolicMin, metabolicMax),
		TissueOrganization: uniform(rng, organizationMin, organizationMax),
	}

	s.logger.WithFields(logrus.Fields{
		"biopsy_id": biopsyID,
		"roi_id":    roiID,
		"seed":      seed,
	}).Debug("Generated descriptor set")

	return set
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
