// Package imaging generates deterministic placeholder rasters for the three
// imaging modalities and decodes user-uploaded images into RGB rasters.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/optic-derm-explorer/internal/domain"
	"github.com/optic-derm-explorer/internal/service"
)

// Gradient endpoints: brightness rises linearly from the top row to the
// bottom row to suggest tissue depth.
const (
	gradientTop    = 0.7
	gradientBottom = 1.0
)

// Placeholder renders the synthetic raster shown when no upload exists for
// a (biopsy, modality) pair. The output is deterministic per
// (modality, biopsyID, width, height): per-pixel noise from a PCG generator
// seeded by a stable hash of biopsyID+modality, color-graded per modality,
// with a vertical brightness gradient.
func Placeholder(modality domain.Modality, width, height int, biopsyID string) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid placeholder dimensions %dx%d", width, height)
	}

	seed := service.Seed(biopsyID, string(modality))
	rng := rand.New(rand.NewPCG(seed, seed))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		factor := gradientTop
		if height > 1 {
			factor = gradientTop + (gradientBottom-gradientTop)*float64(y)/float64(height-1)
		}
		for x := 0; x < width; x++ {
			r, g, b := basePixel(modality, rng)
			img.SetRGBA(x, y, color.RGBA{
				R: clip8(r * factor),
				G: clip8(g * factor),
				B: clip8(b * factor),
				A: 255,
			})
		}
	}
	return img, nil
}

// basePixel draws the pre-gradient channel values for one pixel. Each
// modality has a fixed color-grading preset:
//
//	MPM-FLIM  fluorescence-lifetime style, green/teal
//	confocal  reflectance style, grayscale
//	RCM       confocal reflectance style, warm gray
func basePixel(modality domain.Modality, rng *rand.Rand) (r, g, b float64) {
	switch modality {
	case domain.MPM_FLIM:
		r = rng.Float64() * 40
		g = 150 + rng.Float64()*80
		b = 120 + rng.Float64()*60
	case domain.CONFOCAL:
		g = 80 + rng.Float64()*120
		r, b = g, g
	default: // RCM
		g = 100 + rng.Float64()*100
		r = min255(g + 20)
		b = g - 10
	}
	return r, g, b
}

func clip8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func min255(v float64) float64 {
	if v > 255 {
		return 255
	}
	return v
}
