// Package domain contains the core entities for the OPTIC-DERM Explorer
// backend: the patient/biopsy catalog model, region-of-interest (ROI)
// definitions, tissue descriptor sets with their reference ranges, and the
// imaging modalities rendered by the dashboard.
//
// Descriptor values are mock outputs of interpretable models applied to
// multimodal optical imaging (multiphoton FLIM, confocal reflectance, RCM);
// they are generated deterministically and never persisted.
package domain

// Modality identifies one of the three optical imaging techniques shown
// side by side on the dashboard.
type Modality string

const (
	MPM_FLIM Modality = "MPM-FLIM"
	CONFOCAL Modality = "confocal"
	RCM      Modality = "RCM"
)

// Modalities lists all supported modalities in display order.
func Modalities() []Modality {
	return []Modality{MPM_FLIM, CONFOCAL, RCM}
}

// ParseModality validates a modality tag received over the API.
func ParseModality(s string) (Modality, bool) {
	switch Modality(s) {
	case MPM_FLIM, CONFOCAL, RCM:
		return Modality(s), true
	}
	return "", false
}

// Description returns the human-readable caption used for a modality panel.
func (m Modality) Description() string {
	switch m {
	case MPM_FLIM:
		return "Multiphoton FLIM (fluorescence lifetime)"
	case CONFOCAL:
		return "Confocal reflectance"
	case RCM:
		return "Reflectance confocal microscopy"
	}
	return string(m)
}

// DescriptorKey identifies a quantitative tissue descriptor.
type DescriptorKey string

const (
	KERATIN_DOMINANCE   DescriptorKey = "keratin_dominance"
	METABOLIC_STATE     DescriptorKey = "metabolic_state"
	TISSUE_ORGANIZATION DescriptorKey = "tissue_organization"
)

// DescriptorKeys lists the descriptor keys in their fixed display order.
// The order is part of the API contract: descriptor reports are always
// rendered in this sequence.
func DescriptorKeys() []DescriptorKey {
	return []DescriptorKey{KERATIN_DOMINANCE, METABOLIC_STATE, TISSUE_ORGANIZATION}
}

// Comparison classifies a descriptor value against its reference range.
type Comparison string

const (
	BELOW_RANGE  Comparison = "BELOW_RANGE"
	WITHIN_RANGE Comparison = "WITHIN_RANGE"
	ABOVE_RANGE  Comparison = "ABOVE_RANGE"
)

// Phrase returns the comparison wording used inside explanation sentences.
func (c Comparison) Phrase() string {
	switch c {
	case BELOW_RANGE:
		return "below normal range"
	case ABOVE_RANGE:
		return "above normal range"
	default:
		return "within normal range"
	}
}

// Patient is a catalog entry mapping a patient to their biopsies.
// The catalog is static and never mutated after process start.
type Patient struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Biopsies []string `json:"biopsies"`
}

// ROI is a named tissue zone within a biopsy image.
type ROI struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ReferenceRange is the [Min, Max] interval considered normal for a
// descriptor, together with its display metadata.
type ReferenceRange struct {
	Key   DescriptorKey `json:"key"`
	Label string        `json:"label"`
	Unit  string        `json:"unit"`
	Min   float64       `json:"min"`
	Max   float64       `json:"max"`
}

// DescriptorSet holds the three tissue descriptors computed for one
// (biopsy, ROI) selection. It is a fixed-shape record rather than an
// open-ended map so that field order and presence are explicit.
type DescriptorSet struct {
	KeratinDominance   float64 `json:"keratin_dominance"`
	MetabolicState     float64 `json:"metabolic_state"`
	TissueOrganization float64 `json:"tissue_organization"`
}

// Value returns the descriptor identified by key. Unknown keys report ok=false.
func (d DescriptorSet) Value(key DescriptorKey) (float64, bool) {
	switch key {
	case KERATIN_DOMINANCE:
		return d.KeratinDominance, true
	case METABOLIC_STATE:
		return d.MetabolicState, true
	case TISSUE_ORGANIZATION:
		return d.TissueOrganization, true
	}
	return 0, false
}
