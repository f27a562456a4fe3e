// Package catalog holds the static lookup tables behind the dashboard's
// selection widgets: the patient/biopsy roster, the ROI options, and the
// normal reference ranges for each tissue descriptor.
package catalog

import (
	"github.com/optic-derm-explorer/internal/domain"
)

// Catalog provides read-only access to the static demo dataset. All slices
// and maps are populated once by New and never mutated afterwards.
type Catalog struct {
	patients   []domain.Patient
	rois       []domain.ROI
	references []domain.ReferenceRange

	patientByID  map[string]domain.Patient
	roiByID      map[string]domain.ROI
	referenceByK map[domain.DescriptorKey]domain.ReferenceRange
	biopsySet    map[string]struct{}
}

// New builds the catalog for the demo cohort.
func New() *Catalog {
	c := &Catalog{
		patients: []domain.Patient{
			{ID: "P001", Label: "Patient 001", Biopsies: []string{"B001-A", "B001-B"}},
			{ID: "P002", Label: "Patient 002", Biopsies: []string{"B002-A"}},
			{ID: "P003", Label: "Patient 003", Biopsies: []string{"B003-A", "B003-B", "B003-C"}},
		},
		rois: []domain.ROI{
			{ID: "epidermis", Label: "Epidermis", Description: "Outer layer"},
			{ID: "dermis", Label: "Dermis", Description: "Middle layer"},
			{ID: "lesion_center", Label: "Lesion center", Description: "Center of imaged lesion"},
		},
		references: []domain.ReferenceRange{
			{Key: domain.KERATIN_DOMINANCE, Label: "Keratin dominance", Unit: "ratio", Min: 0.15, Max: 0.45},
			{Key: domain.METABOLIC_STATE, Label: "Metabolic state", Unit: "NADH/FAD ratio", Min: 0.35, Max: 0.75},
			{Key: domain.TISSUE_ORGANIZATION, Label: "Tissue organization", Unit: "score", Min: 0.50, Max: 0.90},
		},
	}

	c.patientByID = make(map[string]domain.Patient, len(c.patients))
	c.biopsySet = make(map[string]struct{})
	for _, p := range c.patients {
		c.patientByID[p.ID] = p
		for _, b := range p.Biopsies {
			c.biopsySet[b] = struct{}{}
		}
	}
	c.roiByID = make(map[string]domain.ROI, len(c.rois))
	for _, r := range c.rois {
		c.roiByID[r.ID] = r
	}
	c.referenceByK = make(map[domain.DescriptorKey]domain.ReferenceRange, len(c.references))
	for _, ref := range c.references {
		c.referenceByK[ref.Key] = ref
	}

	return c
}

// Patients returns the patient roster in display order.
func (c *Catalog) Patients() []domain.Patient {
	out := make([]domain.Patient, len(c.patients))
	copy(out, c.patients)
	return out
}

// ROIs returns the ROI options in display order.
func (c *Catalog) ROIs() []domain.ROI {
	out := make([]domain.ROI, len(c.rois))
	copy(out, c.rois)
	return out
}

// ReferenceRanges returns the reference table in the fixed descriptor order.
func (c *Catalog) ReferenceRanges() []domain.ReferenceRange {
	out := make([]domain.ReferenceRange, len(c.references))
	copy(out, c.references)
	return out
}

// Patient looks up a patient by id.
func (c *Catalog) Patient(id string) (domain.Patient, bool) {
	p, ok := c.patientByID[id]
	return p, ok
}

// ROI looks up an ROI by id.
func (c *Catalog) ROI(id string) (domain.ROI, bool) {
	r, ok := c.roiByID[id]
	return r, ok
}

// Reference looks up the reference range for a descriptor key.
func (c *Catalog) Reference(key domain.DescriptorKey) (domain.ReferenceRange, bool) {
	ref, ok := c.referenceByK[key]
	return ref, ok
}

// HasBiopsy reports whether a biopsy id belongs to any cataloged patient.
func (c *Catalog) HasBiopsy(id string) bool {
	_, ok := c.biopsySet[id]
	return ok
}
