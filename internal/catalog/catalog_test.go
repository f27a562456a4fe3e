package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optic-derm-explorer/internal/domain"
)

func TestCatalog_Patients(t *testing.T) {
	c := New()

	patients := c.Patients()
	require.Len(t, patients, 3)

	assert.Equal(t, "P001", patients[0].ID)
	assert.Equal(t, []string{"B001-A", "B001-B"}, patients[0].Biopsies)
	assert.Equal(t, []string{"B002-A"}, patients[1].Biopsies)
	assert.Equal(t, []string{"B003-A", "B003-B", "B003-C"}, patients[2].Biopsies)
}

func TestCatalog_ROIs(t *testing.T) {
	c := New()

	rois := c.ROIs()
	require.Len(t, rois, 3)

	assert.Equal(t, "epidermis", rois[0].ID)
	assert.Equal(t, "dermis", rois[1].ID)
	assert.Equal(t, "lesion_center", rois[2].ID)

	roi, ok := c.ROI("lesion_center")
	require.True(t, ok)
	assert.Equal(t, "Lesion center", roi.Label)
	assert.Equal(t, "Center of imaged lesion", roi.Description)
}

func TestCatalog_ReferenceRanges(t *testing.T) {
	c := New()

	refs := c.ReferenceRanges()
	require.Len(t, refs, 3)

	// Fixed display order matches DescriptorKeys
	for i, key := range domain.DescriptorKeys() {
		assert.Equal(t, key, refs[i].Key)
	}

	ref, ok := c.Reference(domain.KERATIN_DOMINANCE)
	require.True(t, ok)
	assert.Equal(t, "Keratin dominance", ref.Label)
	assert.Equal(t, "ratio", ref.Unit)
	assert.InDelta(t, 0.15, ref.Min, 1e-12)
	assert.InDelta(t, 0.45, ref.Max, 1e-12)
}

func TestCatalog_UnknownLookups(t *testing.T) {
	c := New()

	_, ok := c.Patient("P999")
	assert.False(t, ok)

	_, ok = c.ROI("subcutis")
	assert.False(t, ok)

	_, ok = c.Reference(domain.DescriptorKey("collagen_density"))
	assert.False(t, ok)

	assert.False(t, c.HasBiopsy("B999-Z"))
	assert.True(t, c.HasBiopsy("B003-C"))
}
