package domain

import (
	"time"
)

// Request/Response Models

// DescriptorReport is the per-descriptor payload for one render cycle:
// the generated value, its reference range, the range comparison, the
// clamped position of the value inside the range (for progress bars), and
// the plain-language explanation sentence.
type DescriptorReport struct {
	Key           DescriptorKey  `json:"key"`
	Value         float64        `json:"value"`
	Reference     ReferenceRange `json:"reference"`
	Comparison    Comparison     `json:"comparison"`
	RangeFraction float64        `json:"range_fraction"`
	Explanation   string         `json:"explanation"`
}

// DescriptorsResponse is returned by the descriptor query endpoint.
// Descriptors appear in the fixed order of DescriptorKeys.
type DescriptorsResponse struct {
	BiopsyID    string             `json:"biopsy_id"`
	ROI         ROI                `json:"roi"`
	Descriptors []DescriptorReport `json:"descriptors"`
	Timestamp   time.Time          `json:"timestamp"`
}

// ModalityInfo describes one imaging modality panel.
type ModalityInfo struct {
	Tag         Modality `json:"tag"`
	Description string   `json:"description"`
}

// UploadResponse is returned after an image upload is accepted.
type UploadResponse struct {
	BiopsyID  string    `json:"biopsy_id"`
	Modality  Modality  `json:"modality"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Timestamp time.Time `json:"timestamp"`
}

// ClearUploadsResponse reports how many uploaded images were discarded for
// a biopsy.
type ClearUploadsResponse struct {
	BiopsyID string `json:"biopsy_id"`
	Removed  int    `json:"removed"`
}

// Image source values reported via the X-Image-Source response header.
const (
	ImageSourceUpload      = "upload"
	ImageSourcePlaceholder = "placeholder"
)
