package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/optic-derm-explorer/internal/domain"
	"github.com/optic-derm-explorer/internal/imaging"
	"github.com/optic-derm-explorer/internal/metrics"
)

// handlePatients returns the patient roster for the case-selection widget.
func (s *Server) handlePatients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"patients": s.catalog.Patients()})
}

// handlePatient returns one patient with their biopsies, for deep links
// into a specific case.
func (s *Server) handlePatient(c *gin.Context) {
	patient, ok := s.catalog.Patient(c.Param("patient_id"))
	if !ok {
		s.abortWithError(c, http.StatusNotFound, domain.ErrUnknownPatient,
			"unknown patient id", c.Param("patient_id"))
		return
	}
	c.JSON(http.StatusOK, patient)
}

// handleROIs returns the region-of-interest options.
func (s *Server) handleROIs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rois": s.catalog.ROIs()})
}

// handleModalities returns the imaging modality panels in display order.
func (s *Server) handleModalities(c *gin.Context) {
	infos := make([]domain.ModalityInfo, 0, len(domain.Modalities()))
	for _, m := range domain.Modalities() {
		infos = append(infos, domain.ModalityInfo{Tag: m, Description: m.Description()})
	}
	c.JSON(http.StatusOK, gin.H{"modalities": infos})
}

// handleReference returns the normal reference ranges in display order.
func (s *Server) handleReference(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reference_ranges": s.catalog.ReferenceRanges()})
}

// handleDescriptors computes the descriptor report for one selection.
// The generators themselves accept any identifier; validation against the
// catalog happens here at the boundary.
func (s *Server) handleDescriptors(c *gin.Context) {
	biopsyID := c.Query("biopsy_id")
	roiID := c.Query("roi_id")
	if biopsyID == "" || roiID == "" {
		s.abortWithError(c, http.StatusBadRequest, domain.ErrInvalidInput,
			"biopsy_id and roi_id query parameters are required", "")
		return
	}
	if !s.catalog.HasBiopsy(biopsyID) {
		s.abortWithError(c, http.StatusNotFound, domain.ErrUnknownBiopsy,
			"unknown biopsy id", biopsyID)
		return
	}
	roi, ok := s.catalog.ROI(roiID)
	if !ok {
		s.abortWithError(c, http.StatusNotFound, domain.ErrUnknownROI,
			"unknown roi id", roiID)
		return
	}

	set := s.descriptors.Descriptors(biopsyID, roiID)
	metrics.DescriptorComputations.Inc()

	reports := make([]domain.DescriptorReport, 0, len(domain.DescriptorKeys()))
	for _, key := range domain.DescriptorKeys() {
		ref, ok := s.catalog.Reference(key)
		if !ok {
			s.abortWithError(c, http.StatusInternalServerError, domain.ErrInternalServer,
				"missing reference range", string(key))
			return
		}
		value, _ := set.Value(key)
		reports = append(reports, domain.DescriptorReport{
			Key:           key,
			Value:         value,
			Reference:     ref,
			Comparison:    s.explainer.Classify(value, ref),
			RangeFraction: s.explainer.RangeFraction(value, ref),
			Explanation:   s.explainer.Explain(value, ref),
		})
	}

	c.JSON(http.StatusOK, domain.DescriptorsResponse{
		BiopsyID:    biopsyID,
		ROI:         roi,
		Descriptors: reports,
		Timestamp:   time.Now().UTC(),
	})
}

// handleImage serves the raster for one modality panel: the session upload
// when present, otherwise a deterministic placeholder.
func (s *Server) handleImage(c *gin.Context) {
	biopsyID, modality, ok := s.imageSlot(c)
	if !ok {
		return
	}

	if img, found := s.uploads.Get(biopsyID, modality); found {
		buf, err := imaging.EncodePNG(img)
		if err != nil {
			s.abortWithError(c, http.StatusInternalServerError, domain.ErrInternalServer,
				"failed to encode uploaded image", err.Error())
			return
		}
		c.Header("X-Image-Source", domain.ImageSourceUpload)
		c.Data(http.StatusOK, "image/png", buf)
		return
	}

	width, height, ok := s.imageDimensions(c)
	if !ok {
		return
	}

	start := time.Now()
	img, err := imaging.Placeholder(modality, width, height, biopsyID)
	if err != nil {
		s.abortWithError(c, http.StatusBadRequest, domain.ErrInvalidInput,
			"invalid image dimensions", err.Error())
		return
	}
	metrics.PlaceholderRenderSeconds.Observe(time.Since(start).Seconds())
	metrics.PlaceholderRenders.WithLabelValues(string(modality)).Inc()

	buf, err := imaging.EncodePNG(img)
	if err != nil {
		s.abortWithError(c, http.StatusInternalServerError, domain.ErrInternalServer,
			"failed to encode placeholder image", err.Error())
		return
	}
	c.Header("X-Image-Source", domain.ImageSourcePlaceholder)
	c.Data(http.StatusOK, "image/png", buf)
}

// handleUpload accepts an image file for a (biopsy, modality) slot. Decode
// failures are reported to the user and the placeholder stays in effect.
func (s *Server) handleUpload(c *gin.Context) {
	biopsyID, modality, ok := s.imageSlot(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.Upload.MaxBytes)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			metrics.UploadsRejected.WithLabelValues("too_large").Inc()
			s.abortWithError(c, http.StatusRequestEntityTooLarge, domain.ErrUploadTooLarge,
				"uploaded file exceeds size limit", "")
			return
		}
		metrics.UploadsRejected.WithLabelValues("invalid_form").Inc()
		s.abortWithError(c, http.StatusBadRequest, domain.ErrInvalidInput,
			"multipart form field 'image' is required", err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.abortWithError(c, http.StatusInternalServerError, domain.ErrInternalServer,
			"failed to open uploaded file", err.Error())
		return
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		metrics.UploadsRejected.WithLabelValues("decode").Inc()
		s.logger.WithFields(logrus.Fields{
			"biopsy_id": biopsyID,
			"modality":  modality,
			"filename":  fileHeader.Filename,
		}).WithError(err).Warn("Rejected uploaded image")
		s.abortWithError(c, http.StatusUnprocessableEntity, domain.ErrImageDecode,
			"could not decode uploaded image; placeholder retained", err.Error())
		return
	}

	s.uploads.Put(biopsyID, modality, img)
	metrics.UploadsAccepted.Inc()

	bounds := img.Bounds()
	c.JSON(http.StatusOK, domain.UploadResponse{
		BiopsyID:  biopsyID,
		Modality:  modality,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		Timestamp: time.Now().UTC(),
	})
}

// handleClearUploads discards all uploads for a biopsy.
func (s *Server) handleClearUploads(c *gin.Context) {
	biopsyID := c.Param("biopsy_id")
	if !s.catalog.HasBiopsy(biopsyID) {
		s.abortWithError(c, http.StatusNotFound, domain.ErrUnknownBiopsy,
			"unknown biopsy id", biopsyID)
		return
	}

	removed := s.uploads.ClearBiopsy(biopsyID)
	c.JSON(http.StatusOK, domain.ClearUploadsResponse{
		BiopsyID: biopsyID,
		Removed:  removed,
	})
}

// imageSlot validates the path parameters shared by the image endpoints.
func (s *Server) imageSlot(c *gin.Context) (string, domain.Modality, bool) {
	biopsyID := c.Param("biopsy_id")
	if !s.catalog.HasBiopsy(biopsyID) {
		s.abortWithError(c, http.StatusNotFound, domain.ErrUnknownBiopsy,
			"unknown biopsy id", biopsyID)
		return "", "", false
	}
	modality, ok := domain.ParseModality(c.Param("modality"))
	if !ok {
		s.abortWithError(c, http.StatusBadRequest, domain.ErrUnknownModality,
			"unknown modality", c.Param("modality"))
		return "", "", false
	}
	return biopsyID, modality, true
}

// imageDimensions parses the optional width/height query parameters,
// applying defaults and clamping to the configured maxima.
func (s *Server) imageDimensions(c *gin.Context) (int, int, bool) {
	width := s.cfg.Imaging.DefaultWidth
	height := s.cfg.Imaging.DefaultHeight

	if raw := c.Query("width"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			s.abortWithError(c, http.StatusBadRequest, domain.ErrInvalidInput,
				"width must be a positive integer", raw)
			return 0, 0, false
		}
		width = v
	}
	if raw := c.Query("height"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			s.abortWithError(c, http.StatusBadRequest, domain.ErrInvalidInput,
				"height must be a positive integer", raw)
			return 0, 0, false
		}
		height = v
	}

	if width > s.cfg.Imaging.MaxWidth {
		width = s.cfg.Imaging.MaxWidth
	}
	if height > s.cfg.Imaging.MaxHeight {
		height = s.cfg.Imaging.MaxHeight
	}
	return width, height, true
}
