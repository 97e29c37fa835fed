package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/steelcheck/backend/config"
	"github.com/steelcheck/backend/internal/domain"
	"github.com/steelcheck/backend/internal/usecase"
	"github.com/steelcheck/backend/pkg/logging"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	reviewService *usecase.ReviewService
	upload        config.UploadConfig
}

// NewHandler creates a new HTTP handler
func NewHandler(reviewService *usecase.ReviewService, upload config.UploadConfig) *Handler {
	return &Handler{
		reviewService: reviewService,
		upload:        upload,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "steelcheck-backend",
		"version": "1.0.0",
	})
}

// Index serves the embedded review page
func (h *Handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

// compareForm carries the non-file fields of a review request
type compareForm struct {
	StructuralStart int `form:"structural_start" binding:"omitempty,gte=0"`
	StructuralEnd   int `form:"structural_end" binding:"omitempty,gte=0"`
	ShopStart       int `form:"shop_start" binding:"omitempty,gte=0"`
	ShopEnd         int `form:"shop_end" binding:"omitempty,gte=0"`
}

// extractForm carries the non-file fields of an extraction test request
type extractForm struct {
	Start int `form:"start" binding:"omitempty,gte=0"`
	End   int `form:"end" binding:"omitempty,gte=0"`
}

// CompareDrawings runs a review over the uploaded structural and shop
// drawings and returns the full report as JSON
func (h *Handler) CompareDrawings(c *gin.Context) {
	input, err := h.parseCompareRequest(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	report, err := h.reviewService.CompareDrawings(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// CompareDrawingsCSV runs the same review and returns the detail table as a
// CSV attachment
func (h *Handler) CompareDrawingsCSV(c *gin.Context) {
	input, err := h.parseCompareRequest(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	report, err := h.reviewService.CompareDrawings(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	data, err := buildReportCSV(report)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", reportCSVFilename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ExtractMembers runs extraction and parsing only, for checking what the
// parser sees in a set of drawings
func (h *Handler) ExtractMembers(c *gin.Context) {
	var form extractForm
	if err := c.ShouldBind(&form); err != nil {
		h.respondError(c, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
		return
	}

	pages, err := pageRangeFrom(form.Start, form.End)
	if err != nil {
		h.respondError(c, err)
		return
	}

	files, err := h.formFiles(c, "drawings")
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.reviewService.ExtractMembers(c.Request.Context(), files, pages)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// parseCompareRequest reads form fields and both file sets out of a
// multipart review request
func (h *Handler) parseCompareRequest(c *gin.Context) (usecase.CompareInput, error) {
	var input usecase.CompareInput

	var form compareForm
	if err := c.ShouldBind(&form); err != nil {
		return input, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}

	structuralPages, err := pageRangeFrom(form.StructuralStart, form.StructuralEnd)
	if err != nil {
		return input, err
	}
	shopPages, err := pageRangeFrom(form.ShopStart, form.ShopEnd)
	if err != nil {
		return input, err
	}

	structural, err := h.formFiles(c, "structural")
	if err != nil {
		return input, err
	}
	shop, err := h.formFiles(c, "shop")
	if err != nil {
		return input, err
	}

	input = usecase.CompareInput{
		Structural:      structural,
		Shop:            shop,
		StructuralPages: structuralPages,
		ShopPages:       shopPages,
	}
	return input, nil
}

// pageRangeFrom validates the page window shape. End == 0 leaves the range
// open-ended, so only a positive End can conflict with Start.
func pageRangeFrom(start, end int) (domain.PageRange, error) {
	if end > 0 && start > end {
		return domain.PageRange{}, fmt.Errorf("%w: page range start %d after end %d", domain.ErrInvalidRequest, start, end)
	}
	return domain.PageRange{Start: start, End: end}, nil
}

// formFiles reads every uploaded file of one multipart field into memory,
// enforcing the configured count and size limits
func (h *Handler) formFiles(c *gin.Context, field string) ([]domain.DrawingFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, fmt.Errorf("%w: expected a multipart form upload", domain.ErrInvalidRequest)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}

	headers := form.File[field]
	if len(headers) > h.upload.MaxFilesPerSide {
		return nil, fmt.Errorf("%w: at most %d files per side, got %d", domain.ErrInvalidRequest, h.upload.MaxFilesPerSide, len(headers))
	}

	maxBytes := int64(h.upload.MaxFileSizeMB) << 20
	files := make([]domain.DrawingFile, 0, len(headers))
	for _, header := range headers {
		if header.Size > maxBytes {
			return nil, fmt.Errorf("%w: %q exceeds the %d MB file limit", domain.ErrInvalidRequest, header.Filename, h.upload.MaxFileSizeMB)
		}

		data, err := readUpload(header)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %q: %v", domain.ErrInvalidRequest, header.Filename, err)
		}

		files = append(files, domain.DrawingFile{Name: header.Filename, Data: data})
	}

	return files, nil
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// respondError maps domain sentinels to HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrInvalidRequest) || errors.Is(err, domain.ErrNoDrawings) {
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		logging.Log.Errorf("[HTTP] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
