package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursereg-backend/internal/domain"
	"github.com/heartmarshall/coursereg-backend/internal/service/catalog"
)

type catalogService interface {
	List(ctx context.Context, draftID uuid.UUID) ([]domain.Course, error)
	Upload(ctx context.Context, input catalog.UploadInput) (int, error)
	Clear(ctx context.Context, draftID uuid.UUID) (int64, error)
}

// CourseHandler serves the public catalog and admin catalog uploads.
type CourseHandler struct {
	svc      catalogService
	maxBytes int64
	log      *slog.Logger
}

// NewCourseHandler creates a CourseHandler. Upload bodies above maxBytes
// are rejected.
func NewCourseHandler(svc catalogService, maxBytes int64, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{svc: svc, maxBytes: maxBytes, log: logger.With("handler", "course")}
}

// List handles GET /api/courses?draftId=.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	draftID, err := queryUUID(r, "draftId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	courses, err := h.svc.List(r.Context(), draftID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"courses": toCourseResponses(courses)})
}

// Upload handles POST /api/admin/courses?draftId=. The catalog is either the
// raw body (CSV, xlsx or JSON by Content-Type) or the "file" part of a
// multipart form.
func (h *CourseHandler) Upload(w http.ResponseWriter, r *http.Request) {
	draftID, err := queryUUID(r, "draftId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	contentType, body, err := h.readUpload(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		handleError(h.log, w, r, err)
		return
	}

	count, err := h.svc.Upload(r.Context(), catalog.UploadInput{
		DraftID:     draftID,
		ContentType: contentType,
		Body:        body,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "count": count})
}

// Clear handles DELETE /api/admin/courses?draftId=.
func (h *CourseHandler) Clear(w http.ResponseWriter, r *http.Request) {
	draftID, err := queryUUID(r, "draftId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	removed, err := h.svc.Clear(r.Context(), draftID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "deleted": removed})
}

func (h *CourseHandler) readUpload(r *http.Request) (string, []byte, error) {
	contentType := r.Header.Get("Content-Type")
	mediaType, _, _ := mime.ParseMediaType(contentType)

	if mediaType != "multipart/form-data" {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return "", nil, err
		}
		return contentType, body, nil
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", nil, err
		}
		return "", nil, domain.NewValidationError("file", "required")
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		return "", nil, err
	}

	partType := header.Header.Get("Content-Type")
	if byExt := mediaTypeByExtension(header.Filename); byExt != "" {
		if pt, _, _ := mime.ParseMediaType(partType); pt == "" || pt == catalog.MediaOctetStream {
			partType = byExt
		}
	}
	return partType, body, nil
}

// mediaTypeByExtension maps known catalog file extensions to media types.
// Browsers often send CSV and xlsx parts as application/octet-stream.
func mediaTypeByExtension(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return catalog.MediaCSV
	case ".xlsx":
		return catalog.MediaXLSX
	case ".xls":
		return catalog.MediaXLS
	case ".json":
		return catalog.MediaJSON
	}
	return ""
}
