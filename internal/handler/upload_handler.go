package handler

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"podkeeper/internal/model"
	"podkeeper/internal/util"
	"podkeeper/pkg/apierror"
)

// UploadHandler stores photo and signature files under the configured
// upload directory and hands back the path a record can reference.
type UploadHandler struct {
	uploadDir     string
	maxUploadSize int64
}

func NewUploadHandler(uploadDir string, maxUploadSize int64) (*UploadHandler, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, err
	}
	return &UploadHandler{uploadDir: uploadDir, maxUploadSize: maxUploadSize}, nil
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		if isPayloadTooLarge(err) {
			writeError(w, apierror.New("PAYLOAD_TOO_LARGE", "request body exceeds MAX_UPLOAD_SIZE", "MAX_UPLOAD_SIZE", http.StatusRequestEntityTooLarge))
			return
		}
		writeError(w, apierror.BadRequest("multipart field 'file' is required", ""))
		return
	}
	defer file.Close()

	name, err := util.SanitizeFilename(filepath.Base(header.Filename))
	if err != nil {
		writeError(w, err)
		return
	}

	// Prefix with a short random id so two drivers uploading
	// "photo.jpg" never clobber each other.
	stored := uuid.NewString()[:8] + "_" + name
	destination := filepath.Join(h.uploadDir, stored)

	out, err := os.OpenFile(destination, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		writeError(w, err)
		return
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		_ = os.Remove(destination)
		if isPayloadTooLarge(err) {
			writeError(w, apierror.New("PAYLOAD_TOO_LARGE", "request body exceeds MAX_UPLOAD_SIZE", "MAX_UPLOAD_SIZE", http.StatusRequestEntityTooLarge))
			return
		}
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, model.UploadResponse{Path: destination})
}

func isPayloadTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "request body too large")
}
