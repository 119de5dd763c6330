package api

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// UploadHandler accepts a resume file upload and runs the full analysis
// @Summary Upload and analyze resume
// @Description Upload a resume file (PDF/DOCX/TXT), extract its text and return the full analysis
// @Tags analysis
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file (PDF, DOCX or TXT)"
// @Success 200 {object} api.UploadResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 500 {object} api.ErrorResponse
// @Router /cv/upload [post]
func (a *API) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// 10MB upload cap
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid (max 10MB)")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	if ext != ".pdf" && ext != ".docx" && ext != ".doc" && ext != ".txt" {
		writeError(w, http.StatusBadRequest, "invalid file type (supported: PDF, DOCX, TXT)")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	profile, err := a.parser.ParseDocument(data, ext)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to parse resume: %v", err))
		return
	}

	log.Info().
		Str("file_name", header.Filename).
		Int64("file_size", header.Size).
		Int("skills", len(profile.Skills)).
		Msg("uploaded resume analyzed")

	writeJSON(w, http.StatusOK, UploadResponse{
		AnalysisID: uuid.New().String(),
		FileName:   header.Filename,
		FileSize:   header.Size,
		Profile:    profile,
	})
}
