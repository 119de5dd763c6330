package api

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"resume-analyzer/internal/resume"
)

// AnalyzeResumeHandler analyzes resume text and extracts structured facts
// @Summary Analyze resume
// @Description Extract skills, experience, education, certifications and contact info from resume text
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body api.AnalyzeResumeRequest true "Resume to analyze"
// @Success 200 {object} api.AnalyzeResumeResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 500 {object} api.ErrorResponse
// @Router /analyze/resume [post]
func (a *API) AnalyzeResumeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req AnalyzeResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	profile, err := a.parseRequest(&req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("error analyzing resume: %v", err))
		return
	}

	log.Info().
		Str("file_name", req.FileName).
		Int("skills", len(profile.Skills)).
		Int("experience_years", profile.ExperienceYears).
		Msg("resume analyzed")

	writeJSON(w, http.StatusOK, AnalyzeResumeResponse{
		AnalysisID: uuid.New().String(),
		Profile:    profile,
	})
}

// parseRequest resolves the single text source: pre-extracted text, or
// base64 document bytes run through the extraction collaborator.
func (a *API) parseRequest(req *AnalyzeResumeRequest) (*resume.Profile, error) {
	if strings.TrimSpace(req.ResumeText) != "" {
		return a.parser.Parse(req.ResumeText)
	}
	if req.FileContent == "" {
		return nil, resume.ErrNoInput
	}

	content := req.FileContent
	// Strip a data URL prefix if the client sent one.
	if i := strings.Index(content, ","); i >= 0 {
		content = content[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 file content: %w", err)
	}
	return a.parser.ParseDocument(data, req.FileType)
}

// MatchHandler scores a resume against a job description
// @Summary Calculate job match score
// @Description Compute weighted skill/experience/semantic match between a resume and a job description
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body api.MatchRequest true "Resume and job description"
// @Success 200 {object} api.MatchResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 500 {object} api.ErrorResponse
// @Router /analyze/match [post]
func (a *API) MatchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	profile, err := a.parser.Parse(req.ResumeText)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("error calculating match: %v", err))
		return
	}

	result := a.scorer.Score(r.Context(), profile.Skills, req.JobDescription,
		req.RequiredSkills, profile.ExperienceYears, req.ResumeText)

	requiredSkills := req.RequiredSkills
	if len(requiredSkills) == 0 {
		requiredSkills = result.MatchedSkills
	}

	log.Info().
		Str("job_title", req.JobTitle).
		Float64("overall_score", result.OverallScore).
		Int("matched", len(result.MatchedSkills)).
		Int("missing", len(result.MissingSkills)).
		Msg("match calculated")

	writeJSON(w, http.StatusOK, MatchResponse{
		AnalysisID:     uuid.New().String(),
		MatchScore:     result,
		ResumeAnalysis: profile,
		JobRequirements: JobRequirements{
			Title:          req.JobTitle,
			Description:    req.JobDescription,
			RequiredSkills: requiredSkills,
		},
		AnalyzedAt: time.Now().UTC(),
	})
}

// ExtractSkillsHandler extracts skills from arbitrary text
// @Summary Extract skills
// @Description Scan text against the skill taxonomy and return matches with category buckets
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body api.ExtractSkillsRequest true "Text to scan"
// @Success 200 {object} api.ExtractSkillsResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /analyze/extract-skills [post]
func (a *API) ExtractSkillsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ExtractSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	extracted := a.taxonomy.Extract(req.Text)

	writeJSON(w, http.StatusOK, ExtractSkillsResponse{
		Skills:      extracted,
		Categorized: a.taxonomy.Categorize(extracted),
		Count:       len(extracted),
	})
}
