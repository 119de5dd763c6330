package api

import (
	"time"

	"resume-analyzer/internal/match"
	"resume-analyzer/internal/resume"
	"resume-analyzer/internal/skills"
)

type AnalyzeResumeRequest struct {
	ResumeText string `json:"resume_text"`
	FileName   string `json:"file_name"`
	FileType   string `json:"file_type"`
	// FileContent carries base64-encoded document bytes when resume_text is
	// not pre-extracted. Exactly one of the two must be supplied.
	FileContent string `json:"file_content,omitempty"`
}

type AnalyzeResumeResponse struct {
	AnalysisID string `json:"analysis_id"`
	*resume.Profile
}

type MatchRequest struct {
	ResumeText     string   `json:"resume_text"`
	JobDescription string   `json:"job_description"`
	JobTitle       string   `json:"job_title"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

type JobRequirements struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
}

type MatchResponse struct {
	AnalysisID      string          `json:"analysis_id"`
	MatchScore      match.Result    `json:"match_score"`
	ResumeAnalysis  *resume.Profile `json:"resume_analysis"`
	JobRequirements JobRequirements `json:"job_requirements"`
	AnalyzedAt      time.Time       `json:"analyzed_at"`
}

type ExtractSkillsRequest struct {
	Text string `json:"text"`
}

type ExtractSkillsResponse struct {
	Skills      []string           `json:"skills"`
	Categorized skills.Categorized `json:"categorized"`
	Count       int                `json:"count"`
}

type UploadResponse struct {
	AnalysisID string `json:"analysis_id"`
	FileName   string `json:"file_name"`
	FileSize   int64  `json:"file_size"`
	*resume.Profile
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
