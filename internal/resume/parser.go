package resume

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"resume-analyzer/internal/document"
	"resume-analyzer/internal/skills"
)

// ErrNoInput is returned when neither resume text nor document bytes are supplied.
var ErrNoInput = errors.New("either resume text or file content must be provided")

// Profile is the structured result of analyzing one resume. It is built
// fresh per request and never mutated afterwards.
type Profile struct {
	Skills            []string           `json:"skills"`
	CategorizedSkills skills.Categorized `json:"categorized_skills"`
	ExperienceYears   int                `json:"experience_years"`
	Education         []string           `json:"education"`
	Certifications    []string           `json:"certifications"`
	ContactInfo       map[string]string  `json:"contact_info"`
	Summary           string             `json:"summary"`
	ProcessedAt       time.Time          `json:"processed_at"`
}

// Parser orchestrates the independent extraction heuristics over resume text.
type Parser struct {
	taxonomy *skills.Taxonomy
	docs     *document.Extractor
}

func NewParser(taxonomy *skills.Taxonomy, docs *document.Extractor) *Parser {
	return &Parser{taxonomy: taxonomy, docs: docs}
}

// Parse runs every extraction heuristic over the given text and returns the
// consolidated profile. All heuristics are total functions over any string;
// only missing input is an error.
func (p *Parser) Parse(text string) (*Profile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoInput
	}

	skillList := p.taxonomy.Extract(text)
	years := ExperienceYears(text)
	education := matchLines(text, degreeKeywords, 5)

	return &Profile{
		Skills:            skillList,
		CategorizedSkills: p.taxonomy.Categorize(skillList),
		ExperienceYears:   years,
		Education:         education,
		Certifications:    matchLines(text, certKeywords, 10),
		ContactInfo:       ContactInfo(text),
		Summary:           buildSummary(skillList, years, education),
		ProcessedAt:       time.Now().UTC(),
	}, nil
}

// ParseDocument extracts text from raw document bytes first, then parses it.
func (p *Parser) ParseDocument(data []byte, fileType string) (*Profile, error) {
	if len(data) == 0 {
		return nil, ErrNoInput
	}
	text, err := p.docs.Extract(data, fileType)
	if err != nil {
		return nil, err
	}
	return p.Parse(text)
}

// Year patterns are tried in order; the first pattern that matches wins and
// a single canonical number is kept.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(\d+)\+?\s*yrs?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`experience:\s*(\d+)\+?\s*years?`),
}

// ExperienceYears extracts the stated years of experience, or 0 when no
// pattern matches.
func ExperienceYears(text string) int {
	lower := strings.ToLower(text)
	for _, re := range experiencePatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			years, err := strconv.Atoi(m[1])
			if err == nil {
				return years
			}
		}
	}
	return 0
}

var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "mba", "b.tech",
	"m.tech", "b.sc", "m.sc", "b.e", "m.e", "diploma",
}

var certKeywords = []string{
	"certified", "certification", "certificate", "aws", "azure",
	"google cloud", "pmp", "scrum master", "cissp",
}

// matchLines keeps the first limit lines containing any keyword,
// case-insensitive, in document order.
func matchLines(text string, keywords []string, limit int) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				out = append(out, strings.TrimSpace(line))
				break
			}
		}
		if len(out) == limit {
			break
		}
	}
	return out
}

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
)

// ContactInfo extracts at most one email, phone number, LinkedIn profile and
// GitHub profile. Keys are present only when a value was found.
func ContactInfo(text string) map[string]string {
	info := map[string]string{}
	if m := emailRe.FindString(text); m != "" {
		info["email"] = m
	}
	if m := phoneRe.FindString(text); m != "" {
		info["phone"] = m
	}
	if m := linkedinRe.FindString(text); m != "" {
		info["linkedin"] = m
	}
	if m := githubRe.FindString(text); m != "" {
		info["github"] = m
	}
	return info
}

func buildSummary(skillList []string, years int, education []string) string {
	parts := []string{}
	if years > 0 {
		parts = append(parts, fmt.Sprintf("%d+ years of experience", years))
	}
	if len(skillList) > 0 {
		top := skillList
		if len(top) > 5 {
			top = top[:5]
		}
		parts = append(parts, "Skilled in "+strings.Join(top, ", "))
	}
	if len(education) > 0 {
		parts = append(parts, "Education: "+education[0])
	}
	if len(parts) == 0 {
		return "Resume analyzed"
	}
	return strings.Join(parts, ". ")
}
