package resume

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-analyzer/internal/document"
	"resume-analyzer/internal/skills"
)

func newTestParser() *Parser {
	return NewParser(skills.NewTaxonomy(), document.NewExtractor())
}

func TestParseRequiresText(t *testing.T) {
	p := newTestParser()

	_, err := p.Parse("")
	assert.ErrorIs(t, err, ErrNoInput)

	_, err = p.Parse("   \n\t  ")
	assert.ErrorIs(t, err, ErrNoInput)

	_, err = p.ParseDocument(nil, "pdf")
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestParseFullProfile(t *testing.T) {
	p := newTestParser()

	text := strings.Join([]string{
		"Jane Doe",
		"jane@example.com | github.com/janedoe",
		"5+ years of experience building backend systems with Python and Docker",
		"Bachelor of Science in Computer Science",
		"AWS Certified Solutions Architect",
	}, "\n")

	profile, err := p.Parse(text)
	require.NoError(t, err)

	assert.Contains(t, profile.Skills, "Python")
	assert.Contains(t, profile.Skills, "Docker")
	assert.Equal(t, 5, profile.ExperienceYears)
	assert.Equal(t, []string{"Bachelor of Science in Computer Science"}, profile.Education)
	assert.Contains(t, profile.Certifications, "AWS Certified Solutions Architect")
	assert.Equal(t, "jane@example.com", profile.ContactInfo["email"])
	assert.Equal(t, "github.com/janedoe", profile.ContactInfo["github"])
	assert.False(t, profile.ProcessedAt.IsZero())
	assert.True(t, strings.HasPrefix(profile.Summary, "5+ years of experience"))
}

func TestExperienceYearsPatterns(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"7 years of experience in software", 7},
		{"10+ years experience leading teams", 10},
		{"3 yrs experience with Go", 3},
		{"4 yr of experience", 4},
		{"Experience: 6 years", 6},
		{"1 year of experience", 1},
		{"no numbers here", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExperienceYears(tt.text), "text: %q", tt.text)
	}
}

func TestExperienceYearsFirstPatternWins(t *testing.T) {
	// Pattern priority, not position: the "years of experience" form is
	// checked before the "experience:" form.
	got := ExperienceYears("Experience: 2 years. Later gained 8 years of experience total.")
	assert.Equal(t, 8, got)
}

func TestEducationCap(t *testing.T) {
	var lines []string
	for i := 0; i < 8; i++ {
		lines = append(lines, fmt.Sprintf("Bachelor degree number %d", i))
	}
	p := newTestParser()
	profile, err := p.Parse(strings.Join(lines, "\n"))
	require.NoError(t, err)

	assert.Len(t, profile.Education, 5)
	assert.Equal(t, "Bachelor degree number 0", profile.Education[0])
}

func TestCertificationsCap(t *testing.T) {
	var lines []string
	for i := 0; i < 14; i++ {
		lines = append(lines, fmt.Sprintf("Certified professional level %d", i))
	}
	p := newTestParser()
	profile, err := p.Parse(strings.Join(lines, "\n"))
	require.NoError(t, err)

	assert.Len(t, profile.Certifications, 10)
}

func TestContactInfoOnlyFoundKeys(t *testing.T) {
	info := ContactInfo("Reach jane@example.com or github.com/janedoe")

	assert.Equal(t, map[string]string{
		"email":  "jane@example.com",
		"github": "github.com/janedoe",
	}, info)
	assert.NotContains(t, info, "phone")
	assert.NotContains(t, info, "linkedin")
}

func TestContactInfoAllFields(t *testing.T) {
	text := "Call +1 555-123-4567, mail bob@work.io, see linkedin.com/in/bob-smith and github.com/bobsmith"
	info := ContactInfo(text)

	assert.Equal(t, "bob@work.io", info["email"])
	assert.Equal(t, "+1 555-123-4567", info["phone"])
	assert.Equal(t, "linkedin.com/in/bob-smith", info["linkedin"])
	assert.Equal(t, "github.com/bobsmith", info["github"])
}

func TestSummaryFallback(t *testing.T) {
	p := newTestParser()
	profile, err := p.Parse("just some plain words")
	require.NoError(t, err)

	assert.Equal(t, "Resume analyzed", profile.Summary)
	assert.Empty(t, profile.Skills)
	assert.Empty(t, profile.Education)
}

func TestSummaryComposition(t *testing.T) {
	got := buildSummary([]string{"Aws", "Docker", "Go", "Python", "React", "Sql"}, 4,
		[]string{"Master of Science"})

	assert.Equal(t,
		"4+ years of experience. Skilled in Aws, Docker, Go, Python, React. Education: Master of Science",
		got)
}
