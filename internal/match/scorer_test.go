package match

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.vectors[text], nil
}

func TestSkillMatchNoRequirementsDefault(t *testing.T) {
	got := calculateSkillMatch([]string{"Python", "Sql"}, nil)

	assert.Equal(t, 80.0, got.score)
	assert.Equal(t, []string{"Python", "Sql"}, got.matched)
	assert.Empty(t, got.missing)
	assert.Equal(t, []string{"Python", "Sql"}, got.additional)
}

func TestSkillMatchExactAndMissing(t *testing.T) {
	got := calculateSkillMatch(
		[]string{"Python", "SQL"},
		[]string{"Python", "Java", "SQL"},
	)

	assert.Equal(t, []string{"Python", "SQL"}, got.matched)
	assert.Equal(t, []string{"Java"}, got.missing)
	// (2/3)*100 = 66.67, no additional skills, no bonus
	assert.InDelta(t, 66.67, got.score, 0.01)
}

func TestSkillMatchSubstringFallback(t *testing.T) {
	got := calculateSkillMatch(
		[]string{"Amazon Aws", "Reactjs"},
		[]string{"AWS", "React"},
	)

	assert.Equal(t, []string{"AWS", "React"}, got.matched)
	assert.Empty(t, got.missing)
}

func TestSkillMatchAdditionalBonusCapped(t *testing.T) {
	resume := []string{
		"A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8", "A9", "A10",
		"A11", "A12", "Python",
	}
	got := calculateSkillMatch(resume, []string{"Python"})

	// 100 from the full match, bonus min(12*2, 20) = 20, capped at 100.
	assert.Equal(t, 100.0, got.score)
	assert.Len(t, got.additional, 10)
}

func TestExperienceMatch(t *testing.T) {
	tests := []struct {
		resume, required int
		want             float64
	}{
		{5, 0, 80.0},
		{5, 5, 100.0},
		{5, 3, 100.0}, // surplus of 2 still perfect
		{5, 2, 95.0},  // over-qualified beyond 2 years
		{2, 5, 55.0},  // 3 short: 100 - 45
		{0, 7, 0.0},   // floor at 0
	}
	for _, tt := range tests {
		got := calculateExperienceMatch(tt.resume, tt.required)
		assert.Equal(t, tt.want, got, "resume=%d required=%d", tt.resume, tt.required)
	}
}

func TestRequiredExperienceExtraction(t *testing.T) {
	assert.Equal(t, 5, RequiredExperience("We need 5+ years of experience with Go"))
	assert.Equal(t, 3, RequiredExperience("Minimum 3 years in backend work"))
	assert.Equal(t, 2, RequiredExperience("at least 2 years writing services"))
	assert.Equal(t, 0, RequiredExperience("junior welcome"))
}

func TestExtractJobSkills(t *testing.T) {
	got := extractJobSkills("Looking for Python and React engineers with CI/CD and AWS chops")

	assert.Contains(t, got, "Python")
	assert.Contains(t, got, "React")
	assert.Contains(t, got, "Ci/Cd")
	assert.Contains(t, got, "Aws")
	assert.NotContains(t, got, "Java") // "java" must not fire without a real mention
}

func TestJaccardSimilarity(t *testing.T) {
	assert.Equal(t, 50.0, jaccardSimilarity("a b c", "b c d"))
	assert.Equal(t, 100.0, jaccardSimilarity("go go go", "GO"))
	assert.Equal(t, 0.0, jaccardSimilarity("", ""))
	assert.Equal(t, 0.0, jaccardSimilarity("alpha", "beta"))
}

func TestScoreFallsBackWithoutEmbedder(t *testing.T) {
	s := NewScorer(nil)

	result := s.Score(context.Background(), []string{"Python"}, "python needed", nil, 3, "python expert")

	assert.GreaterOrEqual(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 100.0)
	assert.NotEmpty(t, result.Recommendations)
}

func TestScoreRecoversFromEmbedderFailure(t *testing.T) {
	stub := &stubEmbedder{err: errors.New("upstream down")}
	s := NewScorer(stub)

	result := s.Score(context.Background(), []string{"Python"}, "python role", nil, 2, "python person")

	require.Equal(t, 1, stub.calls) // fails on the first embed, falls back
	assert.GreaterOrEqual(t, result.SemanticSimilarityScore, 0.0)
	assert.LessOrEqual(t, result.SemanticSimilarityScore, 100.0)
}

func TestScoreUsesEmbeddingsWhenAvailable(t *testing.T) {
	stub := &stubEmbedder{vectors: map[string][]float32{
		"resume text": {1, 0, 0},
		"job text":    {1, 0, 0},
	}}
	s := NewScorer(stub)

	result := s.Score(context.Background(), []string{"Python"}, "job text", []string{"Python"}, 0, "resume text")

	assert.Equal(t, 2, stub.calls)
	assert.Equal(t, 100.0, result.SemanticSimilarityScore)
	assert.Equal(t, 100.0, result.SkillMatchScore)
}

func TestOverallScoreWeighting(t *testing.T) {
	stub := &stubEmbedder{vectors: map[string][]float32{
		"r": {1, 0},
		"j": {0, 1}, // orthogonal: semantic similarity 0
	}}
	s := NewScorer(stub)

	result := s.Score(context.Background(), []string{"Python"}, "j", []string{"Python"}, 5, "r")

	// skill 100 (exact match, no additional), experience 80 (no requirement),
	// semantic 0 -> 100*0.5 + 80*0.25 + 0*0.25 = 70
	assert.Equal(t, 100.0, result.SkillMatchScore)
	assert.Equal(t, 80.0, result.ExperienceMatchScore)
	assert.Equal(t, 0.0, result.SemanticSimilarityScore)
	assert.Equal(t, 70.0, result.OverallScore)
}

func TestRecommendationsFewMissing(t *testing.T) {
	got := buildRecommendations([]string{"Java", "Go"}, []string{"Python"}, 5, 3)

	require.Len(t, got, 2)
	assert.Equal(t, "Consider learning: Java, Go to improve your match", got[0])
	assert.Equal(t, "Great! You match 1 required skills", got[1])
}

func TestRecommendationsManyMissing(t *testing.T) {
	got := buildRecommendations([]string{"Java", "Go", "Rust", "C++"}, nil, 1, 4)

	require.Len(t, got, 2)
	assert.Equal(t, "Focus on acquiring these key skills: Java, Go, Rust", got[0])
	assert.Equal(t, "You may need 3 more year(s) of experience for this role", got[1])
}

func TestRecommendationsFallback(t *testing.T) {
	got := buildRecommendations(nil, nil, 5, 0)

	assert.Equal(t, []string{"Excellent match! You meet most requirements"}, got)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 2, 3}, []float32{1, 2, 3}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 1}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1}, []float32{1, 2}))
}
