package match

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"resume-analyzer/internal/skills"
)

// Result is the structured outcome of comparing one resume against one job
// description. Built once per request, never stored.
type Result struct {
	OverallScore            float64  `json:"overall_score"`
	SkillMatchScore         float64  `json:"skill_match_score"`
	ExperienceMatchScore    float64  `json:"experience_match_score"`
	SemanticSimilarityScore float64  `json:"semantic_similarity_score"`
	MatchedSkills           []string `json:"matched_skills"`
	MissingSkills           []string `json:"missing_skills"`
	AdditionalSkills        []string `json:"additional_skills"`
	Recommendations         []string `json:"recommendations"`
}

// Scorer computes weighted multi-factor match scores. The embedder is
// optional; when nil or failing, semantic similarity degrades to word overlap.
type Scorer struct {
	embedder Embedder
}

func NewScorer(embedder Embedder) *Scorer {
	return &Scorer{embedder: embedder}
}

// Weights of the overall score. They sum to 1.0 so the weighted result stays
// within [0, 100] as long as each sub-score does.
const (
	skillWeight      = 0.5
	experienceWeight = 0.25
	semanticWeight   = 0.25
)

// Score computes the overall match between a resume and a job description.
// requiredSkills may be empty, in which case requirements are derived from
// the job text.
func (s *Scorer) Score(
	ctx context.Context,
	resumeSkills []string,
	jobDescription string,
	requiredSkills []string,
	resumeYears int,
	resumeText string,
) Result {
	if len(requiredSkills) == 0 {
		requiredSkills = extractJobSkills(jobDescription)
	}

	skill := calculateSkillMatch(resumeSkills, requiredSkills)

	requiredYears := RequiredExperience(jobDescription)
	experience := calculateExperienceMatch(resumeYears, requiredYears)

	semantic := s.semanticSimilarity(ctx, resumeText, jobDescription)

	overall := skill.score*skillWeight + experience*experienceWeight + semantic*semanticWeight

	return Result{
		OverallScore:            round2(overall),
		SkillMatchScore:         round2(skill.score),
		ExperienceMatchScore:    round2(experience),
		SemanticSimilarityScore: round2(semantic),
		MatchedSkills:           skill.matched,
		MissingSkills:           skill.missing,
		AdditionalSkills:        skill.additional,
		Recommendations:         buildRecommendations(skill.missing, skill.matched, resumeYears, requiredYears),
	}
}

type skillMatch struct {
	score      float64
	matched    []string
	missing    []string
	additional []string
}

// calculateSkillMatch resolves each required skill against the resume skill
// set, exact match first, then bidirectional substring. No requirements means
// the candidate cannot fail: a fixed default of 80 applies.
func calculateSkillMatch(resumeSkills, requiredSkills []string) skillMatch {
	if len(requiredSkills) == 0 {
		matched := resumeSkills
		if len(matched) > 10 {
			matched = matched[:10]
		}
		return skillMatch{
			score:      80.0,
			matched:    matched,
			missing:    []string{},
			additional: resumeSkills,
		}
	}

	resumeLower := make([]string, len(resumeSkills))
	for i, s := range resumeSkills {
		resumeLower[i] = strings.ToLower(s)
	}
	requiredLower := make(map[string]bool, len(requiredSkills))
	for _, s := range requiredSkills {
		requiredLower[strings.ToLower(s)] = true
	}

	matched := []string{}
	missing := []string{}
	for _, req := range requiredSkills {
		reqLower := strings.ToLower(req)

		found := false
		for _, rl := range resumeLower {
			if rl == reqLower {
				found = true
				break
			}
		}
		if !found {
			for _, rl := range resumeLower {
				if strings.Contains(rl, reqLower) || strings.Contains(reqLower, rl) {
					found = true
					break
				}
			}
		}

		if found {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}

	additional := []string{}
	for _, skill := range resumeSkills {
		if !requiredLower[strings.ToLower(skill)] {
			additional = append(additional, skill)
		}
	}

	score := float64(len(matched)) / float64(len(requiredSkills)) * 100
	bonus := math.Min(float64(len(additional))*2, 20)
	score = math.Min(score+bonus, 100)

	if len(additional) > 10 {
		additional = additional[:10]
	}

	return skillMatch{score: score, matched: matched, missing: missing, additional: additional}
}

// calculateExperienceMatch scores resume years against the requirement:
// default 80 with no requirement, 100 for a surplus of at most two years,
// 95 when over-qualified beyond that, and 15 points off per missing year.
func calculateExperienceMatch(resumeYears, requiredYears int) float64 {
	if requiredYears == 0 {
		return 80.0
	}
	if resumeYears >= requiredYears {
		if resumeYears-requiredYears <= 2 {
			return 100.0
		}
		return 95.0
	}
	shortfall := requiredYears - resumeYears
	return math.Max(100-float64(shortfall)*15, 0)
}

// semanticSimilarity embeds both texts and scales cosine similarity to a
// percentage. Any embedder failure falls back to Jaccard word overlap; this
// path never returns an error.
func (s *Scorer) semanticSimilarity(ctx context.Context, resumeText, jobDescription string) float64 {
	if s.embedder == nil {
		return jaccardSimilarity(resumeText, jobDescription)
	}

	resumeVec, err := s.embedder.Embed(ctx, truncate(resumeText, 1000))
	if err != nil {
		log.Warn().Err(err).Msg("embedding unavailable, using word overlap fallback")
		return jaccardSimilarity(resumeText, jobDescription)
	}
	jobVec, err := s.embedder.Embed(ctx, truncate(jobDescription, 1000))
	if err != nil {
		log.Warn().Err(err).Msg("embedding unavailable, using word overlap fallback")
		return jaccardSimilarity(resumeText, jobDescription)
	}

	return clamp(cosineSimilarity(resumeVec, jobVec)*100, 0, 100)
}

// jaccardSimilarity computes word-set overlap between two texts as a
// percentage. Both empty means 0.
func jaccardSimilarity(text1, text2 string) float64 {
	words1 := wordSet(text1)
	words2 := wordSet(text2)

	intersection := 0
	for w := range words1 {
		if words2[w] {
			intersection++
		}
	}
	union := len(words1) + len(words2) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union) * 100
}

func wordSet(text string) map[string]bool {
	set := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(text)) {
		set[w] = true
	}
	return set
}

// commonJobSkills is the fixed vocabulary scanned against job descriptions
// when no explicit requirement list is given. Deliberately smaller than the
// full taxonomy.
var commonJobSkills = []string{
	"python", "javascript", "react", "node.js", "java", "sql",
	"aws", "docker", "kubernetes", "git", "agile", "rest api",
	"mongodb", "postgresql", "typescript", "angular", "vue",
	"machine learning", "data analysis", "ci/cd",
}

func extractJobSkills(jobDescription string) []string {
	normalized := skills.Normalize(jobDescription)
	found := []string{}
	for _, skill := range commonJobSkills {
		if skills.ContainsPhrase(normalized, skills.Normalize(skill)) {
			found = append(found, skills.TitleCase(skill))
		}
	}
	return found
}

var requiredExperiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(\d+)\+?\s*yrs?\s+experience`),
	regexp.MustCompile(`minimum\s+(\d+)\s+years?`),
	regexp.MustCompile(`at least\s+(\d+)\s+years?`),
}

// RequiredExperience extracts the years of experience a job description asks
// for, or 0 when unstated.
func RequiredExperience(jobDescription string) int {
	lower := strings.ToLower(jobDescription)
	for _, re := range requiredExperiencePatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			years, err := strconv.Atoi(m[1])
			if err == nil {
				return years
			}
		}
	}
	return 0
}

func buildRecommendations(missing, matched []string, resumeYears, requiredYears int) []string {
	recommendations := []string{}

	if len(missing) > 0 {
		if len(missing) <= 3 {
			recommendations = append(recommendations,
				fmt.Sprintf("Consider learning: %s to improve your match", strings.Join(missing, ", ")))
		} else {
			recommendations = append(recommendations,
				fmt.Sprintf("Focus on acquiring these key skills: %s", strings.Join(missing[:3], ", ")))
		}
	}

	if requiredYears > resumeYears {
		recommendations = append(recommendations,
			fmt.Sprintf("You may need %d more year(s) of experience for this role", requiredYears-resumeYears))
	}

	if len(matched) > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Great! You match %d required skills", len(matched)))
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Excellent match! You meet most requirements")
	}

	return recommendations
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
