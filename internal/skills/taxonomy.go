package skills

import (
	"sort"
	"strings"
	"unicode"
)

// Taxonomy is the static catalog of known skill phrases grouped by category.
// It is built once at startup and shared read-only across all requests.
type Taxonomy struct {
	categories []category
	members    map[string]map[string]bool // category name -> lower-case phrase set
}

type category struct {
	name    string
	phrases []phrase
}

type phrase struct {
	display string // canonical form as listed in the catalog
	match   string // normalized form used for text search
}

// Category names. Every phrase lives in exactly one list.
const (
	CategoryProgrammingLanguages = "programming_languages"
	CategoryWebFrameworks        = "web_frameworks"
	CategoryDatabases            = "databases"
	CategoryCloudPlatforms       = "cloud_platforms"
	CategoryDevOpsTools          = "devops_tools"
	CategoryDataScience          = "data_science"
	CategoryMobileDevelopment    = "mobile_development"
	CategoryVersionControl       = "version_control"
	CategoryTesting              = "testing"
	CategoryMethodologies        = "methodologies"
	CategorySoftSkills           = "soft_skills"
)

var skillCatalog = []struct {
	name    string
	phrases []string
}{
	{CategoryProgrammingLanguages, []string{
		"python", "javascript", "java", "c++", "c#", "ruby", "php",
		"swift", "kotlin", "go", "rust", "typescript", "scala",
		"r", "matlab", "perl", "bash", "shell", "powershell",
	}},
	{CategoryWebFrameworks, []string{
		"react", "angular", "vue", "svelte", "next.js", "nuxt.js",
		"django", "flask", "fastapi", "express", "node.js", "spring boot",
		"asp.net", "laravel", "ruby on rails", "phoenix",
	}},
	{CategoryDatabases, []string{
		"mysql", "postgresql", "mongodb", "redis", "elasticsearch",
		"cassandra", "oracle", "sql server", "sqlite", "dynamodb",
		"firebase", "mariadb", "neo4j", "couchdb", "supabase",
	}},
	{CategoryCloudPlatforms, []string{
		"aws", "azure", "gcp", "google cloud", "heroku", "digital ocean",
		"vercel", "netlify", "cloudflare", "oracle cloud",
	}},
	{CategoryDevOpsTools, []string{
		"docker", "kubernetes", "jenkins", "gitlab ci", "github actions",
		"terraform", "ansible", "chef", "puppet", "vagrant",
		"circleci", "travis ci", "helm", "prometheus", "grafana",
	}},
	{CategoryDataScience, []string{
		"machine learning", "deep learning", "tensorflow", "pytorch",
		"scikit-learn", "pandas", "numpy", "keras", "nlp", "computer vision",
		"data analysis", "data visualization", "tableau", "power bi",
		"jupyter", "apache spark", "hadoop",
	}},
	{CategoryMobileDevelopment, []string{
		"react native", "flutter", "swift", "kotlin", "android", "ios",
		"xamarin", "ionic", "cordova",
	}},
	{CategoryVersionControl, []string{
		"git", "github", "gitlab", "bitbucket", "svn", "mercurial",
	}},
	{CategoryTesting, []string{
		"jest", "mocha", "pytest", "selenium", "cypress", "junit",
		"testing", "unit testing", "integration testing", "tdd", "bdd",
	}},
	{CategoryMethodologies, []string{
		"agile", "scrum", "kanban", "waterfall", "devops", "ci/cd",
		"microservices", "rest api", "graphql", "soap",
	}},
	{CategorySoftSkills, []string{
		"leadership", "communication", "team collaboration", "problem solving",
		"critical thinking", "time management", "adaptability",
		"project management", "mentoring", "presentation",
	}},
}

// NewTaxonomy builds the read-only skill taxonomy. Phrases are normalized
// up front so that forms like "ci/cd" are searchable against normalized text.
func NewTaxonomy() *Taxonomy {
	t := &Taxonomy{
		members: make(map[string]map[string]bool, len(skillCatalog)),
	}
	for _, c := range skillCatalog {
		cat := category{name: c.name, phrases: make([]phrase, 0, len(c.phrases))}
		set := make(map[string]bool, len(c.phrases))
		for _, p := range c.phrases {
			cat.phrases = append(cat.phrases, phrase{display: p, match: Normalize(p)})
			set[p] = true
		}
		t.categories = append(t.categories, cat)
		t.members[c.name] = set
	}
	return t
}

// Extract scans text for known skill phrases and returns the deduplicated,
// title-cased set sorted ascending. It never fails: unmatched or empty text
// yields an empty slice.
func (t *Taxonomy) Extract(text string) []string {
	normalized := Normalize(text)
	found := make(map[string]bool)

	for _, cat := range t.categories {
		for _, p := range cat.phrases {
			if ContainsPhrase(normalized, p.match) {
				found[TitleCase(p.display)] = true
			}
		}
	}

	result := make([]string, 0, len(found))
	for skill := range found {
		result = append(result, skill)
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i]) < strings.ToLower(result[j])
	})
	return result
}

// TitleCase renders a skill phrase in the presentation form used throughout
// the API: the first letter after any non-letter is upper-cased, the rest
// lower-cased ("machine learning" -> "Machine Learning", "node.js" ->
// "Node.Js").
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// Normalize lower-cases text and strips punctuation noise while preserving
// the symbols that occur inside skill names (+ . # -). Runs of whitespace
// collapse to a single space. Every phrase search must go through this, or
// matching becomes order-dependent.
func Normalize(text string) string {
	text = strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9',
			r == '+', r == '.', r == '#', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ContainsPhrase reports whether the normalized text contains the phrase
// bounded by word boundaries. A boundary check only applies against letters
// and digits, so phrases edged with symbols ("c++", "c#") still match while
// "java" does not match inside "javascript".
func ContainsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	for start := 0; ; {
		i := strings.Index(text[start:], phrase)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(phrase)
		if (i == 0 || !isWordChar(text[i-1])) && (end == len(text) || !isWordChar(text[end])) {
			return true
		}
		start = i + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}
