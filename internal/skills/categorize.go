package skills

import "strings"

// Categorized groups extracted skills into the seven presentation buckets.
type Categorized struct {
	Technical  []string `json:"technical"`
	Soft       []string `json:"soft"`
	Tools      []string `json:"tools"`
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Databases  []string `json:"databases"`
	Other      []string `json:"other"`
}

// bucketRule maps one or more taxonomy categories to a destination bucket.
// Rules are evaluated top to bottom and the first hit wins, so a skill that
// appears in several taxonomy lists is never duplicated across buckets.
type bucketRule struct {
	categories []string
	assign     func(c *Categorized, skill string)
}

var bucketRules = []bucketRule{
	{[]string{CategoryProgrammingLanguages}, func(c *Categorized, s string) { c.Languages = append(c.Languages, s) }},
	{[]string{CategoryWebFrameworks}, func(c *Categorized, s string) { c.Frameworks = append(c.Frameworks, s) }},
	{[]string{CategoryDatabases}, func(c *Categorized, s string) { c.Databases = append(c.Databases, s) }},
	{[]string{CategoryCloudPlatforms, CategoryDevOpsTools}, func(c *Categorized, s string) { c.Tools = append(c.Tools, s) }},
	{[]string{CategorySoftSkills}, func(c *Categorized, s string) { c.Soft = append(c.Soft, s) }},
	{[]string{CategoryDataScience, CategoryMobileDevelopment, CategoryTesting, CategoryVersionControl},
		func(c *Categorized, s string) { c.Technical = append(c.Technical, s) }},
}

// Categorize assigns each skill to exactly one bucket using the ordered rule
// chain above. Skills not found in any listed category land in Other.
func (t *Taxonomy) Categorize(skillList []string) Categorized {
	c := Categorized{
		Technical:  []string{},
		Soft:       []string{},
		Tools:      []string{},
		Languages:  []string{},
		Frameworks: []string{},
		Databases:  []string{},
		Other:      []string{},
	}

	for _, skill := range skillList {
		lower := strings.ToLower(skill)
		assigned := false
		for _, rule := range bucketRules {
			if t.inAny(lower, rule.categories) {
				rule.assign(&c, skill)
				assigned = true
				break
			}
		}
		if !assigned {
			c.Other = append(c.Other, skill)
		}
	}
	return c
}

func (t *Taxonomy) inAny(skill string, categories []string) bool {
	for _, name := range categories {
		if t.members[name][skill] {
			return true
		}
	}
	return false
}
