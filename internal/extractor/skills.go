package extractor

import (
	"regexp"
	"sort"
	"strings"
)

// skillCategories is the fixed skill vocabulary, grouped by category.
var skillCategories = map[string][]string{
	"programming_languages": {
		"python", "java", "javascript", "typescript", "c++", "c#", "c",
		"ruby", "php", "swift", "kotlin", "go", "rust", "scala", "r",
		"perl", "dart", "objective-c", "sql", "bash", "powershell",
	},
	"frameworks": {
		"react", "angular", "vue", "django", "flask", "fastapi", "spring",
		"spring boot", "express", "node.js", "next.js", "nuxt.js",
		"laravel", "symfony", "rails", "asp.net", ".net core", "flutter",
		"react native", "tensorflow", "pytorch", "keras", "scikit-learn",
	},
	"cloud_devops": {
		"aws", "azure", "gcp", "google cloud", "docker", "kubernetes",
		"jenkins", "gitlab ci", "github actions", "terraform", "ansible",
		"circleci", "travis ci", "heroku", "digitalocean",
	},
	"databases": {
		"mysql", "postgresql", "mongodb", "redis", "elasticsearch",
		"cassandra", "dynamodb", "oracle", "sql server", "sqlite",
		"neo4j", "couchdb", "mariadb",
	},
	"tools_technologies": {
		"git", "jira", "confluence", "agile", "scrum", "kanban",
		"rest api", "graphql", "microservices", "ci/cd", "tdd",
		"machine learning", "deep learning", "nlp", "computer vision",
		"data analysis", "data science", "big data", "hadoop", "spark",
		"tableau", "power bi", "excel", "sap", "salesforce",
	},
}

// skillSynonyms maps common abbreviations to the canonical vocabulary
// entry. Applied to the text before matching.
var skillSynonyms = map[string]string{
	"golang":   "go",
	"js":       "javascript",
	"ts":       "typescript",
	"k8s":      "kubernetes",
	"postgres": "postgresql",
	"mongo":    "mongodb",
	"ml":       "machine learning",
	"tf":       "tensorflow",
}

type skillPattern struct {
	name string
	re   *regexp.Regexp
}

type synonymPattern struct {
	canonical string
	re        *regexp.Regexp
}

// SkillTaxonomy holds the compiled vocabulary patterns. Construct once and
// reuse; compilation of a few dozen patterns is not free.
type SkillTaxonomy struct {
	categories map[string][]skillPattern
	synonyms   []synonymPattern
}

func NewSkillTaxonomy() *SkillTaxonomy {
	t := &SkillTaxonomy{categories: make(map[string][]skillPattern, len(skillCategories))}

	for category, skills := range skillCategories {
		patterns := make([]skillPattern, 0, len(skills))
		for _, skill := range skills {
			patterns = append(patterns, skillPattern{
				name: skill,
				re:   regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`),
			})
		}
		t.categories[category] = patterns
	}

	// Deterministic replacement order for overlapping abbreviations.
	keys := make([]string, 0, len(skillSynonyms))
	for k := range skillSynonyms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, abbr := range keys {
		t.synonyms = append(t.synonyms, synonymPattern{
			canonical: skillSynonyms[abbr],
			re:        regexp.MustCompile(`\b` + regexp.QuoteMeta(abbr) + `\b`),
		})
	}

	return t
}

// Extract returns skills grouped by category plus the flattened
// deduplicated list. Matching is word-boundary and case-insensitive;
// synonyms are normalized to their canonical form first.
func (t *SkillTaxonomy) Extract(text string) (byCategory map[string][]string, all []string) {
	lower := strings.ToLower(text)
	for _, syn := range t.synonyms {
		lower = syn.re.ReplaceAllString(lower, syn.canonical)
	}

	byCategory = make(map[string][]string)
	seen := make(map[string]struct{})

	// Stable category order keeps the flat list deterministic.
	categories := make([]string, 0, len(t.categories))
	for c := range t.categories {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	for _, category := range categories {
		var found []string
		for _, sp := range t.categories[category] {
			if sp.re.MatchString(lower) {
				found = append(found, sp.name)
				if _, ok := seen[sp.name]; !ok {
					seen[sp.name] = struct{}{}
					all = append(all, sp.name)
				}
			}
		}
		if len(found) > 0 {
			byCategory[category] = found
		}
	}

	return byCategory, all
}
