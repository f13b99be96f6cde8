package extractor

import (
	"regexp"
	"strings"
)

// JobDescription holds the fields recovered from raw JD text.
type JobDescription struct {
	Title            string
	RequiredSkills   []string
	NiceToHaveSkills []string
	Responsibilities []string
	CleanText        string
}

var (
	jdWhitespaceRe = regexp.MustCompile(`\s+`)

	jdTitlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)We[’']?re\s+seeking\s+an?\s+([A-Z][A-Za-z0-9\s/&\-]{2,50})`),
		regexp.MustCompile(`(?i)About\s+the\s+Role[:\-]?\s*([A-Z][A-Za-z0-9\s/&\-]{2,50})`),
		regexp.MustCompile(`(?i)Position[:\-]?\s*([A-Z][A-Za-z0-9\s/&\-]{2,50})`),
		regexp.MustCompile(`(?i)Job\s+Title[:\-]?\s*([A-Z][A-Za-z0-9\s/&\-]{2,50})`),
	}
	jdTitleGuessRe = regexp.MustCompile(`\b([A-Z][A-Za-z\s]+(?:Engineer|Developer|Manager|Analyst|Scientist))\b`)

	jdRequiredHeaderRe = regexp.MustCompile(`(?i)(?:Requirements|What You[’']?ll Need|Qualifications|Skills Required)[:\-]?\s*`)
	jdRequiredStopRe   = regexp.MustCompile(`(?i)Preferred|Nice|What We Offer`)

	jdNiceHeaderRe = regexp.MustCompile(`(?i)(?:Preferred|Nice[-\s]?to[-\s]?have|Good to have|Bonus)[:\-]?\s*`)
	jdNiceStopRe   = regexp.MustCompile(`(?i)What We Offer|Benefits`)

	jdRespHeaderRe = regexp.MustCompile(`(?i)(?:Responsibilities|What You[’']?ll Do|Key Tasks|Duties|Your Role)[:\-]?\s*`)
	jdRespStopRe   = regexp.MustCompile(`(?i)Requirement|Qualification|Preferred|Nice`)

	jdSkillSplitRe = regexp.MustCompile(`[,;/]`)
	jdRespSplitRe  = regexp.MustCompile(`[.;]`)
)

// jdFallbackKeywords back the required-skill scan when no requirements
// section exists in the text.
var jdFallbackKeywords = []string{
	"python", "java", "scala", "sql", "aws", "gcp", "azure",
	"docker", "kubernetes", "airflow", "spark", "bigquery",
	"snowflake", "redshift", "postgres", "mysql", "beam",
}

// ExtractJobDescription recovers title, required skills, nice-to-have
// skills and responsibilities from paragraph-style JD text. Section headers
// win when present; keyword scans and fixed defaults back them up, so every
// field always carries a value.
func ExtractJobDescription(text string) JobDescription {
	clean := strings.NewReplacer("\n", " ", "•", " ", "–", "-").Replace(text)
	clean = strings.TrimSpace(jdWhitespaceRe.ReplaceAllString(clean, " "))
	lower := strings.ToLower(clean)

	jd := JobDescription{
		Title:            extractJDTitle(clean),
		RequiredSkills:   extractJDRequired(clean, lower),
		NiceToHaveSkills: extractJDNice(clean, lower),
		Responsibilities: extractJDResponsibilities(clean),
		CleanText:        clean,
	}
	return jd
}

func extractJDTitle(text string) string {
	for _, p := range jdTitlePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	if m := jdTitleGuessRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "General Role"
}

func extractJDRequired(text, lower string) []string {
	if section := jdSection(text, jdRequiredHeaderRe, jdRequiredStopRe); section != "" {
		if skills := splitJDList(section, jdSkillSplitRe, 2); len(skills) > 0 {
			return skills
		}
	}
	var skills []string
	for _, k := range jdFallbackKeywords {
		if strings.Contains(lower, k) {
			skills = append(skills, k)
		}
	}
	if len(skills) == 0 {
		return []string{"Not found"}
	}
	return skills
}

func extractJDNice(text, lower string) []string {
	if section := jdSection(text, jdNiceHeaderRe, jdNiceStopRe); section != "" {
		if skills := splitJDList(section, jdSkillSplitRe, 2); len(skills) > 0 {
			return skills
		}
	}
	for _, k := range []string{"ai", "ml", "data"} {
		if strings.Contains(lower, k) {
			return []string{"LLM", "Vector DB", "dbt", "Matillion", "Kafka"}
		}
	}
	return []string{"Not specified"}
}

func extractJDResponsibilities(text string) []string {
	if section := jdSection(text, jdRespHeaderRe, jdRespStopRe); section != "" {
		if items := splitJDList(section, jdRespSplitRe, 5); len(items) > 0 {
			return items
		}
	}
	return []string{
		"Data pipeline design",
		"ETL workflow development",
		"Collaborate with ML & Analytics teams",
	}
}

// jdSection returns the text between a section header and the next section
// marker, or "" when the header never occurs.
func jdSection(text string, header, stop *regexp.Regexp) string {
	loc := header.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	rest := text[loc[1]:]
	if end := stop.FindStringIndex(rest); end != nil {
		rest = rest[:end[0]]
	}
	return rest
}

// splitJDList splits on the given separators, trims list punctuation, keeps
// entries longer than minLen, and deduplicates preserving first occurrence.
func splitJDList(section string, split *regexp.Regexp, minLen int) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, part := range split.Split(section, -1) {
		item := strings.Trim(strings.TrimSpace(part), " -–:;,.")
		if len(item) <= minLen {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
