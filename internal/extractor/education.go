package extractor

import (
	"regexp"
	"strings"

	"resume-match/internal/domain/candidate"
)

type degreePattern struct {
	re     *regexp.Regexp
	degree string
}

const fieldChars = `[A-Za-z\s&,()-]`

// degreePatterns are tried in order, verbose forms before abbreviations.
// Group 1, when present, captures the field of study.
var degreePatterns = []degreePattern{
	{regexp.MustCompile(`(?i)Bachelor\s+of\s+(?:Technology|Engineering|Science|Arts|Commerce)\s+(?:in\s+)?(` + fieldChars + `+?)(?:[\n,|;]|$)`), "Bachelor"},
	{regexp.MustCompile(`(?i)Master\s+of\s+(?:Technology|Engineering|Science|Business Administration|Arts|Commerce)\s+(?:in\s+)?(` + fieldChars + `+?)(?:[\n,|;]|$)`), "Master"},

	{regexp.MustCompile(`(?i)B\.?\s*Tech\.?\s+(?:in\s+)?(` + fieldChars + `+?)(?:[\n,|;]|\d{4}|$)`), "B.Tech"},
	{regexp.MustCompile(`(?i)B\.?\s*E\.?\s+(?:in\s+)?(` + fieldChars + `+?)(?:[\n,|;]|\d{4}|$)`), "B.E"},
	{regexp.MustCompile(`(?i)B\.?\s*Sc\.?\s+(?:in\s+)?(` + fieldChars + `+?)(?:[\n,|;]|\d{4}|$)`), "B.Sc"},
	{regexp.MustCompile(`(?i)M\.?\s*Tech\.?\s+(?:in\s+)?(` + fieldChars + `+?)(?:[\n,|;]|\d{4}|$)`), "M.Tech"},
	{regexp.MustCompile(`(?i)M\.?\s*E\.?\s+(?:in\s+)?(` + fieldChars + `+?)(?:[\n,|;]|\d{4}|$)`), "M.E"},
	{regexp.MustCompile(`(?i)M\.?\s*Sc\.?\s+(?:in\s+)?(` + fieldChars + `+?)(?:[\n,|;]|\d{4}|$)`), "M.Sc"},
	{regexp.MustCompile(`(?i)\bMBA\b\s*(?:in\s+)?(` + fieldChars + `+)?`), "MBA"},
	{regexp.MustCompile(`(?i)\bMCA\b`), "MCA"},
	{regexp.MustCompile(`(?i)\bBCA\b`), "BCA"},
	{regexp.MustCompile(`(?i)Ph\.?D\.?\s+(?:in\s+)?(` + fieldChars + `+?)(?:[\n,|;]|$)`), "PhD"},
}

var (
	// The name class stays on one line and stops at commas so the match
	// never swallows the degree phrase or a preceding section header.
	institutionRe        = regexp.MustCompile(`(?i)([A-Z][A-Za-z&. -]+?(?:University|Institute|College|School)(?: +of +[A-Za-z ]+)?)`)
	instituteAcronymRe   = regexp.MustCompile(`(IIT|NIT|IIIT|VIT|BITS|IIM|AIIMS)\s+[A-Za-z]+`)
	graduationYearRe     = regexp.MustCompile(`\b(19\d{2}|20[0-2]\d)\b`)
	cgpaGradeRe          = regexp.MustCompile(`(?i)(?:CGPA|GPA)[:\s]*(\d+\.?\d*)\s*(?:/\s*(\d+\.?\d*))?`)
	percentGradeRe       = regexp.MustCompile(`(?i)(?:Percentage|%)[:\s]*(\d+\.?\d*)\s*%?`)
	degreeNormalizeRe    = regexp.MustCompile(`[.\s\n]`)
	collapseWhitespaceRe = regexp.MustCompile(`\s+`)
)

// ExtractEducation applies each degree pattern to the education section
// (or the whole text when no header is found), collecting every valid
// match. Institution, year and grade come from a window around the match.
func ExtractEducation(text string) []candidate.EducationEntry {
	section := educationSection(text)

	var entries []candidate.EducationEntry
	seen := make(map[string]struct{})

	for _, dp := range degreePatterns {
		for _, idx := range dp.re.FindAllStringSubmatchIndex(section, -1) {
			full := strings.TrimSpace(section[idx[0]:idx[1]])
			if len(full) < 3 {
				continue
			}

			key := strings.ToLower(degreeNormalizeRe.ReplaceAllString(full, ""))
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			entry := candidate.EducationEntry{Degree: dp.degree}

			if len(idx) >= 4 && idx[2] >= 0 {
				field := strings.TrimSpace(strings.Trim(section[idx[2]:idx[3]], ",;|"))
				if len(field) > 3 && len(field) < 100 {
					entry.Field = field
				}
			}

			window := windowAround(section, idx[0], idx[1], 100, 400)
			entry.Institution = findInstitution(window)
			entry.Year = findYear(window)
			entry.Grade = findGrade(window)

			entries = append(entries, entry)
		}
	}

	return entries
}

func windowAround(text string, start, end, before, after int) string {
	lo := start - before
	if lo < 0 {
		lo = 0
	}
	hi := end + after
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi]
}

func findInstitution(window string) string {
	for _, re := range []*regexp.Regexp{institutionRe, instituteAcronymRe} {
		for _, m := range re.FindAllString(window, -1) {
			inst := collapseWhitespaceRe.ReplaceAllString(strings.TrimSpace(m), " ")
			inst = strings.TrimRight(inst, ",;.\n|")
			if len(inst) > 5 && len(inst) < 150 {
				return inst
			}
		}
	}
	return ""
}

func findYear(window string) string {
	years := graduationYearRe.FindAllString(window, -1)
	switch {
	case len(years) == 0:
		return ""
	case len(years) == 1:
		return years[0]
	default:
		return years[0] + " - " + years[len(years)-1]
	}
}

func findGrade(window string) string {
	if m := cgpaGradeRe.FindStringSubmatch(window); m != nil {
		if m[2] != "" {
			return m[1] + "/" + m[2]
		}
		return m[1]
	}
	if m := percentGradeRe.FindStringSubmatch(window); m != nil {
		return m[1]
	}
	return ""
}
