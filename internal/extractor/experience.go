package extractor

import (
	"regexp"
	"strconv"
)

// Explicit experience statements, label-before-number and number-before-label.
var explicitExperienceRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:total\s+)?experience\s*[:\-]?\s*(\d+(?:\.\d+)?)\+?\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\+?\s*(?:years?|yrs?)\s+(?:of\s+)?(?:total\s+)?experience`),
}

var roleKeywordRe = regexp.MustCompile(`(?i)\b(?:Engineer|Developer|Intern|Manager)\b`)

const (
	maxExplicitYears    = 50
	yearsPerRoleKeyword = 0.5
	maxEstimatedYears   = 10.0
)

// ExtractExperienceYears resolves total experience. An explicit
// "<n> years of experience" statement wins; only values in (0,50) are
// accepted. Without one, role-keyword occurrences stand in as a rough
// proxy: half a year per mention, capped. Returns nil when neither
// strategy produces a value.
func ExtractExperienceYears(text string) *float64 {
	for _, re := range explicitExperienceRes {
		if m := re.FindStringSubmatch(text); m != nil {
			years, err := strconv.ParseFloat(m[1], 64)
			if err == nil && years > 0 && years < maxExplicitYears {
				return &years
			}
		}
	}

	mentions := len(roleKeywordRe.FindAllString(text, -1))
	if mentions == 0 {
		return nil
	}
	estimate := yearsPerRoleKeyword * float64(mentions)
	if estimate > maxEstimatedYears {
		estimate = maxEstimatedYears
	}
	return &estimate
}
