package extractor

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// headerLineRe marks lines that are resume boilerplate or contact rows,
// never a person's name.
var headerLineRe = regexp.MustCompile(`(?i)resume|curriculum|vitae|email|phone|address|linkedin|github`)

// nameStopwords are role and section words that disqualify a line for the
// person-line strategy. Stand-in for PERSON entity tagging.
var nameStopwords = map[string]struct{}{
	"engineer": {}, "developer": {}, "manager": {}, "analyst": {},
	"architect": {}, "consultant": {}, "designer": {}, "intern": {},
	"senior": {}, "junior": {}, "lead": {}, "objective": {}, "summary": {},
	"profile": {}, "contact": {}, "education": {}, "experience": {},
	"skills": {}, "projects": {},
}

type nameStrategy func(line string) (string, bool)

var nameStrategies = []nameStrategy{personLine, capitalizedLine}

// ExtractName scans the first ten non-empty lines for a plausible person
// name. Strategies run in order per line; the first hit wins. Returns an
// empty string when no line qualifies.
func ExtractName(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || len(line) > 100 {
			continue
		}
		if headerLineRe.MatchString(line) {
			continue
		}
		for _, strategy := range nameStrategies {
			if name, ok := strategy(line); ok {
				return name
			}
		}
	}
	return ""
}

// personLine accepts 2-4 capitalized purely alphabetic tokens with no
// role or section words anywhere in the line.
func personLine(line string) (string, bool) {
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return "", false
	}
	for _, w := range words {
		if hasStopword(w) || strings.Contains(w, ".") || !isNameToken(w) {
			return "", false
		}
	}
	return line, true
}

// capitalizedLine is the looser fallback: it additionally allows initials
// ("A. Kumar"), still rejecting role and section words.
func capitalizedLine(line string) (string, bool) {
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return "", false
	}
	for _, w := range words {
		if hasStopword(w) || !isNameToken(w) {
			return "", false
		}
	}
	return line, true
}

func hasStopword(w string) bool {
	_, stop := nameStopwords[strings.ToLower(strings.Trim(w, "."))]
	return stop
}

func isNameToken(w string) bool {
	stripped := strings.ReplaceAll(w, ".", "")
	if stripped == "" {
		return false
	}
	for i, r := range stripped {
		if i == 0 && (r < 'A' || r > 'Z') {
			return false
		}
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

// ExtractEmails returns all email addresses in first-occurrence order,
// deduplicated.
func ExtractEmails(text string) []string {
	var emails []string
	seen := make(map[string]struct{})
	for _, m := range emailRe.FindAllString(text, -1) {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		emails = append(emails, m)
	}
	return emails
}

// phonePatterns locate phone-number-shaped substrings; each candidate is
// then validated and formatted through libphonenumber when possible.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+?91[-.\s]?[6-9]\d{9}`),
	regexp.MustCompile(`\+?1?[-.]?\(?\d{3}\)?[-.]?\d{3}[-.]?\d{4}`),
	regexp.MustCompile(`\b[6-9]\d{9}\b`),
	regexp.MustCompile(`\+\d[\d\s().-]{8,}\d`),
}

var (
	nonDigitRe       = regexp.MustCompile(`\D`)
	phoneSeparatorRe = regexp.MustCompile(`[-.\s()]`)
)

// ExtractPhones finds phone numbers using the region-aware parser over
// regex-located candidates, deduplicated by the trailing ten digits with
// the first-seen formatted variant kept.
func ExtractPhones(text, defaultRegion string) []string {
	if defaultRegion == "" {
		defaultRegion = "IN"
	}

	var phones []string
	seen := make(map[string]struct{})

	add := func(formatted string) {
		digits := nonDigitRe.ReplaceAllString(formatted, "")
		if len(digits) < 10 {
			return
		}
		// Overlapping pattern hits see the same number with different
		// country-prefix fragments; the subscriber tail is the stable key.
		key := digits[len(digits)-10:]
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		phones = append(phones, formatted)
	}

	for _, pattern := range phonePatterns {
		for _, raw := range pattern.FindAllString(text, -1) {
			num, err := phonenumbers.Parse(raw, defaultRegion)
			if err == nil && phonenumbers.IsValidNumber(num) {
				add(phonenumbers.Format(num, phonenumbers.INTERNATIONAL))
				continue
			}
			// Keep the stripped raw form when libphonenumber rejects
			// the candidate; regional regexes are the fallback source.
			add(phoneSeparatorRe.ReplaceAllString(raw, ""))
		}
	}

	return phones
}
