package extractor

import "regexp"

var (
	educationHeaderRe = regexp.MustCompile(`(?i)EDUCATION|ACADEMIC|QUALIFICATION`)
	educationStopRe   = regexp.MustCompile(`(?i)\n(?:EXPERIENCE|WORK|PROJECTS|SKILLS|CERTIFICATIONS)`)

	experienceHeaderRe = regexp.MustCompile(`(?i)PROFESSIONAL EXPERIENCE|EXPERIENCE|EMPLOYMENT|WORK HISTORY`)
	experienceStopRe   = regexp.MustCompile(`(?i)\n(?:EDUCATION|PROJECTS|SKILLS|CERTIFICATIONS)`)
)

// sectionText slices out the portion of the resume between a section header
// and the next major section header. When no header is found the whole text
// is returned, so field extraction can still scan unstructured resumes.
func sectionText(text string, header, stop *regexp.Regexp) string {
	loc := header.FindStringIndex(text)
	if loc == nil {
		return text
	}
	rest := text[loc[0]:]
	if stopLoc := stop.FindStringIndex(rest); stopLoc != nil {
		return rest[:stopLoc[0]]
	}
	return rest
}

func educationSection(text string) string {
	return sectionText(text, educationHeaderRe, educationStopRe)
}

func experienceSection(text string) string {
	return sectionText(text, experienceHeaderRe, experienceStopRe)
}
