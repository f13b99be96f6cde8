package candidate

import "time"

// Candidate is the stored record produced by parsing one uploaded resume.
// Skills is always the deduplicated union of SkillsByCategory.
type Candidate struct {
	ID               int64
	Name             string // "Unknown" when no strategy resolved a name
	Emails           []string
	Phones           []string
	RawText          string
	Skills           []string
	SkillsByCategory map[string][]string
	ExperienceYears  *float64
	Education        []EducationEntry
	WorkHistory      []WorkHistoryEntry
	Embedding        []float64 // nil when embedding generation failed
	FilePath         string
	ParsedAt         time.Time
}

type EducationEntry struct {
	Degree      string
	Field       string
	Institution string
	Year        string
	Grade       string
}

type WorkHistoryEntry struct {
	Designation string
	Company     string
	Duration    string
	Location    string
	Highlights  []string
}
