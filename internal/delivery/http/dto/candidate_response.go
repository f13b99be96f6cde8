package dto

import "resume-match/internal/domain/candidate"

type EducationResponse struct {
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
	Grade       string `json:"grade,omitempty"`
}

type WorkHistoryResponse struct {
	Designation string   `json:"designation"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration,omitempty"`
	Location    string   `json:"location,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

type CandidateResponse struct {
	ID               int64                 `json:"id"`
	Name             string                `json:"name"`
	Emails           []string              `json:"emails"`
	Phones           []string              `json:"phones"`
	Skills           []string              `json:"skills"`
	SkillsByCategory map[string][]string   `json:"skills_by_category"`
	ExperienceYears  *float64              `json:"experience_years"`
	Education        []EducationResponse   `json:"education"`
	WorkHistory      []WorkHistoryResponse `json:"work_history"`
	HasEmbedding     bool                  `json:"has_embedding"`
}

func NewCandidateResponse(c *candidate.Candidate) CandidateResponse {
	out := CandidateResponse{
		ID:               c.ID,
		Name:             c.Name,
		Emails:           emptyIfNil(c.Emails),
		Phones:           emptyIfNil(c.Phones),
		Skills:           emptyIfNil(c.Skills),
		SkillsByCategory: c.SkillsByCategory,
		ExperienceYears:  c.ExperienceYears,
		Education:        make([]EducationResponse, 0, len(c.Education)),
		WorkHistory:      make([]WorkHistoryResponse, 0, len(c.WorkHistory)),
		HasEmbedding:     len(c.Embedding) > 0,
	}
	if out.SkillsByCategory == nil {
		out.SkillsByCategory = map[string][]string{}
	}
	for _, e := range c.Education {
		out.Education = append(out.Education, EducationResponse{
			Degree:      e.Degree,
			Field:       e.Field,
			Institution: e.Institution,
			Year:        e.Year,
			Grade:       e.Grade,
		})
	}
	for _, w := range c.WorkHistory {
		out.WorkHistory = append(out.WorkHistory, WorkHistoryResponse{
			Designation: w.Designation,
			Company:     w.Company,
			Duration:    w.Duration,
			Location:    w.Location,
			Highlights:  w.Highlights,
		})
	}
	return out
}

func emptyIfNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
