package dto

import "resume-match/internal/domain/job"

type CreateJobRequest struct {
	Title            string   `json:"title"`
	JDText           string   `json:"jd_text"`
	RequiredSkills   []string `json:"required_skills"`
	NiceToHaveSkills []string `json:"nice_to_have_skills"`
}

type JobCreatedResponse struct {
	JobID int64  `json:"job_id"`
	Title string `json:"title"`
}

type JobSummaryResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func NewJobSummaries(jobs []*job.Job) []JobSummaryResponse {
	out := make([]JobSummaryResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, JobSummaryResponse{ID: j.ID, Title: j.Title})
	}
	return out
}
