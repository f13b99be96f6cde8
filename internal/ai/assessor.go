package ai

import "context"

// FitAssessment is the qualitative verdict for one candidate against one
// job. FitScore is on the assessor's native 1-10 scale.
type FitAssessment struct {
	FitScore       float64
	SummaryBullets []string
	KeyStrengths   []string
	Concerns       []string
	Reasoning      string
}

// Assessor compares a resume against a job description. Implementations
// make best-effort network calls; callers own the failure policy.
type Assessor interface {
	Assess(ctx context.Context, jobText, resumeText, candidateName string) (*FitAssessment, error)
}
