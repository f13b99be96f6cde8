package matching

import "math"

// Result is computed fresh on every ranking request and never persisted.
type Result struct {
	CandidateID   int64              `json:"candidate_id"`
	CandidateName string             `json:"candidate_name"`
	Score         float64            `json:"score"`
	Components    map[string]float64 `json:"components"`
	Justification string             `json:"justification"`
}

// NewResult scales the final score to [0,100] rounded to 2 decimals and
// exposes the per-component breakdown rounded to 3 decimals.
func NewResult(candidateID int64, candidateName string, b Breakdown, justification string) Result {
	return Result{
		CandidateID:   candidateID,
		CandidateName: candidateName,
		Score:         round(100*b.Final, 2),
		Components: map[string]float64{
			"similarity": round(b.Similarity, 3),
			"req_cover":  round(b.ReqCover, 3),
			"nice_cover": round(b.NiceCover, 3),
			"llm":        round(b.LLM, 3),
			"final":      round(b.Final, 3),
		},
		Justification: justification,
	}
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
