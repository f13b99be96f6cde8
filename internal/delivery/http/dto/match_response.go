package dto

import "resume-match/internal/domain/matching"

type MatchResultResponse struct {
	CandidateID   int64              `json:"candidate_id"`
	CandidateName string             `json:"candidate_name"`
	Score         float64            `json:"score"`
	Components    map[string]float64 `json:"components"`
	Justification string             `json:"justification"`
}

func NewMatchResults(results []matching.Result) []MatchResultResponse {
	out := make([]MatchResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, MatchResultResponse{
			CandidateID:   r.CandidateID,
			CandidateName: r.CandidateName,
			Score:         r.Score,
			Components:    r.Components,
			Justification: r.Justification,
		})
	}
	return out
}
