package matching

import (
	"math"
	"strings"
)

// Composite score weights. Documented design constants, not tunable per
// request: similarity dominates, required-skill coverage close behind,
// nice-to-have and LLM assessment as smaller correctives. They sum to 1.0
// so the final score is a convex combination of components in [0,1].
const (
	WeightSimilarity = 0.45
	WeightReqCover   = 0.35
	WeightNiceCover  = 0.10
	WeightLLM        = 0.10
)

type Breakdown struct {
	Similarity float64
	ReqCover   float64
	NiceCover  float64
	LLM        float64
	Final      float64
}

// SkillCoverage computes case-insensitive set coverage of the job's
// required and nice-to-have skill lists. The max(len,1) floor means an
// empty list yields 0, never 1: a job that states no requirements earns
// no coverage credit.
func SkillCoverage(candidateSkills, required, niceToHave []string) (reqCover, niceCover float64) {
	have := toSet(candidateSkills)
	req := toSet(required)
	nice := toSet(niceToHave)

	reqCover = float64(intersectionSize(have, req)) / float64(max(len(req), 1))
	niceCover = float64(intersectionSize(have, nice)) / float64(max(len(nice), 1))
	return reqCover, niceCover
}

// Cosine returns the dot product of two vectors. Both sides are produced
// by an embedder that guarantees unit L2 norm, so the dot product is the
// cosine similarity. Mismatched or empty vectors score 0.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot
}

// Composite fuses similarity, skill coverage and an optional LLM fit score
// (1-10 scale) into a weighted breakdown. A nil llmScore contributes 0 to
// the sum; the weights are not renormalized.
func Composite(similarity, reqCover, niceCover float64, llmScore *float64) Breakdown {
	llmNorm := 0.0
	if llmScore != nil {
		llmNorm = math.Max(0, math.Min(1, *llmScore/10))
	}

	final := WeightSimilarity*similarity +
		WeightReqCover*reqCover +
		WeightNiceCover*niceCover +
		WeightLLM*llmNorm

	return Breakdown{
		Similarity: similarity,
		ReqCover:   reqCover,
		NiceCover:  niceCover,
		LLM:        llmNorm,
		Final:      final,
	}
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		it = strings.ToLower(strings.TrimSpace(it))
		if it == "" {
			continue
		}
		set[it] = struct{}{}
	}
	return set
}

func intersectionSize(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}
