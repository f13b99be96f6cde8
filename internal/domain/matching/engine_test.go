package matching

import (
	"math"
	"strings"
	"testing"
)

func TestSkillCoverage_EmptyListsScoreZero(t *testing.T) {
	req, nice := SkillCoverage([]string{"go", "sql"}, nil, nil)
	if req != 0 || nice != 0 {
		t.Fatalf("expected 0/0 for empty job lists, got %v/%v", req, nice)
	}
}

func TestSkillCoverage_Bounds(t *testing.T) {
	req, nice := SkillCoverage(
		[]string{"go", "sql", "docker"},
		[]string{"go", "sql"},
		[]string{"docker", "kafka"},
	)
	if req != 1.0 {
		t.Fatalf("expected full required coverage, got %v", req)
	}
	if nice != 0.5 {
		t.Fatalf("expected half nice coverage, got %v", nice)
	}
}

func TestSkillCoverage_CaseInsensitive(t *testing.T) {
	req, _ := SkillCoverage([]string{"Go", " SQL "}, []string{"go", "sql"}, nil)
	if req != 1.0 {
		t.Fatalf("expected case-insensitive match, got %v", req)
	}
}

func TestCosine_MismatchedOrEmpty(t *testing.T) {
	if got := Cosine(nil, []float64{1}); got != 0 {
		t.Fatalf("expected 0 for empty side, got %v", got)
	}
	if got := Cosine([]float64{1, 0}, []float64{1}); got != 0 {
		t.Fatalf("expected 0 for length mismatch, got %v", got)
	}
}

func TestCosine_UnitVectors(t *testing.T) {
	if got := Cosine([]float64{1, 0}, []float64{1, 0}); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
	if got := Cosine([]float64{1, 0}, []float64{0, 1}); got != 0 {
		t.Fatalf("expected 0 for orthogonal vectors, got %v", got)
	}
}

func TestComposite_WeightsSumToOne(t *testing.T) {
	sum := WeightSimilarity + WeightReqCover + WeightNiceCover + WeightLLM
	if math.Abs(sum-1.0) > 1e-12 {
		t.Fatalf("weights sum to %v, want 1.0", sum)
	}
}

func TestComposite_NilLLMContributesZero(t *testing.T) {
	b := Composite(1, 1, 1, nil)
	want := WeightSimilarity + WeightReqCover + WeightNiceCover
	if math.Abs(b.Final-want) > 1e-12 {
		t.Fatalf("final = %v, want %v", b.Final, want)
	}
	if b.LLM != 0 {
		t.Fatalf("nil llm normalized to %v, want 0", b.LLM)
	}
}

func TestComposite_LLMNormalizedAndClamped(t *testing.T) {
	ten := 10.0
	if b := Composite(0, 0, 0, &ten); b.LLM != 1 {
		t.Fatalf("llm 10 normalized to %v, want 1", b.LLM)
	}
	over := 15.0
	if b := Composite(0, 0, 0, &over); b.LLM != 1 {
		t.Fatalf("llm 15 clamped to %v, want 1", b.LLM)
	}
	neg := -3.0
	if b := Composite(0, 0, 0, &neg); b.LLM != 0 {
		t.Fatalf("llm -3 clamped to %v, want 0", b.LLM)
	}
}

func TestComposite_FinalInUnitInterval(t *testing.T) {
	five := 5.0
	b := Composite(0.9, 0.8, 0.5, &five)
	if b.Final < 0 || b.Final > 1 {
		t.Fatalf("final %v out of [0,1]", b.Final)
	}
}

func TestNewResult_Rounding(t *testing.T) {
	b := Breakdown{Similarity: 0.123456, ReqCover: 0.5, NiceCover: 0.25, LLM: 0.7, Final: 0.543216}
	r := NewResult(7, "Jane Roe", b, "why")
	if r.Score != 54.32 {
		t.Fatalf("score = %v, want 54.32", r.Score)
	}
	if r.Components["similarity"] != 0.123 {
		t.Fatalf("similarity component = %v, want 0.123", r.Components["similarity"])
	}
	if r.Components["final"] != 0.543 {
		t.Fatalf("final component = %v, want 0.543", r.Components["final"])
	}
	if r.CandidateID != 7 || r.CandidateName != "Jane Roe" || r.Justification != "why" {
		t.Fatalf("unexpected result fields: %+v", r)
	}
}

func TestBuildJustification_OmitsEmptySections(t *testing.T) {
	got := BuildJustification(Narrative{
		Summary:   []string{"strong backend profile"},
		Reasoning: "matches most requirements",
	})
	if !strings.Contains(got, "Summary:\n• strong backend profile") {
		t.Fatalf("missing summary section:\n%s", got)
	}
	if strings.Contains(got, "Concerns") || strings.Contains(got, "Key Strengths") {
		t.Fatalf("empty sections rendered:\n%s", got)
	}
	if !strings.Contains(got, "Reasoning:\nmatches most requirements") {
		t.Fatalf("missing reasoning:\n%s", got)
	}
}

func TestBuildJustification_NoteOnly(t *testing.T) {
	got := BuildJustification(Narrative{Note: "LLM scoring unavailable"})
	if got != "LLM scoring unavailable" {
		t.Fatalf("got %q", got)
	}
}
