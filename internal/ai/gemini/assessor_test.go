package gemini

import (
	"context"
	"errors"
	"testing"
)

type stubGenerator struct {
	response string
	err      error
}

func (s stubGenerator) GenerateContent(context.Context, string) (string, error) {
	return s.response, s.err
}

func TestAssess_ParsesFencedJSON(t *testing.T) {
	a := NewAssessor(stubGenerator{response: "```json\n" +
		`{"fit_score": 8, "summary_bullets": ["solid backend work"], "key_strengths": ["go"], "concerns": [], "reasoning": "good overlap"}` +
		"\n```"}, nil)

	got, err := a.Assess(context.Background(), "job", "resume", "Jane")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FitScore != 8 {
		t.Fatalf("fit score = %v", got.FitScore)
	}
	if len(got.SummaryBullets) != 1 || got.SummaryBullets[0] != "solid backend work" {
		t.Fatalf("bullets = %v", got.SummaryBullets)
	}
	if got.Reasoning != "good overlap" {
		t.Fatalf("reasoning = %q", got.Reasoning)
	}
}

func TestAssess_ClampsScore(t *testing.T) {
	a := NewAssessor(stubGenerator{response: `{"fit_score": 42}`}, nil)
	got, err := a.Assess(context.Background(), "job", "resume", "Jane")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FitScore != 10 {
		t.Fatalf("score not clamped: %v", got.FitScore)
	}

	a = NewAssessor(stubGenerator{response: `{"fit_score": "not a number"}`}, nil)
	got, err = a.Assess(context.Background(), "job", "resume", "Jane")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FitScore != 1 {
		t.Fatalf("unparseable score should floor to 1, got %v", got.FitScore)
	}
}

func TestAssess_StringScoreCoerced(t *testing.T) {
	a := NewAssessor(stubGenerator{response: `{"fit_score": "7.5"}`}, nil)
	got, err := a.Assess(context.Background(), "job", "resume", "Jane")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FitScore != 7.5 {
		t.Fatalf("score = %v", got.FitScore)
	}
}

func TestAssess_MalformedResponse(t *testing.T) {
	a := NewAssessor(stubGenerator{response: "the candidate seems fine"}, nil)
	if _, err := a.Assess(context.Background(), "job", "resume", "Jane"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestAssess_GeneratorError(t *testing.T) {
	boom := errors.New("quota exceeded")
	a := NewAssessor(stubGenerator{err: boom}, nil)
	if _, err := a.Assess(context.Background(), "job", "resume", "Jane"); !errors.Is(err, boom) {
		t.Fatalf("expected generator error, got %v", err)
	}
}

func TestAssess_EmptyInputs(t *testing.T) {
	a := NewAssessor(stubGenerator{response: `{}`}, nil)
	if _, err := a.Assess(context.Background(), "", "resume", "Jane"); err == nil {
		t.Fatal("expected error for empty job text")
	}
	if _, err := a.Assess(context.Background(), "job", " ", "Jane"); err == nil {
		t.Fatal("expected error for empty resume text")
	}
}
