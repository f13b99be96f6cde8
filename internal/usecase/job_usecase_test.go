package usecase

import (
	"context"
	"errors"
	"testing"

	"resume-match/internal/repository"
)

type stubEmbedder struct {
	vec []float64
	err error
}

func (s stubEmbedder) Embed(context.Context, string) ([]float64, error) {
	return s.vec, s.err
}

func TestJobCreate_EmptyDescription(t *testing.T) {
	uc := NewJobUsecase(repository.NewMemoryJobRepository(), stubEmbedder{}, nil)
	if _, err := uc.Create(context.Background(), CreateJobInput{JDText: "   "}); !errors.Is(err, ErrEmptyJobDescription) {
		t.Fatalf("expected ErrEmptyJobDescription, got %v", err)
	}
}

func TestJobCreate_ExplicitFieldsKept(t *testing.T) {
	repo := repository.NewMemoryJobRepository()
	uc := NewJobUsecase(repo, stubEmbedder{vec: []float64{1, 0}}, nil)

	j, err := uc.Create(context.Background(), CreateJobInput{
		Title:            "Backend Engineer",
		JDText:           "build services in go",
		RequiredSkills:   []string{"go"},
		NiceToHaveSkills: []string{"docker"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j.Title != "Backend Engineer" || len(j.RequiredSkills) != 1 || j.RequiredSkills[0] != "go" {
		t.Fatalf("fields rewritten: %+v", j)
	}
	if len(j.Embedding) != 2 {
		t.Fatalf("embedding not stored: %+v", j)
	}
}

func TestJobCreate_BlankFieldsFilledFromText(t *testing.T) {
	uc := NewJobUsecase(repository.NewMemoryJobRepository(), stubEmbedder{vec: []float64{1}}, nil)

	j, err := uc.Create(context.Background(), CreateJobInput{
		JDText: "Job Title: Data Engineer. Requirements: python, sql.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j.Title != "Data Engineer" {
		t.Fatalf("title = %q", j.Title)
	}
	if len(j.RequiredSkills) == 0 {
		t.Fatalf("required skills not filled: %+v", j)
	}
}

func TestJobCreate_EmbeddingFailureStoresNilVector(t *testing.T) {
	repo := repository.NewMemoryJobRepository()
	uc := NewJobUsecase(repo, stubEmbedder{err: errors.New("service down")}, nil)

	j, err := uc.Create(context.Background(), CreateJobInput{Title: "X Y", JDText: "some text", RequiredSkills: []string{"go"}})
	if err != nil {
		t.Fatalf("embedding failure must not fail creation: %v", err)
	}
	if j.Embedding != nil {
		t.Fatalf("expected nil embedding, got %v", j.Embedding)
	}

	stored, err := repo.GetByID(context.Background(), j.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Embedding != nil {
		t.Fatalf("stored embedding should be nil, got %v", stored.Embedding)
	}
}

func TestJobList(t *testing.T) {
	repo := repository.NewMemoryJobRepository()
	uc := NewJobUsecase(repo, stubEmbedder{vec: []float64{1}}, nil)

	for _, title := range []string{"First Role", "Second Role"} {
		if _, err := uc.Create(context.Background(), CreateJobInput{Title: title, JDText: "text", RequiredSkills: []string{"go"}}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	jobs, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 || jobs[0].Title != "First Role" || jobs[1].Title != "Second Role" {
		t.Fatalf("unexpected listing: %+v", jobs)
	}
}
