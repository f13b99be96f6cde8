package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resume-match/internal/extractor"
	"resume-match/internal/repository"
)

const resumeText = `Rahul Sharma
rahul.sharma@example.com

SKILLS
Python, Golang, Docker

5 years of experience
`

func newCandidateUC(t *testing.T, embedder stubEmbedder) (*Candidates, *repository.MemoryCandidateRepository, string) {
	t.Helper()
	repo := repository.NewMemoryCandidateRepository()
	dir := t.TempDir()
	uc := NewCandidateUsecase(repo, extractor.New("IN", nil), embedder, dir, nil)
	return uc, repo, dir
}

func TestCandidateUpload_EmptyFile(t *testing.T) {
	uc, _, _ := newCandidateUC(t, stubEmbedder{})
	if _, err := uc.Upload(context.Background(), "resume.txt", nil); !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
}

func TestCandidateUpload_ParsesAndStores(t *testing.T) {
	uc, repo, dir := newCandidateUC(t, stubEmbedder{vec: []float64{1, 0}})

	c, err := uc.Upload(context.Background(), "resume.txt", []byte(resumeText))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Rahul Sharma" {
		t.Fatalf("name = %q", c.Name)
	}
	if len(c.Skills) == 0 || c.ExperienceYears == nil || *c.ExperienceYears != 5 {
		t.Fatalf("parsed fields missing: %+v", c)
	}
	if len(c.Embedding) != 2 {
		t.Fatalf("embedding not attached: %+v", c.Embedding)
	}

	stored, err := repo.GetByID(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("candidate not stored: %v", err)
	}
	if stored.Name != "Rahul Sharma" {
		t.Fatalf("stored name = %q", stored.Name)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "resumes"))
	if err != nil || len(entries) != 1 {
		t.Fatalf("resume file not persisted: %v %v", entries, err)
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "resume_") || !strings.HasSuffix(name, "_resume.txt") {
		t.Fatalf("unexpected stored name %q", name)
	}
}

func TestCandidateUpload_FileNameSanitized(t *testing.T) {
	uc, _, dir := newCandidateUC(t, stubEmbedder{vec: []float64{1}})

	if _, err := uc.Upload(context.Background(), "my resume (final).txt", []byte(resumeText)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries, err := os.ReadDir(filepath.Join(dir, "resumes"))
	if err != nil || len(entries) != 1 {
		t.Fatalf("resume file not persisted: %v %v", entries, err)
	}
	if strings.ContainsAny(entries[0].Name(), " ()") {
		t.Fatalf("unsafe characters kept in %q", entries[0].Name())
	}
}

func TestCandidateUpload_EmbeddingFailureTolerated(t *testing.T) {
	uc, _, _ := newCandidateUC(t, stubEmbedder{err: errors.New("service down")})

	c, err := uc.Upload(context.Background(), "resume.txt", []byte(resumeText))
	if err != nil {
		t.Fatalf("embedding failure must not fail upload: %v", err)
	}
	if c.Embedding != nil {
		t.Fatalf("expected nil embedding, got %v", c.Embedding)
	}
}

func TestCandidateUpload_UnsupportedFormat(t *testing.T) {
	uc, _, _ := newCandidateUC(t, stubEmbedder{})
	_, err := uc.Upload(context.Background(), "resume.exe", []byte("binary"))
	if !errors.Is(err, extractor.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
