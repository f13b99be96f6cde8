package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"resume-match/internal/domain/candidate"
	"resume-match/internal/embedding"
	"resume-match/internal/extractor"
	"resume-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CandidateUsecase interface {
	Upload(ctx context.Context, fileName string, data []byte) (*candidate.Candidate, error)
}

type Candidates struct {
	repo      repository.CandidateRepository
	extractor *extractor.Extractor
	embedder  embedding.Embedder
	dataDir   string
	logger    *zap.Logger
}

func NewCandidateUsecase(
	repo repository.CandidateRepository,
	ex *extractor.Extractor,
	embedder embedding.Embedder,
	dataDir string,
	logger *zap.Logger,
) *Candidates {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Candidates{repo: repo, extractor: ex, embedder: embedder, dataDir: dataDir, logger: logger}
}

// Upload persists the raw document under a unique name, parses it into
// structured fields, embeds the text best-effort, and stores the candidate.
// A failed embedding leaves the vector nil; the candidate is still stored
// and simply drops out of similarity ranking.
func (u *Candidates) Upload(ctx context.Context, fileName string, data []byte) (*candidate.Candidate, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	storedName := safeFileName("resume", fileName)
	path := filepath.Join(u.dataDir, "resumes", storedName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("prepare resume dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("store resume: %w", err)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	resume, err := u.extractor.ParseBytes(data, ext, fileName)
	if err != nil {
		return nil, err
	}

	name := resume.Name
	if name == "" {
		name = "Unknown"
	}

	c := &candidate.Candidate{
		Name:             name,
		Emails:           resume.Emails,
		Phones:           resume.Phones,
		RawText:          resume.RawText,
		Skills:           resume.Skills,
		SkillsByCategory: resume.SkillsByCategory,
		ExperienceYears:  resume.ExperienceYears,
		Education:        resume.Education,
		WorkHistory:      resume.WorkHistory,
		Embedding:        u.safeEmbed(ctx, resume.RawText),
		FilePath:         path,
		ParsedAt:         resume.ParsedAt,
	}

	if _, err := u.repo.Create(ctx, c); err != nil {
		u.logger.Error("store candidate", zap.Error(err))
		return nil, ErrInternal
	}
	return c, nil
}

func (u *Candidates) safeEmbed(ctx context.Context, text string) []float64 {
	if u.embedder == nil {
		return nil
	}
	vec, err := u.embedder.Embed(ctx, text)
	if err != nil {
		u.logger.Warn("embedding failed, storing candidate without vector", zap.Error(err))
		return nil
	}
	return vec
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// safeFileName produces "<prefix>_<uuid8>_<sanitized original>".
func safeFileName(prefix, original string) string {
	base := unsafeFileChars.ReplaceAllString(original, "_")
	unique := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%s_%s", prefix, unique, base)
}
