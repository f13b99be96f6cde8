package usecase

import (
	"context"
	"strings"

	"resume-match/internal/domain/job"
	"resume-match/internal/embedding"
	"resume-match/internal/extractor"
	"resume-match/internal/repository"

	"go.uber.org/zap"
)

type CreateJobInput struct {
	Title            string
	JDText           string
	RequiredSkills   []string
	NiceToHaveSkills []string
}

type JobUsecase interface {
	Create(ctx context.Context, in CreateJobInput) (*job.Job, error)
	List(ctx context.Context) ([]*job.Job, error)
}

type Jobs struct {
	repo     repository.JobRepository
	embedder embedding.Embedder
	logger   *zap.Logger
}

func NewJobUsecase(repo repository.JobRepository, embedder embedding.Embedder, logger *zap.Logger) *Jobs {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Jobs{repo: repo, embedder: embedder, logger: logger}
}

// Create stores a job with its embedding. Fields the caller leaves blank
// are filled from the JD text itself; embedding failure stores a nil
// vector and is logged, never surfaced.
func (u *Jobs) Create(ctx context.Context, in CreateJobInput) (*job.Job, error) {
	if strings.TrimSpace(in.JDText) == "" {
		return nil, ErrEmptyJobDescription
	}

	title := strings.TrimSpace(in.Title)
	required := in.RequiredSkills
	niceToHave := in.NiceToHaveSkills

	if title == "" || len(required) == 0 {
		details := extractor.ExtractJobDescription(in.JDText)
		if title == "" {
			title = details.Title
		}
		if len(required) == 0 {
			required = details.RequiredSkills
		}
		if len(niceToHave) == 0 {
			niceToHave = details.NiceToHaveSkills
		}
	}

	j := &job.Job{
		Title:            title,
		Description:      in.JDText,
		RequiredSkills:   required,
		NiceToHaveSkills: niceToHave,
		Embedding:        u.safeEmbed(ctx, in.JDText),
	}

	if _, err := u.repo.Create(ctx, j); err != nil {
		u.logger.Error("store job", zap.Error(err))
		return nil, ErrInternal
	}
	return j, nil
}

func (u *Jobs) List(ctx context.Context) ([]*job.Job, error) {
	jobs, err := u.repo.ListAll(ctx)
	if err != nil {
		u.logger.Error("list jobs", zap.Error(err))
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *Jobs) safeEmbed(ctx context.Context, text string) []float64 {
	if u.embedder == nil {
		return nil
	}
	vec, err := u.embedder.Embed(ctx, text)
	if err != nil {
		u.logger.Warn("embedding failed, storing job without vector", zap.Error(err))
		return nil
	}
	return vec
}
