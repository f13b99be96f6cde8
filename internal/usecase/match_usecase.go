package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"resume-match/internal/ai"
	"resume-match/internal/config"
	"resume-match/internal/domain/candidate"
	"resume-match/internal/domain/job"
	"resume-match/internal/domain/matching"
	"resume-match/internal/repository"
	"resume-match/internal/workerpool"

	"go.uber.org/zap"
)

// llmUnavailableNote is appended to a justification when the qualitative
// assessment could not be obtained for a shortlisted candidate.
const llmUnavailableNote = "LLM scoring unavailable"

type MatchUsecase interface {
	Match(ctx context.Context, jobID int64, topK int) ([]matching.Result, error)
}

type Matcher struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	assessor   ai.Assessor
	cfg        config.MatchingConfig
	logger     *zap.Logger
}

func NewMatchUsecase(
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
	assessor ai.Assessor,
	cfg config.MatchingConfig,
	logger *zap.Logger,
) *Matcher {
	if cfg.ShortlistFloor <= 0 {
		cfg.ShortlistFloor = 10
	}
	if cfg.AssessorWorkers <= 0 {
		cfg.AssessorWorkers = 1
	}
	if cfg.AssessorTimeout <= 0 {
		cfg.AssessorTimeout = 60 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{jobs: jobs, candidates: candidates, assessor: assessor, cfg: cfg, logger: logger}
}

type shortlisted struct {
	cand       *candidate.Candidate
	prelim     matching.Breakdown
	assessment *ai.FitAssessment
	failed     bool
}

// Match ranks all stored candidates against a job in two passes: a cheap
// preliminary score over everyone, then a qualitative re-scoring of the
// shortlist. Candidates without an embedding never enter the ranking.
func (u *Matcher) Match(ctx context.Context, jobID int64, topK int) ([]matching.Result, error) {
	if topK <= 0 {
		return nil, ErrInvalidTopK
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		u.logger.Error("load job", zap.Int64("job_id", jobID), zap.Error(err))
		return nil, ErrInternal
	}

	cands, err := u.candidates.ListAll(ctx)
	if err != nil {
		u.logger.Error("list candidates", zap.Error(err))
		return nil, ErrInternal
	}

	shortlist := u.shortlist(j, cands, topK)
	u.assess(ctx, j, shortlist)

	results := make([]matching.Result, 0, len(shortlist))
	for _, s := range shortlist {
		var llmFit *float64
		narrative := matching.Narrative{}
		if s.assessment != nil {
			llmFit = &s.assessment.FitScore
			narrative.Summary = s.assessment.SummaryBullets
			narrative.KeyStrengths = s.assessment.KeyStrengths
			narrative.Concerns = s.assessment.Concerns
			narrative.Reasoning = s.assessment.Reasoning
		}
		if s.failed {
			narrative.Note = llmUnavailableNote
		}

		final := matching.Composite(s.prelim.Similarity, s.prelim.ReqCover, s.prelim.NiceCover, llmFit)
		results = append(results, matching.NewResult(
			s.cand.ID, s.cand.Name, final, matching.BuildJustification(narrative),
		))
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// shortlist runs the preliminary pass and keeps the top
// max(floor, 2*topK) candidates by score.
func (u *Matcher) shortlist(j *job.Job, cands []*candidate.Candidate, topK int) []*shortlisted {
	entries := make([]*shortlisted, 0, len(cands))
	for _, c := range cands {
		if len(c.Embedding) == 0 {
			u.logger.Debug("candidate has no embedding, excluded from ranking",
				zap.Int64("candidate_id", c.ID))
			continue
		}
		similarity := matching.Cosine(c.Embedding, j.Embedding)
		reqCover, niceCover := matching.SkillCoverage(c.Skills, j.RequiredSkills, j.NiceToHaveSkills)
		entries = append(entries, &shortlisted{
			cand:   c,
			prelim: matching.Composite(similarity, reqCover, niceCover, nil),
		})
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].prelim.Final > entries[b].prelim.Final
	})

	limit := u.cfg.ShortlistFloor
	if 2*topK > limit {
		limit = 2 * topK
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// assess runs the qualitative pass over the shortlist on a bounded worker
// pool. Each call gets its own timeout; a failed or missing assessment
// marks the entry so the result carries the unavailable note.
func (u *Matcher) assess(ctx context.Context, j *job.Job, shortlist []*shortlisted) {
	if len(shortlist) == 0 {
		return
	}
	if u.assessor == nil {
		for _, s := range shortlist {
			s.failed = true
		}
		return
	}

	pool := workerpool.New(u.cfg.AssessorWorkers, len(shortlist))
	for _, s := range shortlist {
		pool.Submit(func(ctx context.Context) error {
			callCtx := ctx
			if u.cfg.AssessorTimeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(ctx, u.cfg.AssessorTimeout)
				defer cancel()
			}
			assessment, err := u.assessor.Assess(callCtx, j.Description, s.cand.RawText, s.cand.Name)
			if err != nil {
				u.logger.Warn("fit assessment failed",
					zap.Int64("candidate_id", s.cand.ID), zap.Error(err))
				s.failed = true
				return err
			}
			s.assessment = assessment
			return nil
		})
	}
	pool.Close()

	for range pool.Run(ctx) {
	}

	// Cancellation can stop workers before they touch every entry; those
	// entries have neither an assessment nor a failure mark yet.
	for _, s := range shortlist {
		if s.assessment == nil {
			s.failed = true
		}
	}
}
