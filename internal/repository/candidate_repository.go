package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resume-match/internal/database"
	"resume-match/internal/domain/candidate"

	"github.com/jackc/pgx/v5"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository interface {
	Create(ctx context.Context, c *candidate.Candidate) (int64, error)
	GetByID(ctx context.Context, id int64) (*candidate.Candidate, error)
	ListAll(ctx context.Context) ([]*candidate.Candidate, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) Create(ctx context.Context, c *candidate.Candidate) (int64, error) {
	if c == nil {
		return 0, fmt.Errorf("nil candidate")
	}
	if c.ParsedAt.IsZero() {
		c.ParsedAt = time.Now().UTC()
	}

	emails, err := marshalList(c.Emails)
	if err != nil {
		return 0, err
	}
	phones, err := marshalList(c.Phones)
	if err != nil {
		return 0, err
	}
	skills, err := marshalList(c.Skills)
	if err != nil {
		return 0, err
	}
	byCategory, err := json.Marshal(skillMapOrEmpty(c.SkillsByCategory))
	if err != nil {
		return 0, err
	}
	education, err := json.Marshal(orEmptySlice(c.Education))
	if err != nil {
		return 0, err
	}
	workHistory, err := json.Marshal(orEmptySlice(c.WorkHistory))
	if err != nil {
		return 0, err
	}
	embedding, err := marshalEmbedding(c.Embedding)
	if err != nil {
		return 0, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO candidates
			(name, emails, phones, raw_text, skills, skills_by_category,
			 experience_years, education, work_history, embedding, file_path, parsed_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		 RETURNING id`,
		c.Name, emails, phones, c.RawText, skills, byCategory,
		c.ExperienceYears, education, workHistory, embedding, c.FilePath, c.ParsedAt,
	)

	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	c.ID = id
	return id, nil
}

func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id int64) (*candidate.Candidate, error) {
	row := r.db.QueryRow(ctx, selectCandidate+` WHERE id = $1`, id)
	c, err := scanCandidate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCandidateNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *PostgresCandidateRepository) ListAll(ctx context.Context) ([]*candidate.Candidate, error) {
	rows, err := r.db.Query(ctx, selectCandidate+` ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*candidate.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

const selectCandidate = `SELECT id, name, emails, phones, raw_text, skills,
	skills_by_category, experience_years, education, work_history, embedding,
	file_path, parsed_at
 FROM candidates`

type scanner interface {
	Scan(dest ...any) error
}

func scanCandidate(s scanner) (*candidate.Candidate, error) {
	var (
		c           candidate.Candidate
		emails      []byte
		phones      []byte
		skills      []byte
		byCategory  []byte
		education   []byte
		workHistory []byte
		embedding   []byte
	)
	err := s.Scan(
		&c.ID, &c.Name, &emails, &phones, &c.RawText, &skills,
		&byCategory, &c.ExperienceYears, &education, &workHistory, &embedding,
		&c.FilePath, &c.ParsedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(emails, &c.Emails); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(phones, &c.Phones); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(skills, &c.Skills); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(byCategory, &c.SkillsByCategory); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(education, &c.Education); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(workHistory, &c.WorkHistory); err != nil {
		return nil, err
	}
	if len(embedding) > 0 {
		if err := json.Unmarshal(embedding, &c.Embedding); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func marshalList(v []string) ([]byte, error) {
	if v == nil {
		v = []string{}
	}
	return json.Marshal(v)
}

func marshalEmbedding(v []float64) (any, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func skillMapOrEmpty(m map[string][]string) map[string][]string {
	if m == nil {
		return map[string][]string{}
	}
	return m
}

func orEmptySlice[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
