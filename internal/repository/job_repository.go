package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resume-match/internal/database"
	"resume-match/internal/domain/job"

	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(ctx context.Context, j *job.Job) (int64, error)
	GetByID(ctx context.Context, id int64) (*job.Job, error)
	ListAll(ctx context.Context) ([]*job.Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j *job.Job) (int64, error) {
	if j == nil {
		return 0, fmt.Errorf("nil job")
	}

	required, err := marshalList(j.RequiredSkills)
	if err != nil {
		return 0, err
	}
	niceToHave, err := marshalList(j.NiceToHaveSkills)
	if err != nil {
		return 0, err
	}
	embedding, err := marshalEmbedding(j.Embedding)
	if err != nil {
		return 0, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (title, description, required_skills, nice_to_have_skills, embedding, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 RETURNING id`,
		j.Title, j.Description, required, niceToHave, embedding, time.Now().UTC(),
	)

	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	j.ID = id
	return id, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id int64) (*job.Job, error) {
	row := r.db.QueryRow(ctx, selectJob+` WHERE id = $1`, id)
	j, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]*job.Job, error) {
	rows, err := r.db.Query(ctx, selectJob+` ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

const selectJob = `SELECT id, title, description, required_skills, nice_to_have_skills, embedding
 FROM jobs`

func scanJob(s scanner) (*job.Job, error) {
	var (
		j          job.Job
		required   []byte
		niceToHave []byte
		embedding  []byte
	)
	if err := s.Scan(&j.ID, &j.Title, &j.Description, &required, &niceToHave, &embedding); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(required, &j.RequiredSkills); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(niceToHave, &j.NiceToHaveSkills); err != nil {
		return nil, err
	}
	if len(embedding) > 0 {
		if err := json.Unmarshal(embedding, &j.Embedding); err != nil {
			return nil, err
		}
	}
	return &j, nil
}
