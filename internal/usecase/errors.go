package usecase

import "errors"

var (
	ErrEmptyFile           = errors.New("empty file uploaded")
	ErrEmptyJobDescription = errors.New("jd_text cannot be empty")
	ErrInvalidTopK         = errors.New("top_k must be greater than zero")
	ErrJobNotFound         = errors.New("job not found")
	ErrInternal            = errors.New("internal error")
)
