package handler

import (
	"errors"
	"io"

	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/extractor"
	"resume-match/internal/pkg/response"
	"resume-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	uc usecase.CandidateUsecase
}

func NewCandidateHandler(uc usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/candidates")
	grp.Post("/upload", h.Upload)
}

func (h *CandidateHandler) Upload(c fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "resume file is required", nil, err)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "cannot read uploaded file", nil, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "cannot read uploaded file", nil, err)
	}

	cand, err := h.uc.Upload(c.Context(), fh.Filename, data)
	if err != nil {
		return mapCandidateError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateResponse(cand))
}

func mapCandidateError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrEmptyFile):
		return middleware.NewAppError(fiber.StatusBadRequest, "empty file uploaded", nil, err)
	case errors.Is(err, extractor.ErrUnsupportedFormat):
		return middleware.NewAppError(fiber.StatusUnsupportedMediaType, "unsupported file format", nil, err)
	case errors.Is(err, extractor.ErrDecode):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "file could not be decoded", nil, err)
	case errors.Is(err, extractor.ErrNoText):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "no text could be extracted", nil, err)
	default:
		return err
	}
}
