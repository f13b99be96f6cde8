package handler

import (
	"errors"
	"strconv"

	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/pkg/response"
	"resume-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const defaultTopK = 5

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/:job_id/match", h.Match)
}

func (h *MatchHandler) Match(c fiber.Ctx) error {
	jobID, err := strconv.ParseInt(c.Params("job_id"), 10, 64)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid job id", nil, err)
	}

	topK := defaultTopK
	if raw := c.Query("top_k"); raw != "" {
		topK, err = strconv.Atoi(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "invalid top_k", nil, err)
		}
	}

	results, err := h.uc.Match(c.Context(), jobID, topK)
	if err != nil {
		return mapMatchError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResults(results))
}

func mapMatchError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidTopK):
		return middleware.NewAppError(fiber.StatusBadRequest, "top_k must be greater than zero", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "job not found", nil, err)
	default:
		return err
	}
}
