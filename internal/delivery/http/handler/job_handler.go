package handler

import (
	"errors"

	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/pkg/response"
	"resume-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Post("/", h.Create)
	grp.Get("/", h.List)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", nil, err)
	}

	j, err := h.uc.Create(c.Context(), usecase.CreateJobInput{
		Title:            req.Title,
		JDText:           req.JDText,
		RequiredSkills:   req.RequiredSkills,
		NiceToHaveSkills: req.NiceToHaveSkills,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyJobDescription) {
			return middleware.NewAppError(fiber.StatusBadRequest, "jd_text cannot be empty", nil, err)
		}
		return err
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobCreatedResponse{JobID: j.ID, Title: j.Title})
}

func (h *JobHandler) List(c fiber.Ctx) error {
	jobs, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobSummaries(jobs))
}
