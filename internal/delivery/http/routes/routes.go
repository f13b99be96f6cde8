package routes

import (
	"resume-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health     *handler.HealthHandler
	candidates *handler.CandidateHandler
	jobs       *handler.JobHandler
	match      *handler.MatchHandler
}

func NewRegistry(
	health *handler.HealthHandler,
	candidates *handler.CandidateHandler,
	jobs *handler.JobHandler,
	match *handler.MatchHandler,
) *Registry {
	return &Registry{health: health, candidates: candidates, jobs: jobs, match: match}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	v1 := app.Group("/api").Group("/v1")
	r.candidates.RegisterRoutes(v1)
	r.jobs.RegisterRoutes(v1)
	r.match.RegisterRoutes(v1)
}
