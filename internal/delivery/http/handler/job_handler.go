package handler

import (
	"errors"
	"strings"
	"time"

	"talentgate/internal/delivery/http/middleware"
	"talentgate/internal/domain/job"
	"talentgate/internal/pkg/response"
	"talentgate/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type createJobRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"requiredSkills"`
	Department     string   `json:"department"`
	ClosingDate    string   `json:"closingDate"`
}

type updateJobRequest struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	RequiredSkills []string `json:"requiredSkills"`
	Department     *string  `json:"department"`
	ClosingDate    *string  `json:"closingDate"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// RegisterRoutes wires listing and detail reads publicly and gates
// mutations and analytics behind the supplied middleware. /analytics is
// registered before /:id so it is never captured as an id.
func (h *JobHandler) RegisterRoutes(r fiber.Router, protected ...fiber.Handler) {
	if r == nil {
		return
	}

	mw := make([]any, len(protected))
	for i, m := range protected {
		mw[i] = m
	}

	r.Get("/", h.List)
	r.Get("/analytics", h.Analytics, mw...)
	r.Get("/:id", h.GetByID)
	r.Post("/", h.Create, mw...)
	r.Put("/:id", h.Update, mw...)
	r.Delete("/:id", h.Delete, mw...)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	closing, err := parseClosingDate(req.ClosingDate)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid closing date", nil, err)
	}

	created, err := h.uc.Create(c.Context(), usecase.JobCreateInput{
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Department:     req.Department,
		ClosingDate:    closing,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Job posting created", created)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	f := job.Filter{
		Title:      strings.TrimSpace(c.Query("title")),
		Department: strings.TrimSpace(c.Query("department")),
		Skills:     splitSkills(c.Query("skills")),
	}

	jobs, err := h.uc.List(c.Context(), f)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, jobs)
}

func (h *JobHandler) GetByID(c fiber.Ctx) error {
	id, ok := parseJobID(c.Params("id"))
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "Job posting not found", nil, nil)
	}

	j, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, j)
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	id, ok := parseJobID(c.Params("id"))
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "Job posting not found", nil, nil)
	}

	var req updateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	upd := job.Update{
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Department:     req.Department,
	}
	if req.ClosingDate != nil {
		closing, err := parseClosingDate(*req.ClosingDate)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid closing date", nil, err)
		}
		upd.ClosingDate = &closing
	}

	updated, err := h.uc.Update(c.Context(), id, upd)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job posting updated", updated)
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	id, ok := parseJobID(c.Params("id"))
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "Job posting not found", nil, nil)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job posting deleted", nil)
}

func (h *JobHandler) Analytics(c fiber.Ctx) error {
	out, err := h.uc.Analytics(c.Context())
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func parseJobID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func parseClosingDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("empty closing date")
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func splitSkills(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func mapJobUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job posting fields", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job posting not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
