package handler

import (
	"errors"
	"strconv"
	"strings"

	"talentgate/internal/delivery/http/dto"
	"talentgate/internal/delivery/http/middleware"
	"talentgate/internal/pkg/response"
	"talentgate/internal/storage"
	"talentgate/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc    usecase.ApplicationUsecase
	store *storage.DiskStore
}

func NewApplicationHandler(uc usecase.ApplicationUsecase, store *storage.DiskStore) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, store: store}
}

// RegisterRoutes leaves Submit public; the recruiter reads are gated by
// the supplied middleware.
func (h *ApplicationHandler) RegisterRoutes(r fiber.Router, protected ...fiber.Handler) {
	if r == nil {
		return
	}

	mw := make([]any, len(protected))
	for i, m := range protected {
		mw[i] = m
	}

	r.Post("/", h.Submit)
	r.Get("/", h.GetAll, mw...)
	r.Get("/job/:jobPostingId", h.GetForJobPosting, mw...)
}

// Submit owns the uploaded files' lifecycle on the error path: anything
// written to disk before a failed submission is deleted before returning.
func (h *ApplicationHandler) Submit(c fiber.Ctx) error {
	firstName := strings.TrimSpace(c.FormValue("firstName"))
	lastName := strings.TrimSpace(c.FormValue("lastName"))
	email := strings.TrimSpace(c.FormValue("email"))
	yearsRaw := strings.TrimSpace(c.FormValue("yearsOfExperience"))
	education := strings.TrimSpace(c.FormValue("highestEducation"))
	coverLetter := c.FormValue("coverLetter")
	jobIDRaw := strings.TrimSpace(c.FormValue("jobPostingId"))

	if firstName == "" || lastName == "" || email == "" || yearsRaw == "" || education == "" || jobIDRaw == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing required application fields", nil, nil)
	}

	years, err := strconv.Atoi(yearsRaw)
	if err != nil || years < 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid years of experience", nil, err)
	}

	cvHeader, err := c.FormFile("cvFile")
	if err != nil || cvHeader == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "CV file is required", nil, err)
	}

	// A malformed id cannot reference any job posting.
	jobID, err := uuid.Parse(jobIDRaw)
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job posting not found", nil, err)
	}

	cvName, err := h.store.Save(cvHeader, "cvFile", storage.CVExtensions)
	if err != nil {
		return mapStorageError("CV", err)
	}

	var pictureName string
	if pictureHeader, ferr := c.FormFile("profilePictureFile"); ferr == nil && pictureHeader != nil {
		pictureName, err = h.store.Save(pictureHeader, "profilePictureFile", storage.PictureExtensions)
		if err != nil {
			_ = h.store.Remove(cvName)
			return mapStorageError("profile picture", err)
		}
	}

	created, err := h.uc.Submit(c.Context(), usecase.SubmitApplicationInput{
		FirstName:              firstName,
		LastName:               lastName,
		Email:                  email,
		YearsOfExperience:      years,
		HighestEducation:       education,
		JobPostingID:           jobID,
		CoverLetter:            coverLetter,
		CVFileName:             cvName,
		ProfilePictureFileName: pictureName,
	})
	if err != nil {
		_ = h.store.Remove(cvName)
		if pictureName != "" {
			_ = h.store.Remove(pictureName)
		}
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Application submitted successfully", created)
}

func (h *ApplicationHandler) GetAll(c fiber.Ctx) error {
	details, err := h.uc.GetAll(c.Context())
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplicationDetails(details))
}

func (h *ApplicationHandler) GetForJobPosting(c fiber.Ctx) error {
	jobID, err := uuid.Parse(strings.TrimSpace(c.Params("jobPostingId")))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job posting not found", nil, err)
	}

	details, err := h.uc.GetForJobPosting(c.Context(), jobID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplicationDetails(details))
}

func mapStorageError(kind string, err error) error {
	switch {
	case errors.Is(err, storage.ErrUnsupportedType):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+kind+" file type", nil, err)
	case errors.Is(err, storage.ErrFileTooLarge):
		return middleware.NewAppError(fiber.StatusBadRequest, "Uploaded "+kind+" file is too large", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func mapApplicationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing or invalid application fields", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job posting not found", nil, err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "You have already applied for this job posting", nil, err)
	case errors.Is(err, usecase.ErrApplicantConflict):
		return middleware.NewAppError(fiber.StatusConflict, "An applicant with this email already exists", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
