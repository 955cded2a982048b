// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

package job

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hirelane/hirelane/internal/platform/middleware"
	requestutil "github.com/hirelane/hirelane/internal/platform/request"
	"github.com/hirelane/hirelane/internal/platform/respond"
	"github.com/hirelane/hirelane/internal/platform/validate"
	"github.com/hirelane/hirelane/pkg/pagination"
)

const (
	FieldJob     = "job"
	FieldJobs    = "jobs"
	FieldMessage = "message"
)

// # Handler Implementation

// Handler implements the HTTP layer for job posting management.
//
// Every route requires authentication; the owning employer is always the
// token subject, never anything from the request body or URL.
type Handler struct {
	service *Service
}

// NewHandler constructs a new job [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the posting CRUD endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireAuth)
	router.Post("/", handler.createJob)
	router.Get("/", handler.listJobs)
	router.Get("/{id}", handler.getJob)
	router.Put("/{id}", handler.updateJob)
	router.Delete("/{id}", handler.deleteJob)

	return router
}

// # Request Payloads

// jobRequest defines the inbound JSON schema for create and update.
type jobRequest struct {
	Title           string     `json:"title"`
	Tags            []string   `json:"tags"`
	JobRole         string     `json:"job_role"`
	MinSalary       *float64   `json:"min_salary"`
	MaxSalary       *float64   `json:"max_salary"`
	SalaryType      *string    `json:"salary_type"`
	EducationLevel  *string    `json:"education_level"`
	ExperienceLevel *string    `json:"experience_level"`
	JobType         *string    `json:"job_type"`
	JobLevel        *string    `json:"job_level"`
	ExpirationDate  *time.Time `json:"expiration_date"`
	Country         *string    `json:"country"`
	City            *string    `json:"city"`
	FullyRemote     bool       `json:"fully_remote"`
	Description     string     `json:"description"`
}

// toInput maps the wire payload onto the service-layer input.
func (request *jobRequest) toInput() Input {
	return Input{
		Title:           request.Title,
		Tags:            request.Tags,
		JobRole:         request.JobRole,
		MinSalary:       request.MinSalary,
		MaxSalary:       request.MaxSalary,
		SalaryType:      request.SalaryType,
		EducationLevel:  request.EducationLevel,
		ExperienceLevel: request.ExperienceLevel,
		JobType:         request.JobType,
		JobLevel:        request.JobLevel,
		ExpirationDate:  request.ExpirationDate,
		Country:         request.Country,
		City:            request.City,
		FullyRemote:     request.FullyRemote,
		Description:     request.Description,
	}
}

// # Posting Endpoints

/*
POST /api/jobs.

Description: Creates a new posting owned by the authenticated employer.

Response:
  - 201: Job: Created posting
  - 400: ErrInvalidJSON/Validation: Invalid payload
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) createJob(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input jobRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	job, err := handler.service.CreateJob(request.Context(), ownerID, input.toInput())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]any{FieldJob: job})
}

/*
GET /api/jobs.

Description: Lists the authenticated employer's live postings, newest first.

Request:
  - page: int
  - limit: int

Response:
  - 200: []Job: Paginated list
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) listJobs(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	jobs, total, err := handler.service.ListJobs(request.Context(), ownerID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if jobs == nil {
		jobs = []*Job{}
	}

	respond.Paginated(writer, map[string]any{FieldJobs: jobs},
		pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/jobs/{id}.

Response:
  - 200: Job: The posting
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Missing, deleted, or owned by another employer
*/
func (handler *Handler) getJob(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	jobID := requestutil.Param(request, "id")

	job, err := handler.service.GetJob(request.Context(), jobID, ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{FieldJob: job})
}

/*
PUT /api/jobs/{id}.

Description: Full replacement of a posting's writable fields.

Response:
  - 200: Job: Updated posting
  - 400: ErrInvalidJSON/Validation: Invalid payload
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Missing, deleted, or owned by another employer
*/
func (handler *Handler) updateJob(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	jobID := requestutil.Param(request, "id")

	var input jobRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	job, err := handler.service.UpdateJob(request.Context(), jobID, ownerID, input.toInput())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{FieldJob: job})
}

/*
DELETE /api/jobs/{id}.

Description: Soft-deletes a posting. The row survives with deletedat set.

Response:
  - 200: Message: Success
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Missing, already deleted, or owned by another employer
*/
func (handler *Handler) deleteJob(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	jobID := requestutil.Param(request, "id")

	if err := handler.service.DeleteJob(request.Context(), jobID, ownerID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{FieldMessage: "Job deleted"})
}
