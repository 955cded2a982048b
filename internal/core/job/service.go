// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

package job

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/hirelane/hirelane/internal/platform/apperr"
	"github.com/hirelane/hirelane/pkg/slice"
	"github.com/hirelane/hirelane/pkg/uuid"
)

// # Service Layer

// Service orchestrates the business logic for job postings.
type Service struct {
	jobRepo Repository
	logger  *slog.Logger
}

// NewService constructs a new [Service] with its required repository.
func NewService(jobRepo Repository, logger *slog.Logger) *Service {
	return &Service{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

// Input carries the writable fields of a posting for create and update.
type Input struct {
	Title           string
	Tags            []string
	JobRole         string
	MinSalary       *float64
	MaxSalary       *float64
	SalaryType      *string
	EducationLevel  *string
	ExperienceLevel *string
	JobType         *string
	JobLevel        *string
	ExpirationDate  *time.Time
	Country         *string
	City            *string
	FullyRemote     bool
	Description     string
}

// validateInput enforces the mandatory posting fields shared by create and update.
func validateInput(input *Input) error {
	input.Title = strings.TrimSpace(input.Title)
	input.JobRole = strings.TrimSpace(input.JobRole)
	input.Description = strings.TrimSpace(input.Description)
	input.Tags = normalizeTags(input.Tags)
	if input.Tags == nil {
		// The tags column is NOT NULL; absent tags persist as an empty array.
		input.Tags = []string{}
	}

	// First failure wins so the response message names the offending field.
	switch {
	case input.Title == "":
		return apperr.ValidationError("Job title is required")
	case input.JobRole == "":
		return apperr.ValidationError("Job role is required")
	case input.Description == "":
		return apperr.ValidationError("Job description is required")
	}

	return nil
}

// normalizeTags trims entries and drops empties, preserving order.
func normalizeTags(tags []string) []string {
	trimmed := slice.Map(tags, strings.TrimSpace)
	return slice.Filter(trimmed, func(tag string) bool { return tag != "" })
}

// # Posting Operations

/*
CreateJob validates and persists a new posting owned by the given employer.

Parameters:
  - context: context.Context
  - ownerID: string (Employer UUID from the access token)
  - input: Input

Returns:
  - *Job: The persisted posting
  - error: Validation or persistence errors
*/
func (service *Service) CreateJob(context context.Context, ownerID string, input Input) (*Job, error) {

	if err := validateInput(&input); err != nil {
		return nil, err
	}

	job := &Job{
		ID:              uuid.New(),
		Title:           input.Title,
		Tags:            input.Tags,
		JobRole:         input.JobRole,
		MinSalary:       input.MinSalary,
		MaxSalary:       input.MaxSalary,
		SalaryType:      input.SalaryType,
		EducationLevel:  input.EducationLevel,
		ExperienceLevel: input.ExperienceLevel,
		JobType:         input.JobType,
		JobLevel:        input.JobLevel,
		ExpirationDate:  input.ExpirationDate,
		Country:         input.Country,
		City:            input.City,
		FullyRemote:     input.FullyRemote,
		Description:     input.Description,
		CreatedBy:       ownerID,
	}

	if err := service.jobRepo.Create(context, job); err != nil {
		return nil, err
	}

	service.logger.Info("job_created",
		slog.String("job_id", job.ID),
		slog.String("owner_id", ownerID),
	)

	return job, nil
}

/*
ListJobs returns the employer's own live postings, newest first.

Parameters:
  - context: context.Context
  - ownerID: string
  - limit: int
  - offset: int

Returns:
  - []*Job: Matched postings
  - int: Total posting count for the employer
  - error: Storage or execution errors
*/
func (service *Service) ListJobs(context context.Context, ownerID string, limit, offset int) ([]*Job, int, error) {
	return service.jobRepo.ListByOwner(context, ownerID, limit, offset)
}

/*
GetJob retrieves a single owned posting by its ID.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - ownerID: string

Returns:
  - *Job: The hydrated posting
  - error: apperr.NotFound when missing, deleted, or not owned by the caller
*/
func (service *Service) GetJob(context context.Context, id, ownerID string) (*Job, error) {
	return service.jobRepo.FindByID(context, id, ownerID)
}

/*
UpdateJob validates and overwrites an owned posting's writable fields.

Description: A full replacement, not a patch — omitted optional fields are
cleared, matching how the posting form submits its complete state.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - ownerID: string
  - input: Input

Returns:
  - *Job: The updated posting
  - error: Validation errors, or apperr.NotFound for unowned/missing rows
*/
func (service *Service) UpdateJob(context context.Context, id, ownerID string, input Input) (*Job, error) {

	if err := validateInput(&input); err != nil {
		return nil, err
	}

	job := &Job{
		ID:              id,
		Title:           input.Title,
		Tags:            input.Tags,
		JobRole:         input.JobRole,
		MinSalary:       input.MinSalary,
		MaxSalary:       input.MaxSalary,
		SalaryType:      input.SalaryType,
		EducationLevel:  input.EducationLevel,
		ExperienceLevel: input.ExperienceLevel,
		JobType:         input.JobType,
		JobLevel:        input.JobLevel,
		ExpirationDate:  input.ExpirationDate,
		Country:         input.Country,
		City:            input.City,
		FullyRemote:     input.FullyRemote,
		Description:     input.Description,
		CreatedBy:       ownerID,
	}

	if err := service.jobRepo.Update(context, job); err != nil {
		return nil, err
	}

	// Re-read so the response carries authoritative timestamps.
	return service.jobRepo.FindByID(context, id, ownerID)
}

/*
DeleteJob soft-deletes an owned posting.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - ownerID: string

Returns:
  - error: apperr.NotFound when no live owned posting matches
*/
func (service *Service) DeleteJob(context context.Context, id, ownerID string) error {
	if err := service.jobRepo.SoftDelete(context, id, ownerID); err != nil {
		return err
	}

	service.logger.Info("job_deleted",
		slog.String("job_id", id),
		slog.String("owner_id", ownerID),
	)

	return nil
}
