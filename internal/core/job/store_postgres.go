// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hirelane/hirelane/internal/platform/apperr"
	"github.com/hirelane/hirelane/internal/platform/database/schema"
)

// # PostgreSQL Repository

// jobRepository implements the [Repository] interface using pgx.
type jobRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed job store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &jobRepository{pool: pool}
}

/*
Create persists a new job posting into the core.job table.

Description: Tags are stored as a native TEXT[] column, avoiding a junction
table for what is purely display metadata.

Parameters:
  - context: context.Context
  - job: *Job

Returns:
  - error: Execution errors
*/
func (repository *jobRepository) Create(context context.Context, job *Job) error {

	query := fmt.Sprintf(`
		INSERT INTO %s (
			%s, %s, %s, %s, %s, %s, %s, %s, %s,
			%s, %s, %s, %s, %s, %s, %s, %s
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15, $16, $17
		)
		RETURNING %s, %s
	`,
		schema.CoreJob.Table,
		schema.CoreJob.ID, schema.CoreJob.Title, schema.CoreJob.Tags, schema.CoreJob.JobRole,
		schema.CoreJob.MinSalary, schema.CoreJob.MaxSalary, schema.CoreJob.SalaryType,
		schema.CoreJob.EducationLevel, schema.CoreJob.ExperienceLevel,
		schema.CoreJob.JobType, schema.CoreJob.JobLevel, schema.CoreJob.ExpirationDate,
		schema.CoreJob.Country, schema.CoreJob.City, schema.CoreJob.FullyRemote,
		schema.CoreJob.Description, schema.CoreJob.CreatedBy,
		schema.CoreJob.CreatedAt, schema.CoreJob.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		job.ID,
		job.Title,
		job.Tags,
		job.JobRole,
		job.MinSalary,
		job.MaxSalary,
		job.SalaryType,
		job.EducationLevel,
		job.ExperienceLevel,
		job.JobType,
		job.JobLevel,
		job.ExpirationDate,
		job.Country,
		job.City,
		job.FullyRemote,
		job.Description,
		job.CreatedBy,
	).Scan(&job.CreatedAt, &job.UpdatedAt)

	if err != nil {
		return fmt.Errorf("postgres: failed to create job: %w", err)
	}

	return nil
}

/*
ListByOwner retrieves live postings created by a specific employer.

Description: Uses a COUNT(*) OVER() window to return the total match count
without a second round-trip. Ordered newest first.

Parameters:
  - context: context.Context
  - ownerID: string
  - limit: int
  - offset: int

Returns:
  - []*Job: Slice of postings
  - int: Total matching postings
*/
func (repository *jobRepository) ListByOwner(context context.Context, ownerID string, limit, offset int) ([]*Job, int, error) {

	query := fmt.Sprintf(`
		SELECT
			%s, %s, %s, %s, %s, %s, %s, %s, %s, %s,
			%s, %s, %s, %s, %s, %s, %s, %s, %s,
			COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s = $1 AND %s IS NULL
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3
	`,
		schema.CoreJob.ID, schema.CoreJob.Title, schema.CoreJob.Tags, schema.CoreJob.JobRole,
		schema.CoreJob.MinSalary, schema.CoreJob.MaxSalary, schema.CoreJob.SalaryType,
		schema.CoreJob.EducationLevel, schema.CoreJob.ExperienceLevel, schema.CoreJob.JobType,
		schema.CoreJob.JobLevel, schema.CoreJob.ExpirationDate, schema.CoreJob.Country,
		schema.CoreJob.City, schema.CoreJob.FullyRemote, schema.CoreJob.Description,
		schema.CoreJob.CreatedBy, schema.CoreJob.CreatedAt, schema.CoreJob.UpdatedAt,
		schema.CoreJob.Table,
		schema.CoreJob.CreatedBy, schema.CoreJob.DeletedAt,
		schema.CoreJob.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*Job
	var totalCount int

	for rows.Next() {
		var job Job
		err := rows.Scan(
			&job.ID,
			&job.Title,
			&job.Tags,
			&job.JobRole,
			&job.MinSalary,
			&job.MaxSalary,
			&job.SalaryType,
			&job.EducationLevel,
			&job.ExperienceLevel,
			&job.JobType,
			&job.JobLevel,
			&job.ExpirationDate,
			&job.Country,
			&job.City,
			&job.FullyRemote,
			&job.Description,
			&job.CreatedBy,
			&job.CreatedAt,
			&job.UpdatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan job: %w", err)
		}

		if job.Tags == nil {
			job.Tags = []string{}
		}
		jobs = append(jobs, &job)
	}

	return jobs, totalCount, nil
}

/*
FindByID returns a single live posting scoped to its owner.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - ownerID: string (UUID)

Returns:
  - *Job: Hydrated posting
  - error: apperr.NotFound on absent, deleted, or foreign rows
*/
func (repository *jobRepository) FindByID(context context.Context, id, ownerID string) (*Job, error) {

	query := fmt.Sprintf(`
		SELECT
			%s, %s, %s, %s, %s, %s, %s, %s, %s, %s,
			%s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2 AND %s IS NULL
	`,
		schema.CoreJob.ID, schema.CoreJob.Title, schema.CoreJob.Tags, schema.CoreJob.JobRole,
		schema.CoreJob.MinSalary, schema.CoreJob.MaxSalary, schema.CoreJob.SalaryType,
		schema.CoreJob.EducationLevel, schema.CoreJob.ExperienceLevel, schema.CoreJob.JobType,
		schema.CoreJob.JobLevel, schema.CoreJob.ExpirationDate, schema.CoreJob.Country,
		schema.CoreJob.City, schema.CoreJob.FullyRemote, schema.CoreJob.Description,
		schema.CoreJob.CreatedBy, schema.CoreJob.CreatedAt, schema.CoreJob.UpdatedAt,
		schema.CoreJob.Table,
		schema.CoreJob.ID, schema.CoreJob.CreatedBy, schema.CoreJob.DeletedAt,
	)

	var job Job
	err := repository.pool.QueryRow(context, query, id, ownerID).Scan(
		&job.ID,
		&job.Title,
		&job.Tags,
		&job.JobRole,
		&job.MinSalary,
		&job.MaxSalary,
		&job.SalaryType,
		&job.EducationLevel,
		&job.ExperienceLevel,
		&job.JobType,
		&job.JobLevel,
		&job.ExpirationDate,
		&job.Country,
		&job.City,
		&job.FullyRemote,
		&job.Description,
		&job.CreatedBy,
		&job.CreatedAt,
		&job.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Job")
		}
		return nil, fmt.Errorf("postgres: failed to find job by id: %w", err)
	}

	if job.Tags == nil {
		job.Tags = []string{}
	}
	return &job, nil
}

/*
Update overwrites the writable fields of a live, owned posting.

Parameters:
  - context: context.Context
  - job: *Job (ID and CreatedBy select the target row)

Returns:
  - error: apperr.NotFound if no live owned row matched, or execution errors
*/
func (repository *jobRepository) Update(context context.Context, job *Job) error {

	query := fmt.Sprintf(`
		UPDATE %s
		SET
			%s = $1, %s = $2, %s = $3, %s = $4, %s = $5,
			%s = $6, %s = $7, %s = $8, %s = $9, %s = $10,
			%s = $11, %s = $12, %s = $13, %s = $14, %s = $15,
			%s = NOW()
		WHERE %s = $16 AND %s = $17 AND %s IS NULL
	`,
		schema.CoreJob.Table,
		schema.CoreJob.Title, schema.CoreJob.Tags, schema.CoreJob.JobRole,
		schema.CoreJob.MinSalary, schema.CoreJob.MaxSalary,
		schema.CoreJob.SalaryType, schema.CoreJob.EducationLevel, schema.CoreJob.ExperienceLevel,
		schema.CoreJob.JobType, schema.CoreJob.JobLevel,
		schema.CoreJob.ExpirationDate, schema.CoreJob.Country, schema.CoreJob.City,
		schema.CoreJob.FullyRemote, schema.CoreJob.Description,
		schema.CoreJob.UpdatedAt,
		schema.CoreJob.ID, schema.CoreJob.CreatedBy, schema.CoreJob.DeletedAt,
	)

	result, err := repository.pool.Exec(context, query,
		job.Title,
		job.Tags,
		job.JobRole,
		job.MinSalary,
		job.MaxSalary,
		job.SalaryType,
		job.EducationLevel,
		job.ExperienceLevel,
		job.JobType,
		job.JobLevel,
		job.ExpirationDate,
		job.Country,
		job.City,
		job.FullyRemote,
		job.Description,
		job.ID,
		job.CreatedBy,
	)

	if err != nil {
		return fmt.Errorf("postgres: failed to update job: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Job")
	}

	return nil
}

/*
SoftDelete hides an owned posting by stamping deletedat.
*/
func (repository *jobRepository) SoftDelete(context context.Context, id, ownerID string) error {

	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s = $2 AND %s IS NULL`,
		schema.CoreJob.Table, schema.CoreJob.DeletedAt,
		schema.CoreJob.ID, schema.CoreJob.CreatedBy, schema.CoreJob.DeletedAt)

	result, err := repository.pool.Exec(context, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete job: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Job")
	}

	return nil
}
