// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

package job_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelane/hirelane/internal/core/job"
	"github.com/hirelane/hirelane/internal/platform/apperr"
	"github.com/hirelane/hirelane/pkg/pointer"
)

// # Test Doubles

// memoryJobRepository is an in-memory Repository honoring ownership scoping
// and soft deletion, mirroring the SQL filters.
type memoryJobRepository struct {
	mu   sync.Mutex
	jobs map[string]*job.Job
}

func newMemoryJobRepository() *memoryJobRepository {
	return &memoryJobRepository{jobs: make(map[string]*job.Job)}
}

func (repository *memoryJobRepository) Create(_ context.Context, posting *job.Job) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	posting.CreatedAt = time.Now()
	posting.UpdatedAt = posting.CreatedAt
	copied := *posting
	repository.jobs[posting.ID] = &copied
	return nil
}

func (repository *memoryJobRepository) ListByOwner(_ context.Context, ownerID string, limit, offset int) ([]*job.Job, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var owned []*job.Job
	for _, posting := range repository.jobs {
		if posting.CreatedBy == ownerID && posting.DeletedAt == nil {
			copied := *posting
			owned = append(owned, &copied)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].CreatedAt.After(owned[j].CreatedAt) })

	total := len(owned)
	if offset >= total {
		return []*job.Job{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return owned[offset:end], total, nil
}

func (repository *memoryJobRepository) FindByID(_ context.Context, id, ownerID string) (*job.Job, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	posting, ok := repository.jobs[id]
	if !ok || posting.CreatedBy != ownerID || posting.DeletedAt != nil {
		return nil, apperr.NotFound("Job")
	}
	copied := *posting
	return &copied, nil
}

func (repository *memoryJobRepository) Update(_ context.Context, posting *job.Job) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	existing, ok := repository.jobs[posting.ID]
	if !ok || existing.CreatedBy != posting.CreatedBy || existing.DeletedAt != nil {
		return apperr.NotFound("Job")
	}
	copied := *posting
	copied.CreatedAt = existing.CreatedAt
	copied.UpdatedAt = time.Now()
	repository.jobs[posting.ID] = &copied
	return nil
}

func (repository *memoryJobRepository) SoftDelete(_ context.Context, id, ownerID string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	posting, ok := repository.jobs[id]
	if !ok || posting.CreatedBy != ownerID || posting.DeletedAt != nil {
		return apperr.NotFound("Job")
	}
	now := time.Now()
	posting.DeletedAt = &now
	return nil
}

// # Harness

const (
	testOwnerID = "01890a5d-ac96-774b-bcce-b302099a8057"
	otherUserID = "01890a5d-ac96-774b-bcce-b30209999999"
)

func newTestService(t *testing.T) (*job.Service, *memoryJobRepository) {
	t.Helper()
	repository := newMemoryJobRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return job.NewService(repository, logger), repository
}

func validInput() job.Input {
	return job.Input{
		Title:       "Senior Backend Engineer",
		Tags:        []string{"go", "postgres"},
		JobRole:     "Backend Engineer",
		Description: "Own the platform services.",
		Country:     pointer.To("Netherlands"),
		City:        pointer.To("Amsterdam"),
		MinSalary:   pointer.To(70000.0),
		MaxSalary:   pointer.To(95000.0),
	}
}

// # Creation

/*
TestService_CreateJob verifies a valid posting is persisted with ownership.
*/
func TestService_CreateJob(t *testing.T) {
	service, _ := newTestService(t)

	created, err := service.CreateJob(context.Background(), testOwnerID, validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, testOwnerID, created.CreatedBy)
	assert.Equal(t, "Senior Backend Engineer", created.Title)
	assert.Equal(t, []string{"go", "postgres"}, created.Tags)
	assert.Nil(t, created.DeletedAt)
}

/*
TestService_CreateJob_Validation verifies the mandatory field messages.
*/
func TestService_CreateJob_Validation(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		name        string
		mutate      func(*job.Input)
		wantMessage string
	}{
		{"missing_title", func(input *job.Input) { input.Title = "" }, "Job title is required"},
		{"whitespace_title", func(input *job.Input) { input.Title = "   " }, "Job title is required"},
		{"missing_role", func(input *job.Input) { input.JobRole = "" }, "Job role is required"},
		{"missing_description", func(input *job.Input) { input.Description = "" }, "Job description is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := service.CreateJob(context.Background(), testOwnerID, input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Equal(t, tt.wantMessage, ae.Message)
		})
	}
}

/*
TestService_CreateJob_TagNormalization verifies tag trimming and the
never-nil tags guarantee.
*/
func TestService_CreateJob_TagNormalization(t *testing.T) {
	service, _ := newTestService(t)

	t.Run("trims_and_drops_empties", func(t *testing.T) {
		input := validInput()
		input.Tags = []string{" go ", "", "  ", "remote"}

		created, err := service.CreateJob(context.Background(), testOwnerID, input)
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "remote"}, created.Tags)
	})

	t.Run("nil_tags_become_empty_slice", func(t *testing.T) {
		input := validInput()
		input.Tags = nil

		created, err := service.CreateJob(context.Background(), testOwnerID, input)
		require.NoError(t, err)
		require.NotNil(t, created.Tags)
		assert.Empty(t, created.Tags)
	})
}

// # Listing & Retrieval

/*
TestService_ListJobs verifies ownership scoping, ordering, and totals.
*/
func TestService_ListJobs(t *testing.T) {
	service, _ := newTestService(t)

	for i := 0; i < 3; i++ {
		_, err := service.CreateJob(context.Background(), testOwnerID, validInput())
		require.NoError(t, err)
	}
	_, err := service.CreateJob(context.Background(), otherUserID, validInput())
	require.NoError(t, err)

	jobs, total, err := service.ListJobs(context.Background(), testOwnerID, 2, 0)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.Equal(t, 3, total)

	// Other employers' postings never leak in
	for _, posting := range jobs {
		assert.Equal(t, testOwnerID, posting.CreatedBy)
	}
}

/*
TestService_GetJob verifies cross-owner reads are indistinguishable from misses.
*/
func TestService_GetJob(t *testing.T) {
	service, _ := newTestService(t)

	created, err := service.CreateJob(context.Background(), testOwnerID, validInput())
	require.NoError(t, err)

	t.Run("owner_reads", func(t *testing.T) {
		found, err := service.GetJob(context.Background(), created.ID, testOwnerID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("other_owner_gets_not_found", func(t *testing.T) {
		_, err := service.GetJob(context.Background(), created.ID, otherUserID)
		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "NOT_FOUND", ae.Code)
	})
}

// # Update & Deletion

/*
TestService_UpdateJob verifies the full-replacement semantics.
*/
func TestService_UpdateJob(t *testing.T) {
	service, _ := newTestService(t)

	created, err := service.CreateJob(context.Background(), testOwnerID, validInput())
	require.NoError(t, err)

	updatedInput := validInput()
	updatedInput.Title = "Staff Backend Engineer"
	updatedInput.MinSalary = nil // Omitted optional field clears

	updated, err := service.UpdateJob(context.Background(), created.ID, testOwnerID, updatedInput)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Staff Backend Engineer", updated.Title)
	assert.Nil(t, updated.MinSalary)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	t.Run("validation_applies", func(t *testing.T) {
		bad := validInput()
		bad.JobRole = ""
		_, err := service.UpdateJob(context.Background(), created.ID, testOwnerID, bad)
		require.Error(t, err)
		assert.Equal(t, "Job role is required", apperr.As(err).Message)
	})

	t.Run("other_owner_cannot_update", func(t *testing.T) {
		_, err := service.UpdateJob(context.Background(), created.ID, otherUserID, validInput())
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})
}

/*
TestService_DeleteJob verifies soft deletion hides the posting everywhere.
*/
func TestService_DeleteJob(t *testing.T) {
	service, repository := newTestService(t)

	created, err := service.CreateJob(context.Background(), testOwnerID, validInput())
	require.NoError(t, err)

	require.NoError(t, service.DeleteJob(context.Background(), created.ID, testOwnerID))

	// The row survives physically but is invisible to reads
	repository.mu.Lock()
	stored := repository.jobs[created.ID]
	repository.mu.Unlock()
	require.NotNil(t, stored)
	assert.NotNil(t, stored.DeletedAt)

	_, err = service.GetJob(context.Background(), created.ID, testOwnerID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	_, total, err := service.ListJobs(context.Background(), testOwnerID, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)

	t.Run("second_delete_is_not_found", func(t *testing.T) {
		err := service.DeleteJob(context.Background(), created.ID, testOwnerID)
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})
}
