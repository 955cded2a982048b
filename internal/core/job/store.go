// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

package job

import "context"

// # Job Data Access

// Repository defines the data access contract for job postings.
//
// Every method that touches an existing posting takes the owner ID and scopes
// the query to it. Ownership enforcement lives in the store, not in handler
// code that could forget to check.
type Repository interface {

	/*
		Create persists a new job posting.

		Parameters:
		  - context: context.Context
		  - job: *Job

		Returns:
		  - error: Storage failure
	*/
	Create(context context.Context, job *Job) error

	/*
		ListByOwner returns live postings created by the given employer,
		newest first.

		Parameters:
		  - context: context.Context
		  - ownerID: string (Employer UUID)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Job: List of hydrated postings
		  - int: Total matching postings
		  - error: Storage failures
	*/
	ListByOwner(context context.Context, ownerID string, limit, offset int) ([]*Job, int, error)

	/*
		FindByID returns the live posting with the given ID, scoped to owner.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)
		  - ownerID: string (Employer UUID)

		Returns:
		  - *Job: Hydrated posting
		  - error: apperr.NotFound if missing, deleted, or owned by someone else
	*/
	FindByID(context context.Context, id, ownerID string) (*Job, error)

	/*
		Update overwrites the mutable fields of an owned posting.

		Parameters:
		  - context: context.Context
		  - job: *Job (ID and CreatedBy select the row)

		Returns:
		  - error: apperr.NotFound if no owned row matches, or update failure
	*/
	Update(context context.Context, job *Job) error

	/*
		SoftDelete marks an owned posting as deleted without physical removal.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)
		  - ownerID: string (Employer UUID)

		Returns:
		  - error: apperr.NotFound if no live owned row matches
	*/
	SoftDelete(context context.Context, id, ownerID string) error
}
