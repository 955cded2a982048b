// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// # Posting Operations

/*
CreateJob publishes a new posting owned by the current session.

Parameters:
  - context: context.Context
  - input: JobInput

Returns:
  - *Job: The created posting
  - error: *APIError with 400 on validation failure, 401 when logged out
*/
func (client *Client) CreateJob(context context.Context, input JobInput) (*Job, error) {
	var result struct {
		Job *Job `json:"job"`
	}

	if err := client.do(context, http.MethodPost, "/api/jobs", input, &result, nil); err != nil {
		return nil, err
	}

	return result.Job, nil
}

/*
ListJobs retrieves the session employer's live postings, newest first.

Parameters:
  - context: context.Context
  - page: int (1-indexed; values < 1 use the server default)
  - limit: int (values < 1 use the server default)

Returns:
  - []*Job: The requested page of postings
  - PageMeta: Pagination metadata
  - error: *APIError with 401 when logged out
*/
func (client *Client) ListJobs(context context.Context, page, limit int) ([]*Job, PageMeta, error) {
	path := "/api/jobs"

	query := url.Values{}
	if page > 0 {
		query.Set("page", fmt.Sprint(page))
	}
	if limit > 0 {
		query.Set("limit", fmt.Sprint(limit))
	}
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var result struct {
		Jobs []*Job `json:"jobs"`
	}
	var meta PageMeta

	if err := client.do(context, http.MethodGet, path, nil, &result, &meta); err != nil {
		return nil, PageMeta{}, err
	}

	return result.Jobs, meta, nil
}

/*
GetJob retrieves one of the session employer's postings by ID.

Returns:
  - *Job: The posting
  - error: *APIError with 404 when absent, deleted, or owned by someone else
*/
func (client *Client) GetJob(context context.Context, id string) (*Job, error) {
	var result struct {
		Job *Job `json:"job"`
	}

	if err := client.do(context, http.MethodGet, "/api/jobs/"+url.PathEscape(id), nil, &result, nil); err != nil {
		return nil, err
	}

	return result.Job, nil
}

/*
UpdateJob replaces the writable fields of an owned posting.

Returns:
  - *Job: The updated posting
  - error: *APIError with 400, 401, or 404
*/
func (client *Client) UpdateJob(context context.Context, id string, input JobInput) (*Job, error) {
	var result struct {
		Job *Job `json:"job"`
	}

	if err := client.do(context, http.MethodPut, "/api/jobs/"+url.PathEscape(id), input, &result, nil); err != nil {
		return nil, err
	}

	return result.Job, nil
}

/*
DeleteJob soft-deletes an owned posting.

Returns:
  - error: *APIError with 404 when no live owned posting matches
*/
func (client *Client) DeleteJob(context context.Context, id string) error {
	return client.do(context, http.MethodDelete, "/api/jobs/"+url.PathEscape(id), nil, nil, nil)
}
