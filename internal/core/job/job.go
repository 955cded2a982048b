// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

/*
Package job implements the employer-facing job posting catalogue.

Postings are strictly scoped to their creator: every read and write filters by
the owning employer ID resolved from the access token, so one employer can
never see or touch another employer's postings.

Deletion is soft. A deleted posting keeps its row with deletedat set and
disappears from all listings.
*/
package job

import "time"

// # Domain Entities

// Job represents a single employer job posting.
//
// Optional attributes are pointers so "not provided" survives round-trips
// through the API and the database as NULL rather than a zero value.
type Job struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Tags            []string   `json:"tags"`
	JobRole         string     `json:"job_role"`
	MinSalary       *float64   `json:"min_salary,omitempty"`
	MaxSalary       *float64   `json:"max_salary,omitempty"`
	SalaryType      *string    `json:"salary_type,omitempty"`
	EducationLevel  *string    `json:"education_level,omitempty"`
	ExperienceLevel *string    `json:"experience_level,omitempty"`
	JobType         *string    `json:"job_type,omitempty"`
	JobLevel        *string    `json:"job_level,omitempty"`
	ExpirationDate  *time.Time `json:"expiration_date,omitempty"`
	Country         *string    `json:"country,omitempty"`
	City            *string    `json:"city,omitempty"`
	FullyRemote     bool       `json:"fully_remote"`
	Description     string     `json:"description"`
	CreatedBy       string     `json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeletedAt       *time.Time `json:"-"`
}
