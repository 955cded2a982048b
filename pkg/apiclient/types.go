// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

package apiclient

import "time"

// # Wire Types

// User is the public employer account record returned by the API.
type User struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Job is a single employer job posting.
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
}

// JobInput carries the writable posting fields for create and update.
type JobInput struct {
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
}

// PageMeta is the pagination metadata attached to list responses.
type PageMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}
