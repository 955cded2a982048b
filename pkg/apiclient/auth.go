// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

package apiclient

import (
	"context"
	"net/http"
)

// # Session Operations

// SignupInput carries the fields required to register a new employer.
type SignupInput struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
Signup registers a new employer account.

Registration does not log the caller in; call [Client.Login] afterwards.

Parameters:
  - context: context.Context
  - input: SignupInput

Returns:
  - *User: The created account
  - error: *APIError with 400 on validation failure, 409 on identity conflicts
*/
func (client *Client) Signup(context context.Context, input SignupInput) (*User, error) {
	var result struct {
		User *User `json:"user"`
	}

	if err := client.do(context, http.MethodPost, "/api/auth/signup", input, &result, nil); err != nil {
		return nil, err
	}

	return result.User, nil
}

/*
Login authenticates and establishes a session.

On success the access token is held in memory and the refresh token lands in
the cookie jar; subsequent calls authenticate automatically.

Parameters:
  - context: context.Context
  - email: string
  - password: string

Returns:
  - *User: The authenticated account
  - error: *APIError with 401 on invalid credentials
*/
func (client *Client) Login(context context.Context, email, password string) (*User, error) {
	input := map[string]string{
		"email":    email,
		"password": password,
	}

	var result struct {
		AccessToken string `json:"access_token"`
		User        *User  `json:"user"`
	}

	if err := client.do(context, http.MethodPost, "/api/auth/login", input, &result, nil); err != nil {
		return nil, err
	}

	client.setToken(result.AccessToken)
	return result.User, nil
}

/*
Logout terminates the session.

The in-memory access token is dropped unconditionally, even if the server
call fails — a client that asked to log out must not keep authenticating.

Parameters:
  - context: context.Context

Returns:
  - error: Transport failures only; the endpoint itself always succeeds
*/
func (client *Client) Logout(context context.Context) error {
	err := client.do(context, http.MethodPost, "/api/auth/logout", nil, nil, nil)
	client.setToken("")
	return err
}

/*
Me returns the authenticated employer's account record.

Parameters:
  - context: context.Context

Returns:
  - *User: The current account
  - error: *APIError with 401 when logged out, 404 when the account is gone
*/
func (client *Client) Me(context context.Context) (*User, error) {
	var result struct {
		User *User `json:"user"`
	}

	if err := client.do(context, http.MethodGet, "/api/auth/me", nil, &result, nil); err != nil {
		return nil, err
	}

	return result.User, nil
}
