// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: dev@hirelane.io

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.

The identity helpers below are the single collaborator contract between the
authentication core and the rest of the API: domain handlers resolve the
calling user's ID from the request context and never trust an ID supplied in
a request body.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hirelane/hirelane/internal/platform/apperr"
	"github.com/hirelane/hirelane/internal/platform/ctxutil"
	"github.com/hirelane/hirelane/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
UserID extracts the authenticated user's ID from the request context.

Returns an empty string if the request is anonymous.
*/
func UserID(request *http.Request) string {
	return ctxutil.GetUserID(request.Context())
}

/*
RequiredUserID returns the ID of the currently logged-in user.

Returns:
  - string: User UUID
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredUserID(request *http.Request) (string, error) {

	// Get the authenticated subject
	userID := ctxutil.GetUserID(request.Context())

	// If the user is not authenticated, return an error
	if userID == "" {
		return "", apperr.Unauthorized("Not authenticated")
	}

	return userID, nil
}
