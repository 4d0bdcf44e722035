package github

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v66/github"
)

// ErrorType represents different categories of GitHub API errors
type ErrorType string

const (
	ErrorTypeAuth       ErrorType = "authentication"
	ErrorTypePermission ErrorType = "permission"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeEmptyRepo  ErrorType = "empty_repository"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// APIError represents a structured error from GitHub operations. There is no
// retry machinery behind it: every failure surfaces immediately and the
// operator re-runs the tool after fixing the cause.
type APIError struct {
	Type     ErrorType `json:"type"`
	Message  string    `json:"message"`
	Cause    error     `json:"-"`
	Resource string    `json:"resource,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Resource, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *APIError) Unwrap() error {
	return e.Cause
}

// WrapAPIError wraps a GitHub API error into our structured error type
func WrapAPIError(err error, resource string) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Resource == "" {
			apiErr.Resource = resource
		}
		return apiErr
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		return parseErrorResponse(ghErr, resource)
	}

	return &APIError{
		Type:     ErrorTypeUnknown,
		Message:  err.Error(),
		Cause:    err,
		Resource: resource,
	}
}

// parseErrorResponse maps GitHub API error responses onto the taxonomy
func parseErrorResponse(ghErr *github.ErrorResponse, resource string) *APIError {
	baseErr := &APIError{
		Resource: resource,
		Cause:    ghErr,
	}

	switch ghErr.Response.StatusCode {
	case http.StatusUnauthorized:
		baseErr.Type = ErrorTypeAuth
		baseErr.Message = "authentication failed, check your GitHub token or credentials"

	case http.StatusForbidden:
		baseErr.Type = ErrorTypePermission
		baseErr.Message = "insufficient permissions, the token may be missing the repo scope"

	case http.StatusNotFound:
		baseErr.Type = ErrorTypeNotFound
		baseErr.Message = "resource not found"

	case http.StatusConflict:
		// ListCommits on a repository with no history answers 409. This is an
		// expected condition, not a failure; HasCommits folds it into its
		// boolean result and callers never see this type unless they bypass it.
		if strings.Contains(ghErr.Message, "empty") {
			baseErr.Type = ErrorTypeEmptyRepo
			baseErr.Message = "repository has no commit history"
		} else {
			baseErr.Type = ErrorTypeUnknown
			baseErr.Message = ghErr.Message
		}

	case http.StatusUnprocessableEntity:
		baseErr.Type = ErrorTypeValidation
		baseErr.Message = "validation failed"
		if len(ghErr.Errors) > 0 {
			var details []string
			for _, e := range ghErr.Errors {
				if e.Field != "" {
					details = append(details, fmt.Sprintf("%s: %s", e.Field, e.Message))
				} else {
					details = append(details, e.Message)
				}
			}
			baseErr.Message = fmt.Sprintf("validation failed: %s", strings.Join(details, "; "))
		}

	default:
		baseErr.Type = ErrorTypeUnknown
		baseErr.Message = ghErr.Message
	}

	return baseErr
}

// IsNotFound reports whether err signals that the requested resource does not
// exist on the remote service.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Type == ErrorTypeNotFound
}

// IsEmptyRepository reports whether err signals the remote "empty repository"
// condition on a history check.
func IsEmptyRepository(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Type == ErrorTypeEmptyRepo
}
