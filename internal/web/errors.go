package web

import "errors"

// Sentinel errors.
var (
	ErrMissingDependency = errors.New("missing server dependency")
	ErrTemplates         = errors.New("parsing templates failed")
)

// Error codes returned in JSON error bodies.
const (
	codeBadRequest = "bad_request"
	codeNotFound   = "not_found"
	codeInternal   = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
