// Package errors renders RFC 7807 problem responses for the DevCars HTTP API.
package errors

import (
	"fmt"
	"net/http"
)

// Kind classifies a failure by the response it produces.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindBadRequest
	KindConflict
)

type kindInfo struct {
	slug   string
	title  string
	status int
}

var kinds = map[Kind]kindInfo{
	KindInternal:   {"internal-error", "Internal Server Error", http.StatusInternalServerError},
	KindNotFound:   {"not-found", "Resource Not Found", http.StatusNotFound},
	KindValidation: {"validation-error", "Validation Error", http.StatusBadRequest},
	KindBadRequest: {"bad-request", "Bad Request", http.StatusBadRequest},
	KindConflict:   {"conflict", "Conflict", http.StatusConflict},
}

// ProblemTypePrefix roots the relative problem type URIs.
const ProblemTypePrefix = "/problems/"

// Status is the HTTP status code for the kind.
func (k Kind) Status() int {
	return info(k).status
}

// TypeURI is the relative problem type for the kind.
func (k Kind) TypeURI() string {
	return ProblemTypePrefix + info(k).slug
}

func info(k Kind) kindInfo {
	if i, ok := kinds[k]; ok {
		return i
	}
	return kinds[KindInternal]
}

// ProblemDetail is the application/problem+json body.
type ProblemDetail struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail,omitempty"`
	Instance   string         `json:"instance,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// NewProblem builds the problem for kind with a human-readable detail.
func NewProblem(kind Kind, detail string) ProblemDetail {
	i := info(kind)
	return ProblemDetail{
		Type:   kind.TypeURI(),
		Title:  i.title,
		Status: i.status,
		Detail: detail,
	}
}

func (p ProblemDetail) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s: %s", p.Title, p.Detail)
	}
	return p.Title
}

// WithExtension returns a copy carrying an extra member.
func (p ProblemDetail) WithExtension(key string, value any) ProblemDetail {
	ext := make(map[string]any, len(p.Extensions)+1)
	for k, v := range p.Extensions {
		ext[k] = v
	}
	ext[key] = value
	p.Extensions = ext
	return p
}
