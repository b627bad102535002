package errors

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the media type for problem responses.
const ContentTypeProblemJSON = "application/problem+json"

const internalDetail = "the request could not be completed"

// Rule maps a set of sentinel errors onto a response kind.
type Rule struct {
	Kind   Kind
	Errors []error
}

// Matches reports whether err wraps any of the rule's sentinels.
func (r Rule) Matches(err error) bool {
	for _, target := range r.Errors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Responder writes problem responses for errors returned by application services.
// Rules are evaluated in order; the first match wins.
type Responder struct {
	baseURI          string
	bodylessNotFound bool
	rules            []Rule
	logger           *slog.Logger
}

type Option func(*Responder)

// WithBaseURI makes problem types absolute.
func WithBaseURI(uri string) Option {
	return func(r *Responder) { r.baseURI = strings.TrimSuffix(uri, "/") }
}

// WithBodylessNotFound answers not-found outcomes with a bare 404.
func WithBodylessNotFound() Option {
	return func(r *Responder) { r.bodylessNotFound = true }
}

func WithRules(rules ...Rule) Option {
	return func(r *Responder) { r.rules = append(r.rules, rules...) }
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Responder) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewResponder(opts ...Option) *Responder {
	r := &Responder{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Classify returns the kind of the first rule matching err.
func (r *Responder) Classify(err error) (Kind, bool) {
	for _, rule := range r.rules {
		if rule.Matches(err) {
			return rule.Kind, true
		}
	}
	return KindInternal, false
}

// Respond writes problem as application/problem+json.
func (r *Responder) Respond(c *gin.Context, problem ProblemDetail) {
	if r.bodylessNotFound && problem.Status == http.StatusNotFound {
		c.Status(http.StatusNotFound)
		return
	}
	if r.baseURI != "" && strings.HasPrefix(problem.Type, "/") {
		problem.Type = r.baseURI + problem.Type
	}
	if problem.Instance == "" && c.Request != nil {
		problem.Instance = c.Request.URL.Path
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.JSON(problem.Status, problem)
}

// RespondError classifies err and writes the matching problem.
// Unclassified errors are logged and answered with an opaque 500.
func (r *Responder) RespondError(c *gin.Context, err error) {
	var problem ProblemDetail
	if errors.As(err, &problem) {
		r.Respond(c, problem)
		return
	}
	kind, ok := r.Classify(err)
	if !ok {
		r.logger.ErrorContext(c.Request.Context(), "unhandled request error",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		r.Respond(c, NewProblem(KindInternal, internalDetail))
		return
	}
	r.Respond(c, NewProblem(kind, err.Error()))
}

// Problem writes a problem of kind with detail.
func (r *Responder) Problem(c *gin.Context, kind Kind, detail string) {
	r.Respond(c, NewProblem(kind, detail))
}
