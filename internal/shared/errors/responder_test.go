package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(path string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	return c, w
}

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) ProblemDetail {
	t.Helper()
	var problem ProblemDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	return problem
}

func TestResponder_WritesProblemJSON(t *testing.T) {
	c, w := newContext("/cars")
	NewResponder(WithBaseURI("https://devcars.example/")).Problem(c, KindValidation, "model too long")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ContentTypeProblemJSON, w.Header().Get("Content-Type"))
	problem := decodeProblem(t, w)
	assert.Equal(t, "https://devcars.example/problems/validation-error", problem.Type)
	assert.Equal(t, "model too long", problem.Detail)
	assert.Equal(t, "/cars", problem.Instance)
}

func TestResponder_BodylessNotFound(t *testing.T) {
	c, w := newContext("/cars/9")
	NewResponder(WithBodylessNotFound()).Problem(c, KindNotFound, "car 9")
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestResponder_RulesInOrder(t *testing.T) {
	soldOut := errors.New("sold out")
	duplicate := errors.New("duplicate")
	responder := NewResponder(
		WithLogger(slog.New(slog.DiscardHandler)),
		WithRules(
			Rule{Kind: KindBadRequest, Errors: []error{duplicate}},
			Rule{Kind: KindConflict, Errors: []error{soldOut, duplicate}},
		),
	)

	c, w := newContext("/customers/1/orders")
	responder.RespondError(c, fmt.Errorf("%w: car 3", soldOut))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "sold out: car 3", decodeProblem(t, w).Detail)

	c, w = newContext("/customers/1/orders")
	responder.RespondError(c, duplicate)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ProblemTypePrefix+"bad-request", decodeProblem(t, w).Type)

	kind, ok := responder.Classify(soldOut)
	assert.True(t, ok)
	assert.Equal(t, KindConflict, kind)
}

func TestResponder_HidesUnclassifiedErrors(t *testing.T) {
	responder := NewResponder(WithLogger(slog.New(slog.DiscardHandler)))
	c, w := newContext("/orders")
	responder.RespondError(c, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	problem := decodeProblem(t, w)
	assert.Equal(t, internalDetail, problem.Detail)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestResponder_PassesProblemErrorsThrough(t *testing.T) {
	responder := NewResponder()
	problem := NewProblem(KindConflict, "car 3 sold").WithExtension("carId", 3)

	c, w := newContext("/cars/3")
	responder.RespondError(c, fmt.Errorf("wrapped: %w", problem))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.EqualValues(t, 3, decodeProblem(t, w).Extensions["carId"])

	_, ok := responder.Classify(problem)
	assert.False(t, ok)
}

func TestKind_UnknownFallsBackToInternal(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, Kind(42).Status())
	assert.Equal(t, "/problems/internal-error", Kind(42).TypeURI())
}
