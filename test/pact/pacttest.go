//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "devcars-api"
	ConsumerName = "devcars-portal"

	StateCarsBaseline     = "no cars registered"
	StateCarExists        = "car with id 1 exists"
	StateCarMissing       = "no car with id 404"
	StateCustomerHasOrder = "customer 1 ordered car 1 with insurance"
)

const (
	ExistingCarID int64 = 1
	MissingCarID  int64 = 404

	ExistingCustomerID int64 = 1
	ExistingOrderID    int64 = 1
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the dealership portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleCarPayload is the registration body used across interactions.
func ExampleCarPayload() map[string]any {
	return map[string]any{
		"brand":           "Honda",
		"model":           "Civic",
		"vinCode":         "ABC123",
		"year":            2021,
		"price":           120000,
		"color":           "Silver",
		"productionModel": "2021-01-01",
	}
}

// ExampleCarDetails is the detail shape the provider returns for ExampleCarPayload.
func ExampleCarDetails() map[string]any {
	return map[string]any{
		"id":             ExistingCarID,
		"brand":          "Honda",
		"model":          "Civic",
		"vinCode":        "ABC123",
		"year":           2021,
		"price":          120000,
		"color":          "Silver",
		"productionDate": "2021-01-01",
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
