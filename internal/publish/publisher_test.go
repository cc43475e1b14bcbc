package publish

import (
	"errors"
	"testing"

	"github.com/funvibe/reduct/internal/runner"
)

func TestCollectorSchemaParses(t *testing.T) {
	md, err := publishMethod()
	if err != nil {
		t.Fatalf("publishMethod: %v", err)
	}

	if got := md.GetInputType().GetFullyQualifiedName(); got != "reduct.CaseResult" {
		t.Errorf("input type: want %q, got %q", "reduct.CaseResult", got)
	}
	if got := md.GetOutputType().GetFullyQualifiedName(); got != "reduct.PublishAck" {
		t.Errorf("output type: want %q, got %q", "reduct.PublishAck", got)
	}
}

func TestBuildRequestFields(t *testing.T) {
	md, err := publishMethod()
	if err != nil {
		t.Fatalf("publishMethod: %v", err)
	}

	result := runner.Result{
		Name:     "add",
		Status:   runner.StatusPassed,
		Expected: "5",
		Actual:   "5",
	}
	req := buildRequest(md, "run-1", result)

	tests := []struct {
		field string
		want  interface{}
	}{
		{"run_id", "run-1"},
		{"name", "add"},
		{"passed", true},
		{"expected", "5"},
		{"actual", "5"},
		{"message", ""},
	}
	for _, tt := range tests {
		if got := req.GetFieldByName(tt.field); got != tt.want {
			t.Errorf("field %s: want %v, got %v", tt.field, tt.want, got)
		}
	}
}

func TestBuildRequestCarriesFaultMessage(t *testing.T) {
	md, err := publishMethod()
	if err != nil {
		t.Fatalf("publishMethod: %v", err)
	}

	result := runner.Result{
		Name:   "lopsided",
		Status: runner.StatusFailed,
		Err:    errors.New("wrong arity for Add: want 2 children, got 1"),
	}
	req := buildRequest(md, "run-2", result)

	if got := req.GetFieldByName("passed"); got != false {
		t.Errorf("passed: want false, got %v", got)
	}
	if got := req.GetFieldByName("message"); got != result.Err.Error() {
		t.Errorf("message: want %q, got %v", result.Err.Error(), got)
	}
}
