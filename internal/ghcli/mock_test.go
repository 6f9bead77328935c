package ghcli

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	exporterrors "github.com/sirseerhq/sirseer-export/internal/errors"
)

func TestMockClient_Responses(t *testing.T) {
	mock := NewMockClient(WithResponses(
		json.RawMessage(`{"page": 1}`),
		json.RawMessage(`{"page": 2}`),
	))

	ctx := context.Background()

	first, err := mock.Query(ctx, "q", map[string]any{"cursor": nil})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first) != `{"page": 1}` {
		t.Errorf("first response = %s", first)
	}

	second, err := mock.Query(ctx, "q", map[string]any{"cursor": "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second) != `{"page": 2}` {
		t.Errorf("second response = %s", second)
	}

	if mock.CallCount != 2 {
		t.Errorf("CallCount = %d, want 2", mock.CallCount)
	}
	if mock.Variables[1]["cursor"] != "abc" {
		t.Errorf("recorded cursor = %v, want abc", mock.Variables[1]["cursor"])
	}

	// Exhausted mock should fail rather than repeat data.
	if _, err := mock.Query(ctx, "q", nil); err == nil {
		t.Error("expected error after responses exhausted")
	}
}

func TestMockClient_FailAt(t *testing.T) {
	mock := NewMockClient(
		WithResponses(json.RawMessage(`{}`), json.RawMessage(`{}`)),
		WithFailAt(2),
	)

	ctx := context.Background()

	if _, err := mock.Query(ctx, "q", nil); err != nil {
		t.Fatalf("first call should succeed: %v", err)
	}
	_, err := mock.Query(ctx, "q", nil)
	if !errors.Is(err, exporterrors.ErrCommandFailed) {
		t.Fatalf("second call should fail with ErrCommandFailed, got %v", err)
	}
}

func TestMockClient_VerifyError(t *testing.T) {
	mock := NewMockClient(WithVerifyError(exporterrors.ErrNotAuthenticated))

	if err := mock.VerifyAuth(context.Background()); !errors.Is(err, exporterrors.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}
