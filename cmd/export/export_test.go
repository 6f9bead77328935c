package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirseerhq/sirseer-export/internal/config"
	exporterrors "github.com/sirseerhq/sirseer-export/internal/errors"
	"github.com/sirseerhq/sirseer-export/internal/ghcli"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.OutputFile = filepath.Join(t.TempDir(), "out.csv")
	return cfg
}

func TestExportProject(t *testing.T) {
	// One page: an epic with story points, a plain story, and a draft
	// item that must not produce a row.
	page := json.RawMessage(`{
		"organization": {
			"projectV2": {
				"items": {
					"pageInfo": {"hasNextPage": false, "endCursor": ""},
					"nodes": [
						{
							"id": "A",
							"fieldValues": {"nodes": [
								{"number": 5, "field": {"name": "Story Points"}}
							]},
							"content": {
								"number": 10,
								"title": "Big feature",
								"body": "line1\nline2",
								"url": "https://github.com/conda/conda/issues/10",
								"labels": {"nodes": [{"name": "Epic"}]}
							}
						},
						{"id": "B", "fieldValues": {"nodes": []}, "content": {}},
						{
							"id": "C",
							"fieldValues": {"nodes": []},
							"content": {
								"number": 11,
								"title": "Small fix",
								"body": "",
								"url": "https://github.com/conda/conda/pull/11",
								"labels": {"nodes": [{"name": "bug"}]}
							}
						}
					]
				}
			}
		}
	}`)

	mock := ghcli.NewMockClient(ghcli.WithResponses(page))
	cfg := testConfig(t)

	if err := exportProject(context.Background(), mock, cfg); err != nil {
		t.Fatalf("exportProject failed: %v", err)
	}

	data, err := os.ReadFile(cfg.OutputFile)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	want := "Epic,[5] Big feature,10,https://github.com/conda/conda/issues/10,line1 line2,\n" +
		"Story,Small fix,11,https://github.com/conda/conda/pull/11,,\n"
	if string(data) != want {
		t.Errorf("csv mismatch:\ngot:  %q\nwant: %q", string(data), want)
	}
}

func TestExportProject_FetchFailureWritesNoFile(t *testing.T) {
	mock := ghcli.NewMockClient(
		ghcli.WithResponses(json.RawMessage(`{}`)),
		ghcli.WithFailAt(1),
	)
	cfg := testConfig(t)

	err := exportProject(context.Background(), mock, cfg)
	if !errors.Is(err, exporterrors.ErrCommandFailed) {
		t.Fatalf("expected ErrCommandFailed, got %v", err)
	}

	if _, statErr := os.Stat(cfg.OutputFile); !os.IsNotExist(statErr) {
		t.Errorf("output file must not exist after a failed fetch")
	}
}

func TestExportProject_AuthFailureSkipsFetch(t *testing.T) {
	mock := ghcli.NewMockClient(ghcli.WithVerifyError(exporterrors.ErrNotAuthenticated))
	cfg := testConfig(t)

	err := exportProject(context.Background(), mock, cfg)
	if !errors.Is(err, exporterrors.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if mock.CallCount != 0 {
		t.Errorf("no query may run before auth verification, got %d calls", mock.CallCount)
	}
	if _, statErr := os.Stat(cfg.OutputFile); !os.IsNotExist(statErr) {
		t.Errorf("output file must not exist after an auth failure")
	}
}

func TestExportProject_GraphQLErrorAborts(t *testing.T) {
	mock := ghcli.NewMockClient(ghcli.WithQueryError(
		fmt.Errorf("GraphQL errors: [{\"message\": \"boom\"}]: %w", exporterrors.ErrGraphQL),
	))
	cfg := testConfig(t)

	err := exportProject(context.Background(), mock, cfg)
	if !errors.Is(err, exporterrors.ErrGraphQL) {
		t.Fatalf("expected ErrGraphQL, got %v", err)
	}
	if _, statErr := os.Stat(cfg.OutputFile); !os.IsNotExist(statErr) {
		t.Errorf("output file must not exist after a GraphQL failure")
	}
}
