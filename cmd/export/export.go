// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/sirseer-export/internal/config"
	"github.com/sirseerhq/sirseer-export/internal/export"
	"github.com/sirseerhq/sirseer-export/internal/ghcli"
	"github.com/sirseerhq/sirseer-export/internal/output"
	"github.com/sirseerhq/sirseer-export/internal/project"
)

// runExport executes the export with the fixed parameters. No deadline on
// the context: each gh invocation blocks until the process exits.
func runExport(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := ghcli.NewCLIClient(cfg.GHBinary)
	return exportProject(cmd.Context(), client, cfg)
}

// exportProject wires the pipeline: verify auth, fetch every project item,
// flatten, write the CSV. The output file is created only after all pages
// are fetched and all rows are ready, so a failed export leaves no file.
func exportProject(ctx context.Context, client ghcli.Client, cfg *config.Config) error {
	if err := client.VerifyAuth(ctx); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "Using GitHub CLI authentication")

	fmt.Fprintf(os.Stderr, "Fetching project data for %s/projects/%d...\n", cfg.Org, cfg.ProjectNumber)

	fetcher := project.NewFetcher(client)
	items, err := fetcher.FetchAllItems(ctx, cfg.Org, cfg.ProjectNumber)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Found %d items in the project\n", len(items))

	rows := export.Flatten(items)
	fmt.Fprintf(os.Stderr, "Processed %d issues/PRs\n", len(rows))

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Record())
	}

	writer, err := output.NewFileWriter(cfg.OutputFile)
	if err != nil {
		return err
	}

	if err := writer.WriteAll(records); err != nil {
		writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Exported to %s\n", cfg.OutputFile)
	return nil
}
