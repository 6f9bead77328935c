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

// Package ghcli wraps the GitHub CLI (gh) as a GraphQL transport.
// Authentication, HTTP, TLS, and rate limiting are all the CLI's problem;
// this package only verifies that an authenticated session exists and pipes
// GraphQL payloads through `gh api graphql`.
//
// The package includes:
//   - A Client interface for auth verification and query execution
//   - A CLIClient implementation backed by os/exec
//   - A MockClient for testing
//
// Basic usage:
//
//	client := ghcli.NewCLIClient("gh")
//	if err := client.VerifyAuth(ctx); err != nil {
//	    // Handle missing/unauthenticated gh
//	}
//	data, err := client.Query(ctx, queryDoc, map[string]any{"org": "conda"})
//
// Each call spawns one gh process and blocks until it exits. There are no
// retries and no timeouts; a hung gh process hangs the caller.
package ghcli
