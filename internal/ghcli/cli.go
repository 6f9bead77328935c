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

package ghcli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	exporterrors "github.com/sirseerhq/sirseer-export/internal/errors"
)

// installHint is shown when the gh executable cannot be located.
const installHint = `GitHub CLI not found. Please install it:
  macOS: brew install gh
  Ubuntu/Debian: sudo apt install gh
  Windows: winget install GitHub.cli`

// loginHint is shown when gh is installed but has no valid session.
const loginHint = `GitHub CLI not authenticated. Please run:
  gh auth login`

// CLIClient implements the Client interface by spawning the GitHub CLI.
// Each Query call runs `gh api graphql --input -` with the serialized
// payload on stdin and parses the JSON response from stdout. Calls are
// synchronous and independent: no retries, no caching, no timeout.
type CLIClient struct {
	binary string
}

// NewCLIClient creates a client that invokes the given gh executable.
// The binary may be a bare name (resolved via PATH) or an absolute path.
func NewCLIClient(binary string) *CLIClient {
	return &CLIClient{binary: binary}
}

// VerifyAuth checks that the gh executable exists and that it reports an
// authenticated session via `gh auth status`. Both failure modes carry the
// exact remediation commands in the error message.
func (c *CLIClient) VerifyAuth(ctx context.Context) error {
	if _, err := exec.LookPath(c.binary); err != nil {
		return fmt.Errorf("%s: %w", installHint, exporterrors.ErrGHNotFound)
	}

	cmd := exec.CommandContext(ctx, c.binary, "auth", "status")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", loginHint, exporterrors.ErrNotAuthenticated)
	}

	return nil
}

// graphqlPayload is the input format `gh api graphql --input -` expects.
type graphqlPayload struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// graphqlResponse is the standard GraphQL response envelope. Errors is kept
// raw so a failing query can report the API's error list verbatim.
type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

// Query executes a GraphQL query through the GitHub CLI and returns the raw
// `data` member of the response. The returned errors wrap, in order of
// checking: ErrCommandFailed (gh exited non-zero, message includes gh's
// stderr), ErrBadResponse (stdout is not valid JSON), and ErrGraphQL (the
// response carries an errors list).
func (c *CLIClient) Query(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	payload, err := json.Marshal(graphqlPayload{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to encode graphql payload: %w", err)
	}

	cmd := exec.CommandContext(ctx, c.binary, "api", "graphql", "--input", "-")
	cmd.Stdin = bytes.NewReader(payload)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		if diag == "" {
			diag = err.Error()
		}
		return nil, fmt.Errorf("gh CLI request failed: %s: %w", diag, exporterrors.ErrCommandFailed)
	}

	var resp graphqlResponse
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse GraphQL response: %v: %w", err, exporterrors.ErrBadResponse)
	}

	if len(resp.Errors) > 0 && string(resp.Errors) != "null" {
		return nil, fmt.Errorf("GraphQL errors: %s: %w", resp.Errors, exporterrors.ErrGraphQL)
	}

	return resp.Data, nil
}
