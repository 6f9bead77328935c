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
	"context"
	"encoding/json"
)

// Client defines the interface for issuing GraphQL queries through the
// GitHub CLI. This interface allows for easy mocking in tests.
type Client interface {
	// VerifyAuth checks that the gh executable exists and reports an
	// authenticated session. It must be called once before any Query.
	VerifyAuth(ctx context.Context) error

	// Query executes one GraphQL query document with the given variables
	// and returns the raw `data` member of the response, unmodified.
	Query(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error)
}
