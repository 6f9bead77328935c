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

// Package errors defines sentinel errors for consistent error handling across
// the application. Every failure is terminal: errors are wrapped with context
// at the point of failure and surfaced exactly once at the CLI boundary,
// where they all map to exit code 1.
package errors

import "errors"

// Sentinel errors for consistent error handling
var (
	// ErrGHNotFound indicates the GitHub CLI executable could not be located.
	ErrGHNotFound = errors.New("github cli not found")

	// ErrNotAuthenticated indicates the GitHub CLI is installed but reports
	// no valid authenticated session.
	ErrNotAuthenticated = errors.New("github cli not authenticated")

	// ErrCommandFailed indicates the GitHub CLI process exited non-zero.
	ErrCommandFailed = errors.New("gh command failed")

	// ErrBadResponse indicates the GitHub CLI output could not be parsed as
	// a GraphQL response, or the response is missing required fields.
	ErrBadResponse = errors.New("malformed graphql response")

	// ErrGraphQL indicates a well-formed response carrying an API-level
	// error list.
	ErrGraphQL = errors.New("graphql query failed")

	// ErrWriteFailed indicates the output file could not be written.
	ErrWriteFailed = errors.New("failed to write output file")
)
