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

// Package main implements the sirseer-export command-line interface.
// This tool fetches the issue and pull request items attached to a GitHub
// organization project board and writes them to a headerless 6-column CSV
// file (Type, Title, ReferenceId, Link, Description, AcceptanceCriteria).
//
// The tool takes no arguments: organization, project number, and output
// path are fixed in this version. Authentication and transport are
// delegated to the GitHub CLI (gh), which must be installed and logged in
// before running.
//
// Usage:
//
//	sirseer-export
//
// Exit codes:
//   - 0: Success, a complete CSV was written
//   - 1: Any fatal error (gh missing or unauthenticated, transport
//     failure, malformed response, GraphQL error, file write failure)
package main
