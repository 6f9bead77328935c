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

// Package project models GitHub ProjectsV2 board items and fetches them
// through a ghcli.Client. The Fetcher hides cursor pagination behind a
// single call that returns the complete, order-preserved item list.
//
// Basic usage:
//
//	fetcher := project.NewFetcher(client)
//	items, err := fetcher.FetchAllItems(ctx, "conda", 22)
//
// Any transport failure aborts the whole fetch; there is no partial result.
package project
