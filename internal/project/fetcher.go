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

package project

import (
	"context"
	"encoding/json"
	"fmt"

	exporterrors "github.com/sirseerhq/sirseer-export/internal/errors"
	"github.com/sirseerhq/sirseer-export/internal/ghcli"
)

// itemsQuery fetches one page of project items. The page size is fixed at
// 100, GitHub's maximum. Field values carry fragments for text and number
// fields only; content carries fragments for Issue and PullRequest only.
const itemsQuery = `
query($org: String!, $number: Int!, $cursor: String) {
  organization(login: $org) {
    projectV2(number: $number) {
      items(first: 100, after: $cursor) {
        pageInfo {
          hasNextPage
          endCursor
        }
        nodes {
          id
          fieldValues(first: 20) {
            nodes {
              ... on ProjectV2ItemFieldTextValue {
                text
                field {
                  ... on ProjectV2FieldCommon {
                    name
                  }
                }
              }
              ... on ProjectV2ItemFieldNumberValue {
                number
                field {
                  ... on ProjectV2FieldCommon {
                    name
                  }
                }
              }
            }
          }
          content {
            ... on Issue {
              number
              title
              body
              url
              labels(first: 20) {
                nodes {
                  name
                }
              }
            }
            ... on PullRequest {
              number
              title
              body
              url
              labels(first: 20) {
                nodes {
                  name
                }
              }
            }
          }
        }
      }
    }
  }
}
`

// Fetcher enumerates the items of an organization project through a
// ghcli.Client.
type Fetcher struct {
	client ghcli.Client
}

// NewFetcher creates a Fetcher that queries through the given client.
func NewFetcher(client ghcli.Client) *Fetcher {
	return &Fetcher{client: client}
}

// FetchAllItems fetches every item of the organization's numbered project,
// following pagination cursors until the API reports no further pages.
// Items are returned in the order the API produced them. Any query failure
// aborts the fetch and is propagated unchanged; there is no iteration cap.
func (f *Fetcher) FetchAllItems(ctx context.Context, org string, number int) ([]Item, error) {
	var all []Item
	cursor := ""

	for {
		variables := map[string]any{
			"org":    org,
			"number": number,
		}
		// Omitted on the first page; GraphQL treats the absent
		// variable as null.
		if cursor != "" {
			variables["cursor"] = cursor
		}

		data, err := f.client.Query(ctx, itemsQuery, variables)
		if err != nil {
			return nil, err
		}

		var resp itemsResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			return nil, fmt.Errorf("failed to decode project items: %v: %w", err, exporterrors.ErrBadResponse)
		}

		if resp.Organization == nil || resp.Organization.ProjectV2 == nil {
			return nil, fmt.Errorf("organization %q or project %d not found in response: %w",
				org, number, exporterrors.ErrBadResponse)
		}

		page := resp.Organization.ProjectV2.Items
		all = append(all, page.Nodes...)

		if !page.PageInfo.HasNextPage {
			break
		}
		cursor = page.PageInfo.EndCursor
	}

	return all, nil
}
