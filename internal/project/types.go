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

// Item is one entry on a ProjectsV2 board. Content is the linked issue or
// pull request; draft items have none.
type Item struct {
	ID          string `json:"id"`
	FieldValues struct {
		Nodes []FieldValue `json:"nodes"`
	} `json:"fieldValues"`
	Content *Content `json:"content"`
}

// HasContent reports whether the item links an issue or pull request.
// The query only carries fragments for Issue and PullRequest, so draft
// items decode as an empty object rather than null; both count as absent.
func (i *Item) HasContent() bool {
	return i.Content != nil && (i.Content.Number != 0 || i.Content.URL != "")
}

// FieldValue is one custom-field entry on an item. Text and Number are
// mutually exclusive: at most one is non-nil, depending on the field type.
// Value nodes of other field types decode with both nil and an empty name.
type FieldValue struct {
	Text   *string  `json:"text"`
	Number *float64 `json:"number"`
	Field  struct {
		Name string `json:"name"`
	} `json:"field"`
}

// Content is the issue or pull request linked to a project item.
type Content struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	URL    string `json:"url"`
	Labels struct {
		Nodes []Label `json:"nodes"`
	} `json:"labels"`
}

// Label is an issue or pull request label.
type Label struct {
	Name string `json:"name"`
}

// PageInfo carries the cursor state of one items page.
type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

// itemsResponse mirrors the `data` member of the items query. Organization
// and ProjectV2 are pointers so a null in the response (unknown org or
// project) is distinguishable from an empty item list.
type itemsResponse struct {
	Organization *struct {
		ProjectV2 *struct {
			Items struct {
				PageInfo PageInfo `json:"pageInfo"`
				Nodes    []Item   `json:"nodes"`
			} `json:"items"`
		} `json:"projectV2"`
	} `json:"organization"`
}
