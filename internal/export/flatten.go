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

package export

import (
	"strconv"
	"strings"

	"github.com/sirseerhq/sirseer-export/internal/project"
)

const (
	// epicLabel marks an item as an epic. Exact, case-sensitive match.
	epicLabel = "Epic"

	// storyPointsField is matched case-insensitively against field names.
	storyPointsField = "story points"

	typeEpic  = "Epic"
	typeStory = "Story"
)

// Row is one CSV record: Type, Title, ReferenceID, Link, Description,
// AcceptanceCriteria. AcceptanceCriteria is always empty, a placeholder
// column for manual entry after import.
type Row struct {
	Type               string
	Title              string
	ReferenceID        string
	Link               string
	Description        string
	AcceptanceCriteria string
}

// Record returns the row as an ordered CSV record.
func (r Row) Record() []string {
	return []string{r.Type, r.Title, r.ReferenceID, r.Link, r.Description, r.AcceptanceCriteria}
}

// Flatten maps project items to CSV rows, preserving input order. Items
// without linked content (draft notes) produce no row.
func Flatten(items []project.Item) []Row {
	rows := make([]Row, 0, len(items))

	for _, item := range items {
		if !item.HasContent() {
			continue
		}
		rows = append(rows, flattenItem(item))
	}

	return rows
}

func flattenItem(item project.Item) Row {
	content := item.Content

	typ := typeStory
	for _, label := range content.Labels.Nodes {
		if label.Name == epicLabel {
			typ = typeEpic
			break
		}
	}

	title := content.Title
	if points := storyPoints(item); points != "" {
		title = "[" + points + "] " + title
	}

	return Row{
		Type:               typ,
		Title:              title,
		ReferenceID:        strconv.Itoa(content.Number),
		Link:               content.URL,
		Description:        flattenBody(content.Body),
		AcceptanceCriteria: "",
	}
}

// storyPoints extracts the story-points value from an item's custom fields.
// The first field whose name case-insensitively equals "Story Points" wins
// and scanning stops, even when the field carries no value. Numeric values
// render with minimal digits (5.0 -> "5", 5.5 -> "5.5").
func storyPoints(item project.Item) string {
	for _, fv := range item.FieldValues.Nodes {
		if !strings.EqualFold(fv.Field.Name, storyPointsField) {
			continue
		}
		switch {
		case fv.Number != nil:
			return strconv.FormatFloat(*fv.Number, 'f', -1, 64)
		case fv.Text != nil:
			return *fv.Text
		}
		return ""
	}
	return ""
}

var bodyReplacer = strings.NewReplacer("\n", " ", "\r", " ")

// flattenBody replaces each newline and carriage return with a single space
// so the description stays on one CSV line. No other sanitization; the CSV
// writer's quoting handles the rest.
func flattenBody(body string) string {
	return bodyReplacer.Replace(body)
}
