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

// Package config defines the export parameters. In this version they are
// fixed at compile time: the tool always targets one organization project
// and one output file. There is intentionally no config file or environment
// loading. The Config struct exists so the parameters can be injected into
// the export pipeline, which keeps the pipeline testable against arbitrary
// targets.
package config

import "fmt"

// Config holds the parameters for one export run.
type Config struct {
	// Org is the GitHub organization login that owns the project.
	Org string

	// ProjectNumber is the organization-relative project number, as it
	// appears in the project URL.
	ProjectNumber int

	// OutputFile is the path the CSV is written to.
	OutputFile string

	// GHBinary is the name or path of the GitHub CLI executable.
	GHBinary string
}

// DefaultConfig returns the fixed parameters this version exports.
func DefaultConfig() *Config {
	return &Config{
		Org:           "conda",
		ProjectNumber: 22,
		OutputFile:    "conda_project_issues.csv",
		GHBinary:      "gh",
	}
}

// Validate checks that the configuration contains usable values. This should
// be called before starting an export to catch bad parameters early.
func (c *Config) Validate() error {
	if c.Org == "" {
		return fmt.Errorf("organization cannot be empty")
	}
	if c.ProjectNumber <= 0 {
		return fmt.Errorf("project number must be positive, got: %d", c.ProjectNumber)
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if c.GHBinary == "" {
		return fmt.Errorf("gh binary cannot be empty")
	}
	return nil
}
