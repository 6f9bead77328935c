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

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		want     bool
	}{
		{
			name:     "direct gh not found error",
			err:      ErrGHNotFound,
			sentinel: ErrGHNotFound,
			want:     true,
		},
		{
			name:     "wrapped gh not found error",
			err:      fmt.Errorf("verify failed: %w", ErrGHNotFound),
			sentinel: ErrGHNotFound,
			want:     true,
		},
		{
			name:     "wrapped not authenticated error",
			err:      fmt.Errorf("auth status: %w", ErrNotAuthenticated),
			sentinel: ErrNotAuthenticated,
			want:     true,
		},
		{
			name:     "different error type",
			err:      ErrCommandFailed,
			sentinel: ErrGraphQL,
			want:     false,
		},
		{
			name:     "doubly wrapped write error",
			err:      fmt.Errorf("export: %w", fmt.Errorf("csv flush: %w", ErrWriteFailed)),
			sentinel: ErrWriteFailed,
			want:     true,
		},
		{
			name:     "nil error",
			err:      nil,
			sentinel: ErrBadResponse,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.sentinel); got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.sentinel, got, tt.want)
			}
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrGHNotFound,
		ErrNotAuthenticated,
		ErrCommandFailed,
		ErrBadResponse,
		ErrGraphQL,
		ErrWriteFailed,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			if errors.Is(a, b) {
				t.Errorf("sentinel %v should not match %v", a, b)
			}
		}
	}
}
