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
	"fmt"

	exporterrors "github.com/sirseerhq/sirseer-export/internal/errors"
)

// MockClient is a mock implementation of the Client interface for testing.
// Responses are returned in order, one per Query call. FailAt can inject a
// failure on a specific call to exercise mid-pagination aborts.
type MockClient struct {
	// Responses holds the raw `data` payloads to return, one per call.
	Responses []json.RawMessage

	// VerifyErr is returned by VerifyAuth when set.
	VerifyErr error

	// QueryErr is returned by Query when set.
	QueryErr error

	// FailAt makes the Nth Query call (1-based) fail with QueryErr, or a
	// generic command failure if QueryErr is nil. Zero disables it.
	FailAt int

	// Track calls for verification
	CallCount int
	Queries   []string
	Variables []map[string]any
}

// VerifyAuth implements the Client interface.
func (m *MockClient) VerifyAuth(ctx context.Context) error {
	return m.VerifyErr
}

// Query implements the Client interface.
func (m *MockClient) Query(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	m.CallCount++
	m.Queries = append(m.Queries, query)
	m.Variables = append(m.Variables, variables)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.FailAt > 0 && m.CallCount == m.FailAt {
		if m.QueryErr != nil {
			return nil, m.QueryErr
		}
		return nil, fmt.Errorf("gh CLI request failed: injected failure: %w", exporterrors.ErrCommandFailed)
	}

	if m.FailAt == 0 && m.QueryErr != nil {
		return nil, m.QueryErr
	}

	if m.CallCount > len(m.Responses) {
		return nil, fmt.Errorf("mock exhausted after %d responses", len(m.Responses))
	}

	return m.Responses[m.CallCount-1], nil
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithResponses sets the data payloads returned by successive Query calls.
func WithResponses(responses ...json.RawMessage) MockClientOption {
	return func(m *MockClient) {
		m.Responses = responses
	}
}

// WithQueryError makes Query return a specific error.
func WithQueryError(err error) MockClientOption {
	return func(m *MockClient) {
		m.QueryErr = err
	}
}

// WithVerifyError makes VerifyAuth fail with the given error.
func WithVerifyError(err error) MockClientOption {
	return func(m *MockClient) {
		m.VerifyErr = err
	}
}

// WithFailAt makes the Nth Query call fail.
func WithFailAt(n int) MockClientOption {
	return func(m *MockClient) {
		m.FailAt = n
	}
}

// NewMockClient creates a mock client with options.
func NewMockClient(opts ...MockClientOption) *MockClient {
	mock := &MockClient{}
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
