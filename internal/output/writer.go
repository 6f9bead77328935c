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

package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	exporterrors "github.com/sirseerhq/sirseer-export/internal/errors"
)

// Writer writes CSV records to a file or io.Writer. Output is UTF-8 with
// the standard quoting rules of encoding/csv and no header row.
type Writer struct {
	csv       *csv.Writer
	count     int
	closeFunc func() error
}

// NewWriter creates a CSV writer over the given output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// NewFileWriter creates a CSV writer that writes to a file, truncating any
// existing content. The caller must call Close when done.
func NewFileWriter(filename string) (*Writer, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %v: %w", filename, err, exporterrors.ErrWriteFailed)
	}

	return &Writer{
		csv:       csv.NewWriter(file),
		closeFunc: file.Close,
	}, nil
}

// WriteAll writes every record and flushes. A failure mid-write may leave a
// partially written file; the error is fatal and the write is not retried.
func (w *Writer) WriteAll(records [][]string) error {
	if err := w.csv.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv records: %v: %w", err, exporterrors.ErrWriteFailed)
	}

	w.count += len(records)
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	return w.count
}

// Close closes the underlying writer if it owns one.
func (w *Writer) Close() error {
	if w.closeFunc != nil {
		return w.closeFunc()
	}
	return nil
}
