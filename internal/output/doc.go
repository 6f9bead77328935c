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

// Package output writes export rows as CSV. The output carries no header
// row; every record is bare data in the order it was produced. Rows are
// written in one pass once the full export is assembled, so a failed run
// never leaves a complete-looking file behind.
//
// Example usage:
//
//	w, err := output.NewFileWriter("issues.csv")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	if err := w.WriteAll(records); err != nil {
//	    return err
//	}
package output
