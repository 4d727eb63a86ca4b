/*
Copyright (c) 2026 the shaperctl authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// This file contains functions that help displaying information in a tabular form.

package table

import (
	"fmt"
	"io"
	"strings"
)

// FindMapValue will find a key and retrieve its value from the given map. The key has to be a
// string and can be multilayered, for example `trafficShaping.enabled`. Returns the value and a
// boolean indicating if the value was found.
func FindMapValue(data map[string]interface{}, key string) (string, bool) {
	current := data
	for _, element := range strings.Split(key, ".") {
		value, ok := current[element]
		if !ok {
			return "", false
		}
		switch typed := value.(type) {
		case map[string]interface{}:
			current = typed
		default:
			return fmt.Sprintf("%v", typed), true
		}
	}
	return "", false
}

// PrintPadded turns a row of columns into a padded string and writes it to the given writer.
// Columns longer than their padding are truncated, keeping two spaces of separation.
func PrintPadded(w io.Writer, columns []string, padding []int) error {
	row := make([]string, len(columns))
	for i, column := range columns {
		width := padding[min(i, len(padding)-1)]
		if len(column) < width {
			row[i] = column + strings.Repeat(" ", width-len(column))
		} else {
			row[i] = column[:width-2] + "  "
		}
	}
	_, err := fmt.Fprintln(w, strings.Join(row, ""))
	return err
}
