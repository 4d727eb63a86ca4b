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

package orgs

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wifiops/shaperctl/pkg/dashboard"
	table "github.com/wifiops/shaperctl/pkg/table"
)

var args struct {
	columns string
	padding int
}

var Cmd = &cobra.Command{
	Use:   "orgs",
	Short: "List organizations.",
	Long:  "Display a list of the organizations visible to the API key.",
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	fs := Cmd.Flags()
	fs.StringVar(
		&args.columns,
		"columns",
		"id,name",
		"Comma separated list of columns to display, named after the JSON fields of the "+
			"organization. Nested fields use dots, for example 'cloud.region.name'.",
	)
	fs.IntVar(
		&args.padding,
		"padding",
		35,
		"Padding for custom columns.",
	)
}

func run(cmd *cobra.Command, argv []string) error {
	client, err := dashboard.NewClient().Build()
	if err != nil {
		return err
	}

	organizations, err := client.Organizations(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to retrieve organization list: %v", err)
	}

	// Set the column names and padding sizes:
	args.columns = strings.ReplaceAll(args.columns, " ", "")
	columns := strings.Split(args.columns, ",")
	columnNames := make([]string, len(columns))
	for i, column := range columns {
		columnNames[i] = strings.ReplaceAll(strings.ToUpper(column), ".", " ")
	}
	padding := []int{29, 65}
	if args.columns != "id,name" {
		padding = []int{args.padding}
	}

	// Print the header row:
	table.PrintPadded(os.Stdout, columnNames, padding)

	for _, organization := range organizations {
		// Marshalling through JSON gives a map where columns can be looked up by the
		// same names the raw API uses:
		data, err := json.Marshal(organization)
		if err != nil {
			return fmt.Errorf("can't marshal organization: %v", err)
		}
		var jsonBody map[string]interface{}
		err = json.Unmarshal(data, &jsonBody)
		if err != nil {
			return fmt.Errorf("can't parse organization: %v", err)
		}

		row := make([]string, len(columns))
		for i, column := range columns {
			value, ok := table.FindMapValue(jsonBody, column)
			if !ok {
				value = "NONE"
			}
			row[i] = value
		}
		table.PrintPadded(os.Stdout, row, padding)
	}

	return nil
}
