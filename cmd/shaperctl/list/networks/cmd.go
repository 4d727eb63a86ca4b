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

package networks

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wifiops/shaperctl/pkg/arguments"
	"github.com/wifiops/shaperctl/pkg/dashboard"
	"github.com/wifiops/shaperctl/pkg/table"
)

var args struct {
	org string
}

var Cmd = &cobra.Command{
	Use:   "networks",
	Short: "List networks.",
	Long:  "Display a list of the networks of the organization with their product types.",
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	fs := Cmd.Flags()
	arguments.AddOrgFlag(fs, &args.org)
}

func run(cmd *cobra.Command, argv []string) error {
	client, err := dashboard.NewClient().Build()
	if err != nil {
		return err
	}

	organizationID, err := client.ResolveOrganization(cmd.Context(), args.org)
	if err != nil {
		return err
	}

	networks, err := client.Networks(cmd.Context(), organizationID)
	if err != nil {
		return fmt.Errorf("failed to retrieve network list: %v", err)
	}

	padding := []int{25, 35, 30}
	table.PrintPadded(os.Stdout, []string{"ID", "NAME", "PRODUCT TYPES"}, padding)
	for _, network := range networks {
		table.PrintPadded(os.Stdout, []string{
			network.ID,
			network.Name,
			strings.Join(network.ProductTypes, ","),
		}, padding)
	}

	return nil
}
