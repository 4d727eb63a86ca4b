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

package scan

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wifiops/shaperctl/pkg/arguments"
	"github.com/wifiops/shaperctl/pkg/dashboard"
	"github.com/wifiops/shaperctl/pkg/sweep"
)

var args struct {
	org string
}

var Cmd = &cobra.Command{
	Use:   "scan",
	Short: "Find SSIDs with bandwidth limits",
	Long: "Scan the wireless networks of the organization and list the SSIDs that have any " +
		"of the four per client or per SSID bandwidth limits set. Read only: nothing is " +
		"changed.",
	Args: cobra.NoArgs,
	RunE: run,
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

	entries, err := sweep.Inventory(cmd.Context(), client, organizationID)
	if err != nil {
		return err
	}

	candidates := sweep.Detect(entries)
	if len(candidates) == 0 {
		fmt.Println("No bandwidth limits found.")
		return nil
	}

	fmt.Printf("Found %d SSIDs with bandwidth limits:\n", len(candidates))
	sweep.PrintCandidates(os.Stdout, candidates)
	return nil
}
