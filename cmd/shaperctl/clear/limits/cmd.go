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

package limits

import (
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
	Use:   "limits",
	Short: "Clear bandwidth limits from flagged SSIDs",
	Long: "Scan the organization for SSIDs with bandwidth limits and, after a double " +
		"confirmation, zero the four limit fields and remove the traffic shaping rules " +
		"of exactly the flagged SSIDs. A failure partway through leaves the already " +
		"cleared SSIDs cleared: there is no undo.",
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

	return sweep.TargetedFlow(cmd.Context(), client, organizationID, nil, os.Stdout)
}
