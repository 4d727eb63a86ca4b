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

package shaping

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
	Use:   "shaping",
	Short: "Clear traffic shaping rules from every SSID slot",
	Long: "After a double confirmation, remove the custom traffic shaping rules from all " +
		"fifteen SSID slots of every wireless network of the organization, whether or " +
		"not the slot was flagged by 'scan'. Rule based limits are a separate mechanism " +
		"from the four scalar limit fields, so this reaches configurations the scan " +
		"can't see.",
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

	return sweep.BlanketFlow(cmd.Context(), client, organizationID, nil, os.Stdout)
}
