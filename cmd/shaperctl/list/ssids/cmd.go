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

package ssids

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wifiops/shaperctl/pkg/arguments"
	"github.com/wifiops/shaperctl/pkg/dashboard"
	"github.com/wifiops/shaperctl/pkg/sweep"
	"github.com/wifiops/shaperctl/pkg/table"
)

var args struct {
	org     string
	network string
}

var Cmd = &cobra.Command{
	Use:   "ssids",
	Short: "List wireless SSIDs.",
	Long: "Display the flattened wireless inventory of the organization with the four " +
		"bandwidth limit fields of every SSID. Limits are in kilobits per second, 0 " +
		"meaning unlimited.",
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	fs := Cmd.Flags()
	arguments.AddOrgFlag(fs, &args.org)
	fs.StringVar(
		&args.network,
		"network",
		"",
		"Network identifier. When omitted all wireless networks of the organization are "+
			"listed.",
	)
}

func run(cmd *cobra.Command, argv []string) error {
	client, err := dashboard.NewClient().Build()
	if err != nil {
		return err
	}

	var entries []sweep.Entry
	if args.network != "" {
		ssids, err := client.SSIDs(cmd.Context(), args.network)
		if err != nil {
			return fmt.Errorf("failed to retrieve SSID list: %v", err)
		}
		for _, ssid := range ssids {
			entries = append(entries, sweep.Entry{
				Network: dashboard.Network{ID: args.network, Name: args.network},
				SSID:    ssid,
			})
		}
	} else {
		organizationID, err := client.ResolveOrganization(cmd.Context(), args.org)
		if err != nil {
			return err
		}
		entries, err = sweep.Inventory(cmd.Context(), client, organizationID)
		if err != nil {
			return err
		}
	}

	padding := []int{30, 6, 25, 10, 11, 11, 9, 11}
	table.PrintPadded(os.Stdout, []string{
		"NETWORK", "SSID", "NAME", "ENABLED",
		"CLIENT UP", "CLIENT DOWN", "SSID UP", "SSID DOWN",
	}, padding)
	for _, entry := range entries {
		table.PrintPadded(os.Stdout, []string{
			entry.Network.Name,
			strconv.Itoa(entry.SSID.Number),
			entry.SSID.Name,
			strconv.FormatBool(entry.SSID.Enabled),
			strconv.Itoa(entry.SSID.PerClientBandwidthLimitUp),
			strconv.Itoa(entry.SSID.PerClientBandwidthLimitDown),
			strconv.Itoa(entry.SSID.PerSSIDBandwidthLimitUp),
			strconv.Itoa(entry.SSID.PerSSIDBandwidthLimitDown),
		}, padding)
	}

	return nil
}
