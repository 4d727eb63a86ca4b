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

// This file contains the top level flows that tie enumeration, detection and remediation
// together behind their confirmation gates.

package sweep

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/wifiops/shaperctl/pkg/dashboard"
	"github.com/wifiops/shaperctl/pkg/interactive"
	"github.com/wifiops/shaperctl/pkg/table"
)

var candidatePadding = []int{35, 6, 25}

// PrintCandidates writes the candidate list as a table.
func PrintCandidates(out io.Writer, candidates []Candidate) {
	table.PrintPadded(out, []string{"NETWORK", "SSID", "NAME"}, candidatePadding)
	for _, candidate := range candidates {
		table.PrintPadded(out, []string{
			candidate.NetworkName,
			strconv.Itoa(candidate.Number),
			candidate.SSIDName,
		}, candidatePadding)
	}
}

// TargetedFlow scans the organization for SSIDs with bandwidth limits and, behind a double
// confirmation, clears the limits and traffic shaping rules of exactly the flagged SSIDs. When
// nothing is flagged the gate is skipped entirely and no prompt is shown. Detection works on a
// single enumeration snapshot; the Dashboard isn't consulted again before mutating.
func TargetedFlow(ctx context.Context, api API, organizationID string, ask interactive.Asker,
	out io.Writer) error {
	entries, err := Inventory(ctx, api, organizationID)
	if err != nil {
		return err
	}
	candidates := Detect(entries)
	if len(candidates) == 0 {
		fmt.Fprintln(out, "No bandwidth limits found.")
		return nil
	}

	fmt.Fprintf(out, "Found %d SSIDs with bandwidth limits:\n", len(candidates))
	PrintCandidates(out, candidates)

	gate := interactive.NewGate(ask)
	confirmed, err := gate.Confirm(
		fmt.Sprintf("Remove the bandwidth limits from these %d SSIDs?", len(candidates)),
		"This can't be undone. Are you sure?",
	)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(out, "Canceled.")
		return nil
	}
	err = gate.Execute(func() error {
		return ClearLimits(ctx, api, candidates, out)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Cleared limits on %d SSIDs.\n", len(candidates))
	return nil
}

// BlanketFlow clears, behind its own double confirmation, the traffic shaping rules of every
// SSID slot of every wireless network of the organization, flagged or not. It is independent of
// TargetedFlow: rule only configurations are invisible to the limit detector, this sweep is the
// only thing that reaches them.
func BlanketFlow(ctx context.Context, api API, organizationID string, ask interactive.Asker,
	out io.Writer) error {
	networks, err := WirelessNetworks(ctx, api, organizationID)
	if err != nil {
		return err
	}
	if len(networks) == 0 {
		fmt.Fprintln(out, "No wireless networks found.")
		return nil
	}

	fmt.Fprintf(
		out,
		"This clears the traffic shaping rules of all %d SSID slots on each of %d wireless networks.\n",
		dashboard.SSIDSlotsPerNetwork, len(networks),
	)

	gate := interactive.NewGate(ask)
	confirmed, err := gate.Confirm(
		"Remove the custom traffic shaping rules from every SSID slot?",
		"This can't be undone. Are you sure?",
	)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(out, "Canceled.")
		return nil
	}
	err = gate.Execute(func() error {
		return ClearShapingRules(ctx, api, networks, out)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Cleared traffic shaping rules on %d networks.\n", len(networks))
	return nil
}
