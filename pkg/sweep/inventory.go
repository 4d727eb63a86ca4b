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

package sweep

import (
	"context"

	"github.com/pkg/errors"

	"github.com/wifiops/shaperctl/pkg/dashboard"
)

// WirelessNetworks returns the networks of the organization that carry the wireless product,
// preserving the order the Dashboard returns them in.
func WirelessNetworks(ctx context.Context, api API, organizationID string) ([]dashboard.Network,
	error) {
	networks, err := api.Networks(ctx, organizationID)
	if err != nil {
		return nil, errors.Wrapf(err, "can't list networks of organization '%s'", organizationID)
	}
	var result []dashboard.Network
	for _, network := range networks {
		if network.IsWireless() {
			result = append(result, network)
		}
	}
	return result, nil
}

// Inventory returns the flattened wireless inventory of the organization: every SSID of every
// wireless network, in network order and, within a network, in the SSID order returned by the
// Dashboard. The whole inventory is materialized in memory before any filtering; fleets are
// small, fifteen slots per network at most. Any lookup failure aborts the enumeration, there is
// no partial result mode.
func Inventory(ctx context.Context, api API, organizationID string) ([]Entry, error) {
	networks, err := WirelessNetworks(ctx, api, organizationID)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, network := range networks {
		ssids, err := api.SSIDs(ctx, network.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "can't list SSIDs of network '%s'", network.ID)
		}
		for _, ssid := range ssids {
			entries = append(entries, Entry{
				Network: network,
				SSID:    ssid,
			})
		}
	}
	return entries, nil
}
