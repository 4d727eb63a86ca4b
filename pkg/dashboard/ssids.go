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

package dashboard

import (
	"context"
	"strconv"
)

// SSIDs returns the SSIDs of the given network, in slot order as returned by the Dashboard.
func (c *Client) SSIDs(ctx context.Context, networkID string) (result []SSID, err error) {
	err = c.get(
		ctx,
		"/networks/{networkId}/wireless/ssids",
		map[string]string{
			"networkId": networkID,
		},
		&result,
	)
	return
}

// UpdateSSIDBandwidthLimits writes the four scalar bandwidth limit fields of the given SSID slot.
func (c *Client) UpdateSSIDBandwidthLimits(ctx context.Context, networkID string, number int,
	limits BandwidthLimits) error {
	return c.put(
		ctx,
		"/networks/{networkId}/wireless/ssids/{number}",
		map[string]string{
			"networkId": networkID,
			"number":    strconv.Itoa(number),
		},
		limits,
	)
}

// UpdateSSIDTrafficShapingRules replaces the traffic shaping rules of the given SSID slot.
func (c *Client) UpdateSSIDTrafficShapingRules(ctx context.Context, networkID string, number int,
	rules TrafficShapingRules) error {
	return c.put(
		ctx,
		"/networks/{networkId}/wireless/ssids/{number}/trafficShaping/rules",
		map[string]string{
			"networkId": networkID,
			"number":    strconv.Itoa(number),
		},
		rules,
	)
}
