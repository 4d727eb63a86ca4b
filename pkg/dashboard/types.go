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

// Package dashboard implements a typed client for the subset of the Meraki Dashboard API used by
// the tool.
package dashboard

import (
	"encoding/json"
)

// SSIDSlotsPerNetwork is the number of SSID slots the Dashboard exposes on every wireless
// network. Slots are numbered 0 through 14, whether or not an SSID is configured in them.
const SSIDSlotsPerNetwork = 15

// ProductTypeWireless is the product type tag that marks a network as wireless capable.
const ProductTypeWireless = "wireless"

// Organization is a top level tenant of the Dashboard.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Network is a site grouping of managed devices within an organization.
type Network struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	ProductTypes []string `json:"productTypes"`
	Tags         []string `json:"tags,omitempty"`
}

// IsWireless reports whether the network carries the wireless product.
func (n Network) IsWireless() bool {
	for _, productType := range n.ProductTypes {
		if productType == ProductTypeWireless {
			return true
		}
	}
	return false
}

// SSID is a configured wireless profile of a network. Only the fields the tool inspects are
// mapped; everything else the Dashboard returns is ignored.
type SSID struct {
	Number                      int    `json:"number"`
	Name                        string `json:"name"`
	Enabled                     bool   `json:"enabled"`
	PerClientBandwidthLimitUp   int    `json:"perClientBandwidthLimitUp"`
	PerClientBandwidthLimitDown int    `json:"perClientBandwidthLimitDown"`
	PerSSIDBandwidthLimitUp     int    `json:"perSsidBandwidthLimitUp"`
	PerSSIDBandwidthLimitDown   int    `json:"perSsidBandwidthLimitDown"`
}

// HasBandwidthLimit reports whether any of the four scalar bandwidth limit fields is set.
func (s SSID) HasBandwidthLimit() bool {
	return s.PerClientBandwidthLimitUp != 0 ||
		s.PerClientBandwidthLimitDown != 0 ||
		s.PerSSIDBandwidthLimitUp != 0 ||
		s.PerSSIDBandwidthLimitDown != 0
}

// BandwidthLimits is the update payload for the four scalar bandwidth limit fields. The fields
// serialize even when zero: writing zero is how a limit is removed.
type BandwidthLimits struct {
	PerClientBandwidthLimitUp   int `json:"perClientBandwidthLimitUp"`
	PerClientBandwidthLimitDown int `json:"perClientBandwidthLimitDown"`
	PerSSIDBandwidthLimitUp     int `json:"perSsidBandwidthLimitUp"`
	PerSSIDBandwidthLimitDown   int `json:"perSsidBandwidthLimitDown"`
}

// TrafficShapingRule is opaque to the tool: only the presence or absence of rules matters, never
// their content.
type TrafficShapingRule = json.RawMessage

// TrafficShapingRules is the update payload for the traffic shaping rules of an SSID slot.
type TrafficShapingRules struct {
	Rules []TrafficShapingRule `json:"rules"`
}

// EmptyTrafficShapingRules returns the payload that removes all traffic shaping rules. The rule
// list serializes as an empty array, not null, which is what the Dashboard expects.
func EmptyTrafficShapingRules() TrafficShapingRules {
	return TrafficShapingRules{
		Rules: []TrafficShapingRule{},
	}
}
