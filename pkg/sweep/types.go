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

// Package sweep implements the scan, filter, confirm and bulk mutate workflow over the bandwidth
// limits and traffic shaping rules of wireless SSIDs.
package sweep

import (
	"context"

	"github.com/wifiops/shaperctl/pkg/dashboard"
)

// API is the subset of the Dashboard client used by the sweep operations. *dashboard.Client
// satisfies it; tests use recording fakes.
type API interface {
	Networks(ctx context.Context, organizationID string) ([]dashboard.Network, error)
	SSIDs(ctx context.Context, networkID string) ([]dashboard.SSID, error)
	UpdateSSIDBandwidthLimits(ctx context.Context, networkID string, number int,
		limits dashboard.BandwidthLimits) error
	UpdateSSIDTrafficShapingRules(ctx context.Context, networkID string, number int,
		rules dashboard.TrafficShapingRules) error
}

// Entry is one SSID of the flattened wireless inventory of an organization.
type Entry struct {
	Network dashboard.Network
	SSID    dashboard.SSID
}

// Candidate identifies an SSID slot flagged by the limit detector. Candidates are transient:
// they are recomputed on every run from a single enumeration snapshot, never persisted, and the
// Dashboard isn't consulted again between detection and remediation.
type Candidate struct {
	NetworkID   string
	NetworkName string
	Number      int
	SSIDName    string
}
