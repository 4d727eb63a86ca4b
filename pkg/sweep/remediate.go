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
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/wifiops/shaperctl/pkg/dashboard"
)

// ClearLimits removes the bandwidth limits and traffic shaping rules of the given candidates,
// one candidate at a time. For each candidate the limit reset is sent first and the rule reset
// second, as two independent calls: no transaction spans them, so a failure between the two
// leaves that SSID with limits cleared but rules still in place. The first error aborts the
// remaining candidates and nothing already mutated is rolled back.
func ClearLimits(ctx context.Context, api API, candidates []Candidate, progress io.Writer) error {
	for _, candidate := range candidates {
		fmt.Fprintf(
			progress,
			"Clearing limits on network '%s' SSID %d ('%s')...\n",
			candidate.NetworkName, candidate.Number, candidate.SSIDName,
		)
		err := api.UpdateSSIDBandwidthLimits(
			ctx,
			candidate.NetworkID,
			candidate.Number,
			dashboard.BandwidthLimits{},
		)
		if err != nil {
			return errors.Wrapf(
				err,
				"can't clear bandwidth limits on network '%s' SSID %d",
				candidate.NetworkID, candidate.Number,
			)
		}
		err = api.UpdateSSIDTrafficShapingRules(
			ctx,
			candidate.NetworkID,
			candidate.Number,
			dashboard.EmptyTrafficShapingRules(),
		)
		if err != nil {
			return errors.Wrapf(
				err,
				"can't clear traffic shaping rules on network '%s' SSID %d",
				candidate.NetworkID, candidate.Number,
			)
		}
	}
	return nil
}

// ClearShapingRules removes the traffic shaping rules of every SSID slot of every given network,
// whether or not an SSID is configured in the slot. Rule level limits are a separate mechanism
// from the four scalar fields, so this sweep is deliberately broader than the detector's
// candidate list. Same sequential, abort on first failure semantics as ClearLimits.
func ClearShapingRules(ctx context.Context, api API, networks []dashboard.Network,
	progress io.Writer) error {
	for _, network := range networks {
		fmt.Fprintf(
			progress,
			"Clearing traffic shaping rules on network '%s' (%s)...\n",
			network.Name, network.ID,
		)
		for number := 0; number < dashboard.SSIDSlotsPerNetwork; number++ {
			err := api.UpdateSSIDTrafficShapingRules(
				ctx,
				network.ID,
				number,
				dashboard.EmptyTrafficShapingRules(),
			)
			if err != nil {
				return errors.Wrapf(
					err,
					"can't clear traffic shaping rules on network '%s' SSID %d",
					network.ID, number,
				)
			}
		}
	}
	return nil
}
