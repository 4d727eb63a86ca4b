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

package sweep_test

import (
	"bytes"
	"context"

	. "github.com/onsi/ginkgo/v2" // nolint
	. "github.com/onsi/gomega"    // nolint

	"github.com/wifiops/shaperctl/pkg/dashboard"
	"github.com/wifiops/shaperctl/pkg/sweep"
)

var _ = Describe("TargetedFlow", func() {
	var ctx context.Context
	var api *fakeAPI
	var out *bytes.Buffer

	BeforeEach(func() {
		ctx = context.Background()
		api = newFakeAPI()
		out = &bytes.Buffer{}
	})

	It("Clears exactly the flagged SSID after two confirmations", func() {
		// One wireless network, slot 1 unlimited, slot 2 with a per SSID download limit:
		api.networks["org-1"] = []dashboard.Network{wirelessNetwork("N_1", "branch")}
		api.ssids["N_1"] = []dashboard.SSID{
			limitedSSID(1, 0),
			limitedSSID(2, 8),
		}

		err := sweep.TargetedFlow(ctx, api, "org-1", scriptedAsker("yes", "yes"), out)
		Expect(err).ToNot(HaveOccurred())
		Expect(api.calls).To(Equal([]call{
			{method: "limits", network: "N_1", number: 2},
			{method: "rules", network: "N_1", number: 2},
		}))
		Expect(out.String()).To(ContainSubstring("Found 1 SSIDs with bandwidth limits"))
		Expect(out.String()).To(ContainSubstring("Cleared limits on 1 SSIDs."))
	})

	It("Skips the gate entirely when nothing is flagged", func() {
		api.networks["org-1"] = nil

		err := sweep.TargetedFlow(ctx, api, "org-1", noPrompts(), out)
		Expect(err).ToNot(HaveOccurred())
		Expect(api.calls).To(BeEmpty())
		Expect(out.String()).To(ContainSubstring("No bandwidth limits found."))
	})

	It("Skips the gate when limits exist on no SSID", func() {
		api.networks["org-1"] = []dashboard.Network{wirelessNetwork("N_1", "branch")}
		api.ssids["N_1"] = []dashboard.SSID{limitedSSID(0, 0), limitedSSID(1, 0)}

		err := sweep.TargetedFlow(ctx, api, "org-1", noPrompts(), out)
		Expect(err).ToNot(HaveOccurred())
		Expect(api.calls).To(BeEmpty())
	})

	It("Issues no calls when the first confirmation is declined", func() {
		api.networks["org-1"] = []dashboard.Network{wirelessNetwork("N_1", "branch")}
		api.ssids["N_1"] = []dashboard.SSID{limitedSSID(0, 1)}

		err := sweep.TargetedFlow(ctx, api, "org-1", scriptedAsker("n"), out)
		Expect(err).ToNot(HaveOccurred())
		Expect(api.calls).To(BeEmpty())
		Expect(out.String()).To(ContainSubstring("Canceled."))
	})

	It("Issues no calls when the second confirmation is declined", func() {
		api.networks["org-1"] = []dashboard.Network{wirelessNetwork("N_1", "branch")}
		api.ssids["N_1"] = []dashboard.SSID{limitedSSID(0, 1)}

		err := sweep.TargetedFlow(ctx, api, "org-1", scriptedAsker("yes", "whatever"), out)
		Expect(err).ToNot(HaveOccurred())
		Expect(api.calls).To(BeEmpty())
		Expect(out.String()).To(ContainSubstring("Canceled."))
	})
})

var _ = Describe("BlanketFlow", func() {
	var ctx context.Context
	var api *fakeAPI
	var out *bytes.Buffer

	BeforeEach(func() {
		ctx = context.Background()
		api = newFakeAPI()
		out = &bytes.Buffer{}
	})

	It("Sweeps every slot of every wireless network after two confirmations", func() {
		api.networks["org-1"] = []dashboard.Network{
			wirelessNetwork("N_1", "first"),
			{ID: "N_2", Name: "cameras", ProductTypes: []string{"camera"}},
			wirelessNetwork("N_3", "third"),
		}

		err := sweep.BlanketFlow(ctx, api, "org-1", scriptedAsker("y", "ye"), out)
		Expect(err).ToNot(HaveOccurred())
		Expect(api.calls).To(HaveLen(2 * dashboard.SSIDSlotsPerNetwork))
		Expect(out.String()).To(ContainSubstring("Cleared traffic shaping rules on 2 networks."))
	})

	It("Skips the gate when the organization has no wireless networks", func() {
		api.networks["org-1"] = []dashboard.Network{
			{ID: "N_1", Name: "cameras", ProductTypes: []string{"camera"}},
		}

		err := sweep.BlanketFlow(ctx, api, "org-1", noPrompts(), out)
		Expect(err).ToNot(HaveOccurred())
		Expect(api.calls).To(BeEmpty())
		Expect(out.String()).To(ContainSubstring("No wireless networks found."))
	})

	It("Issues no calls when declined", func() {
		api.networks["org-1"] = []dashboard.Network{wirelessNetwork("N_1", "first")}

		err := sweep.BlanketFlow(ctx, api, "org-1", scriptedAsker("no"), out)
		Expect(err).ToNot(HaveOccurred())
		Expect(api.calls).To(BeEmpty())
		Expect(out.String()).To(ContainSubstring("Canceled."))
	})
})

var _ = Describe("Combined run", func() {
	It("Keeps the two gates independent", func() {
		// Two wireless networks with one flagged SSID each; the user confirms the targeted
		// remediation but declines the blanket sweep.
		ctx := context.Background()
		api := newFakeAPI()
		out := &bytes.Buffer{}
		api.networks["org-1"] = []dashboard.Network{
			wirelessNetwork("N_1", "first"),
			wirelessNetwork("N_2", "second"),
		}
		api.ssids["N_1"] = []dashboard.SSID{limitedSSID(0, 2)}
		api.ssids["N_2"] = []dashboard.SSID{limitedSSID(4, 4)}

		err := sweep.TargetedFlow(ctx, api, "org-1", scriptedAsker("yes", "yes"), out)
		Expect(err).ToNot(HaveOccurred())
		err = sweep.BlanketFlow(ctx, api, "org-1", scriptedAsker("no"), out)
		Expect(err).ToNot(HaveOccurred())

		// Two candidates, two calls each, nothing from the blanket path:
		Expect(api.calls).To(HaveLen(4))
		Expect(api.calls[0]).To(Equal(call{method: "limits", network: "N_1", number: 0}))
		Expect(api.calls[1]).To(Equal(call{method: "rules", network: "N_1", number: 0}))
		Expect(api.calls[2]).To(Equal(call{method: "limits", network: "N_2", number: 4}))
		Expect(api.calls[3]).To(Equal(call{method: "rules", network: "N_2", number: 4}))
	})
})
