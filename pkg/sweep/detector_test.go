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
	"context"

	. "github.com/onsi/ginkgo/v2" // nolint
	. "github.com/onsi/gomega"    // nolint
	"github.com/pkg/errors"

	"github.com/wifiops/shaperctl/pkg/dashboard"
	"github.com/wifiops/shaperctl/pkg/sweep"
)

var _ = Describe("Detect", func() {
	It("Flags an SSID for every combination of the four fields except all clear", func() {
		network := wirelessNetwork("N_1", "branch")
		for mask := 0; mask < 16; mask++ {
			entries := []sweep.Entry{{
				Network: network,
				SSID:    limitedSSID(3, mask),
			}}
			candidates := sweep.Detect(entries)
			if mask == 0 {
				Expect(candidates).To(BeEmpty(), "mask: %04b", mask)
			} else {
				Expect(candidates).To(HaveLen(1), "mask: %04b", mask)
				Expect(candidates[0].NetworkID).To(Equal("N_1"))
				Expect(candidates[0].Number).To(Equal(3))
			}
		}
	})

	It("Preserves input order", func() {
		entries := []sweep.Entry{
			{Network: wirelessNetwork("N_1", "first"), SSID: limitedSSID(0, 1)},
			{Network: wirelessNetwork("N_1", "first"), SSID: limitedSSID(1, 0)},
			{Network: wirelessNetwork("N_2", "second"), SSID: limitedSSID(0, 8)},
			{Network: wirelessNetwork("N_2", "second"), SSID: limitedSSID(5, 4)},
		}
		candidates := sweep.Detect(entries)
		Expect(candidates).To(HaveLen(3))
		Expect(candidates[0].NetworkID).To(Equal("N_1"))
		Expect(candidates[0].Number).To(Equal(0))
		Expect(candidates[1].NetworkID).To(Equal("N_2"))
		Expect(candidates[1].Number).To(Equal(0))
		Expect(candidates[2].NetworkID).To(Equal("N_2"))
		Expect(candidates[2].Number).To(Equal(5))
	})

	It("Is pure, running twice yields identical output and leaves the input unchanged", func() {
		entries := []sweep.Entry{
			{Network: wirelessNetwork("N_1", "branch"), SSID: limitedSSID(2, 5)},
			{Network: wirelessNetwork("N_1", "branch"), SSID: limitedSSID(3, 0)},
		}
		snapshot := make([]sweep.Entry, len(entries))
		copy(snapshot, entries)
		first := sweep.Detect(entries)
		second := sweep.Detect(entries)
		Expect(second).To(Equal(first))
		Expect(entries).To(Equal(snapshot))
	})

	It("Returns nothing for an empty inventory", func() {
		Expect(sweep.Detect(nil)).To(BeEmpty())
	})
})

var _ = Describe("Inventory", func() {
	var ctx context.Context
	var api *fakeAPI

	BeforeEach(func() {
		ctx = context.Background()
		api = newFakeAPI()
	})

	It("Flattens SSIDs of wireless networks only, in order", func() {
		api.networks["org-1"] = []dashboard.Network{
			wirelessNetwork("N_1", "first"),
			{ID: "N_2", Name: "cameras", ProductTypes: []string{"camera"}},
			wirelessNetwork("N_3", "third"),
		}
		api.ssids["N_1"] = []dashboard.SSID{limitedSSID(0, 0), limitedSSID(1, 1)}
		api.ssids["N_3"] = []dashboard.SSID{limitedSSID(0, 2)}

		entries, err := sweep.Inventory(ctx, api, "org-1")
		Expect(err).ToNot(HaveOccurred())
		Expect(entries).To(HaveLen(3))
		Expect(entries[0].Network.ID).To(Equal("N_1"))
		Expect(entries[0].SSID.Number).To(Equal(0))
		Expect(entries[1].Network.ID).To(Equal("N_1"))
		Expect(entries[1].SSID.Number).To(Equal(1))
		Expect(entries[2].Network.ID).To(Equal("N_3"))
	})

	It("Propagates a network listing failure", func() {
		api.networksErr = errors.New("no such organization")
		_, err := sweep.Inventory(ctx, api, "junk")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("can't list networks"))
	})

	It("Propagates an SSID listing failure", func() {
		api.networks["org-1"] = []dashboard.Network{wirelessNetwork("N_1", "first")}
		api.ssidsErr = errors.New("gone")
		_, err := sweep.Inventory(ctx, api, "org-1")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("can't list SSIDs"))
	})
})
