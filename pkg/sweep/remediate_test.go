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
	"io"

	. "github.com/onsi/ginkgo/v2" // nolint
	. "github.com/onsi/gomega"    // nolint

	"github.com/wifiops/shaperctl/pkg/dashboard"
	"github.com/wifiops/shaperctl/pkg/sweep"
)

var _ = Describe("ClearLimits", func() {
	var ctx context.Context
	var api *fakeAPI

	BeforeEach(func() {
		ctx = context.Background()
		api = newFakeAPI()
	})

	It("Issues exactly two calls per candidate, limits first, candidate by candidate", func() {
		candidates := []sweep.Candidate{
			{NetworkID: "N_1", NetworkName: "first", Number: 2},
			{NetworkID: "N_2", NetworkName: "second", Number: 7},
		}
		err := sweep.ClearLimits(ctx, api, candidates, io.Discard)
		Expect(err).ToNot(HaveOccurred())
		Expect(api.calls).To(Equal([]call{
			{method: "limits", network: "N_1", number: 2},
			{method: "rules", network: "N_1", number: 2},
			{method: "limits", network: "N_2", number: 7},
			{method: "rules", network: "N_2", number: 7},
		}))
	})

	It("Issues no calls for an empty candidate list", func() {
		err := sweep.ClearLimits(ctx, api, nil, io.Discard)
		Expect(err).ToNot(HaveOccurred())
		Expect(api.calls).To(BeEmpty())
	})

	It("Aborts on the first failure, leaving later candidates untouched", func() {
		candidates := []sweep.Candidate{
			{NetworkID: "N_1", Number: 1},
			{NetworkID: "N_2", Number: 2},
		}
		// Fail the rule reset of the first candidate:
		api.failAt = 2
		err := sweep.ClearLimits(ctx, api, candidates, io.Discard)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("can't clear traffic shaping rules"))
		Expect(api.calls).To(HaveLen(2))
		Expect(api.calls[1].network).To(Equal("N_1"))
	})

	It("Doesn't retry or roll back after a mid loop failure", func() {
		candidates := []sweep.Candidate{
			{NetworkID: "N_1", Number: 1},
			{NetworkID: "N_2", Number: 2},
			{NetworkID: "N_3", Number: 3},
		}
		// Fail the limit reset of the second candidate: the first candidate stays mutated.
		api.failAt = 3
		err := sweep.ClearLimits(ctx, api, candidates, io.Discard)
		Expect(err).To(HaveOccurred())
		Expect(api.calls).To(HaveLen(3))
		Expect(api.calls[2]).To(Equal(call{method: "limits", network: "N_2", number: 2}))
	})
})

var _ = Describe("ClearShapingRules", func() {
	var ctx context.Context
	var api *fakeAPI

	BeforeEach(func() {
		ctx = context.Background()
		api = newFakeAPI()
	})

	It("Issues fifteen calls per network, independent of the configured SSID count", func() {
		networks := []dashboard.Network{
			wirelessNetwork("N_1", "first"),
			wirelessNetwork("N_2", "second"),
		}
		err := sweep.ClearShapingRules(ctx, api, networks, io.Discard)
		Expect(err).ToNot(HaveOccurred())
		Expect(api.calls).To(HaveLen(2 * dashboard.SSIDSlotsPerNetwork))
		for i, recorded := range api.calls {
			Expect(recorded.method).To(Equal("rules"))
			Expect(recorded.ruleslen).To(BeZero())
			if i < dashboard.SSIDSlotsPerNetwork {
				Expect(recorded.network).To(Equal("N_1"))
				Expect(recorded.number).To(Equal(i))
			} else {
				Expect(recorded.network).To(Equal("N_2"))
				Expect(recorded.number).To(Equal(i - dashboard.SSIDSlotsPerNetwork))
			}
		}
	})

	It("Aborts on the first failure", func() {
		networks := []dashboard.Network{
			wirelessNetwork("N_1", "first"),
			wirelessNetwork("N_2", "second"),
		}
		api.failAt = 5
		err := sweep.ClearShapingRules(ctx, api, networks, io.Discard)
		Expect(err).To(HaveOccurred())
		Expect(api.calls).To(HaveLen(5))
		Expect(api.calls[4]).To(Equal(call{method: "rules", network: "N_1", number: 4}))
	})
})
