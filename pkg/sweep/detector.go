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

// Detect filters the flattened inventory down to the SSID slots that have at least one of the
// four scalar bandwidth limits set. Pure function: the input is never modified and the output
// preserves input order.
func Detect(entries []Entry) []Candidate {
	var candidates []Candidate
	for _, entry := range entries {
		if entry.SSID.HasBandwidthLimit() {
			candidates = append(candidates, Candidate{
				NetworkID:   entry.Network.ID,
				NetworkName: entry.Network.Name,
				Number:      entry.SSID.Number,
				SSIDName:    entry.SSID.Name,
			})
		}
	}
	return candidates
}
