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
)

// Networks returns the networks of the given organization, in the order the Dashboard returns
// them.
func (c *Client) Networks(ctx context.Context, organizationID string) (result []Network,
	err error) {
	err = c.get(
		ctx,
		"/organizations/{organizationId}/networks",
		map[string]string{
			"organizationId": organizationID,
		},
		&result,
	)
	return
}
