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

	"github.com/pkg/errors"
)

// Organizations returns the organizations visible to the API key, in the order the Dashboard
// returns them.
func (c *Client) Organizations(ctx context.Context) (result []Organization, err error) {
	err = c.get(ctx, "/organizations", nil, &result)
	return
}

// ResolveOrganization returns the identifier of the organization to work with: the given one
// when not empty, then the default organization from the configuration, and finally the single
// organization visible to the API key. More than one visible organization is an error, so that
// commands stay deterministic without prompting.
func (c *Client) ResolveOrganization(ctx context.Context, id string) (string, error) {
	if id == "" {
		id = c.defaultOrg
	}
	if id != "" {
		return id, nil
	}
	organizations, err := c.Organizations(ctx)
	if err != nil {
		return "", errors.Wrap(err, "can't list organizations")
	}
	switch len(organizations) {
	case 0:
		return "", errors.New("the API key has no visible organizations")
	case 1:
		return organizations[0].ID, nil
	default:
		return "", errors.Errorf(
			"the API key can see %d organizations, specify one with '--org'",
			len(organizations),
		)
	}
}
