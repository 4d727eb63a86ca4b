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
	"net/url"

	resty "github.com/go-resty/resty/v2"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/wifiops/shaperctl/pkg/config"
	"github.com/wifiops/shaperctl/pkg/debug"
	"github.com/wifiops/shaperctl/pkg/info"
)

// DefaultURL is the base URL of the Dashboard API.
const DefaultURL = "https://api.meraki.com/api/v1"

// ClientBuilder contains the information and logic needed to build a client for the Dashboard
// API. Don't create instances of this type directly; use the NewClient function instead.
type ClientBuilder struct {
	cfg *config.Config
	url string
}

// NewClient creates a builder that can then be used to configure and build a Dashboard client.
func NewClient() *ClientBuilder {
	return &ClientBuilder{}
}

// Config sets the configuration that the client will use to authenticate.
func (b *ClientBuilder) Config(value *config.Config) *ClientBuilder {
	b.cfg = value
	return b
}

// URL overrides the base URL of the API, mostly useful for tests.
func (b *ClientBuilder) URL(value string) *ClientBuilder {
	b.url = value
	return b
}

// Build uses the information stored in the builder to create a new Dashboard client.
func (b *ClientBuilder) Build() (result *Client, err error) {
	if b.cfg == nil {
		// Load the configuration file:
		b.cfg, err = config.Load()
		if err != nil {
			return
		}
	}

	// Check that the configuration contains an API key:
	armed, reason := b.cfg.Armed()
	if !armed {
		err = errors.Errorf("not logged in, %s, run the 'login' command", reason)
		return
	}

	url := b.url
	if url == "" {
		url = b.cfg.URL
	}
	if url == "" {
		url = DefaultURL
	}

	rest := resty.New().
		SetBaseURL(url).
		SetAuthToken(b.cfg.EffectiveAPIKey()).
		SetHeader("User-Agent", info.UserAgent).
		SetDebug(debug.Enabled())

	result = &Client{
		rest:       rest,
		defaultOrg: b.cfg.Org,
	}
	return
}

// Client is a client for the Dashboard API. Requests block until the Dashboard answers; the
// client adds no retries of its own.
type Client struct {
	rest       *resty.Client
	defaultOrg string
}

// get sends a GET request and unmarshals the JSON response into the given result.
func (c *Client) get(ctx context.Context, path string, params map[string]string,
	result interface{}) error {
	glog.V(1).Infof("GET %s %v", path, params)
	response, err := c.rest.R().
		SetContext(ctx).
		SetPathParams(params).
		SetResult(result).
		SetError(&errorBody{}).
		Get(path)
	return check(response, err, path)
}

// put sends a PUT request with the given JSON body.
func (c *Client) put(ctx context.Context, path string, params map[string]string,
	body interface{}) error {
	glog.V(1).Infof("PUT %s %v", path, params)
	response, err := c.rest.R().
		SetContext(ctx).
		SetPathParams(params).
		SetBody(body).
		SetError(&errorBody{}).
		Put(path)
	return check(response, err, path)
}

// Get sends a raw GET request to the given path, relative to the API base URL, and returns the
// response body and status. The body is returned even for error statuses so that callers can
// show it to the user.
func (c *Client) Get(ctx context.Context, path string, parameters url.Values) (body []byte,
	status int, err error) {
	glog.V(1).Infof("GET %s", path)
	response, err := c.rest.R().
		SetContext(ctx).
		SetQueryParamsFromValues(parameters).
		Get(path)
	if err != nil {
		err = errors.Wrapf(err, "can't send request to '%s'", path)
		return
	}
	body = response.Body()
	status = response.StatusCode()
	return
}

func check(response *resty.Response, err error, path string) error {
	if err != nil {
		return errors.Wrapf(err, "can't send request to '%s'", path)
	}
	if response.IsError() {
		apiError := &APIError{
			Status: response.StatusCode(),
		}
		if body, ok := response.Error().(*errorBody); ok && body != nil {
			apiError.Reasons = body.Errors
		}
		return apiError
	}
	return nil
}
