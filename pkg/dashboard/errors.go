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
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is the error returned when the Dashboard answers a request with an error status. The
// reasons are taken from the `errors` list of the response body, when present.
type APIError struct {
	Status  int
	Reasons []string
}

func (e *APIError) Error() string {
	text := fmt.Sprintf("the Dashboard answered with status %d", e.Status)
	if len(e.Reasons) > 0 {
		text = fmt.Sprintf("%s: %s", text, strings.Join(e.Reasons, ", "))
	}
	return text
}

// errorBody is the shape of the Dashboard error responses.
type errorBody struct {
	Errors []string `json:"errors"`
}

func statusIs(err error, statuses ...int) bool {
	var apiError *APIError
	if !errors.As(err, &apiError) {
		return false
	}
	for _, status := range statuses {
		if apiError.Status == status {
			return true
		}
	}
	return false
}

// IsUnauthorized reports whether the error means the API key was rejected.
func IsUnauthorized(err error) bool {
	return statusIs(err, http.StatusUnauthorized, http.StatusForbidden)
}

// IsNotFound reports whether the error means the requested organization, network or SSID doesn't
// exist.
func IsNotFound(err error) bool {
	return statusIs(err, http.StatusNotFound)
}

// IsValidation reports whether the error means the Dashboard rejected a field value.
func IsValidation(err error) bool {
	return statusIs(err, http.StatusBadRequest)
}
