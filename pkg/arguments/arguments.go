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

// This file contains functions that add common arguments to the command line.

package arguments

import (
	"net/url"
	"strings"

	"github.com/spf13/pflag"

	"github.com/wifiops/shaperctl/pkg/debug"
)

// AddDebugFlag adds the '--debug' flag to the given set of command line flags.
func AddDebugFlag(fs *pflag.FlagSet) {
	debug.AddFlag(fs)
}

// AddOrgFlag adds the '--org' flag to the given set of command line flags.
func AddOrgFlag(fs *pflag.FlagSet, value *string) {
	fs.StringVar(
		value,
		"org",
		"",
		"Organization identifier. When omitted the default organization from the "+
			"configuration is used, and failing that the single organization "+
			"visible to the API key.",
	)
}

// AddParameterFlag adds the '--parameter' flag to the given set of command line flags.
func AddParameterFlag(fs *pflag.FlagSet, values *[]string) {
	fs.StringArrayVar(
		values,
		"parameter",
		nil,
		"Query parameters to add to the request. The value must be the name of the "+
			"parameter, followed by an optional equals sign and then the value "+
			"of the parameter. Can be used multiple times to specify multiple "+
			"parameters or multiple values for the same parameter. Example: "+
			"--parameter perPage=100",
	)
}

// ParseParameterFlag converts the raw values of the '--parameter' flag into URL query parameters.
func ParseParameterFlag(values []string) url.Values {
	parameters := url.Values{}
	for _, value := range values {
		name, parameter, found := strings.Cut(value, "=")
		if !found {
			parameter = ""
		}
		parameters.Add(name, parameter)
	}
	return parameters
}
