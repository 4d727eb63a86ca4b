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

package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wifiops/shaperctl/cmd/shaperctl/config/get"
	"github.com/wifiops/shaperctl/cmd/shaperctl/config/set"
	"github.com/wifiops/shaperctl/pkg/config"
)

func configVarDocs() string {
	configType := reflect.TypeOf(config.Config{})
	fieldHelps := make([]string, configType.NumField())
	for i := 0; i < len(fieldHelps); i++ {
		tag := configType.Field(i).Tag
		name := strings.Split(tag.Get("json"), ",")[0]
		doc := tag.Get("doc")
		fieldHelps[i] = fmt.Sprintf("\t%-15s%s", name, doc)
	}
	return strings.Join(fieldHelps, "\n")
}

func longHelp() string {
	loc, err := config.Location()
	if err != nil {
		loc = fmt.Sprintf("UNKNOWN (%s)", err)
	}
	return fmt.Sprintf(`Get or set variables from a configuration file.

The location of the configuration file is gleaned from the '%s' environment variable,
or ~/.shaperctl.json if that variable is unset. Currently using: %s

The following variables are supported:

%s`, config.LocationEnv, loc, configVarDocs())
}

var Cmd = &cobra.Command{
	Use:   "config COMMAND VARIABLE",
	Short: "Get or set configuration variables",
	Long:  longHelp(),
}

func init() {
	Cmd.AddCommand(get.Cmd)
	Cmd.AddCommand(set.Cmd)
}
