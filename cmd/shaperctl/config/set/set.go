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

package set

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wifiops/shaperctl/pkg/config"
)

var Cmd = &cobra.Command{
	Use:   "set VARIABLE VALUE",
	Short: "Sets the variable's value",
	Args:  cobra.MinimumNArgs(2),
	RunE:  run,
}

func run(cmd *cobra.Command, argv []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("can't load config file: %v", err)
	}
	value := argv[1]

	switch argv[0] {
	case "api_key":
		cfg.APIKey = value
	case "url":
		cfg.URL = value
	case "org":
		cfg.Org = value
	default:
		return fmt.Errorf("unknown setting")
	}

	err = config.Save(cfg)
	if err != nil {
		return fmt.Errorf("can't save config file: %v", err)
	}

	return nil
}
