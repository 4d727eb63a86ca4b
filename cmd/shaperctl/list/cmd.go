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

package list

import (
	"github.com/spf13/cobra"

	"github.com/wifiops/shaperctl/cmd/shaperctl/list/networks"
	"github.com/wifiops/shaperctl/cmd/shaperctl/list/orgs"
	"github.com/wifiops/shaperctl/cmd/shaperctl/list/ssids"
)

var Cmd = &cobra.Command{
	Use:   "list RESOURCE",
	Short: "List resources",
	Long:  "Display a table of organizations, networks or SSIDs.",
}

func init() {
	Cmd.AddCommand(networks.Cmd)
	Cmd.AddCommand(orgs.Cmd)
	Cmd.AddCommand(ssids.Cmd)
}
