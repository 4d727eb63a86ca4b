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

package clear

import (
	"github.com/spf13/cobra"

	"github.com/wifiops/shaperctl/cmd/shaperctl/clear/all"
	"github.com/wifiops/shaperctl/cmd/shaperctl/clear/limits"
	"github.com/wifiops/shaperctl/cmd/shaperctl/clear/shaping"
)

var Cmd = &cobra.Command{
	Use:   "clear RESOURCE",
	Short: "Clear bandwidth limits or traffic shaping rules",
	Long: "Clear SSID bandwidth limits or traffic shaping rules. Every clearing command asks " +
		"for confirmation twice before changing anything, and there is no undo.",
}

func init() {
	Cmd.AddCommand(all.Cmd)
	Cmd.AddCommand(limits.Cmd)
	Cmd.AddCommand(shaping.Cmd)
}
