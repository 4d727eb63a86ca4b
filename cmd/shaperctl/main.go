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

package main

import (
	"flag"
	"fmt"
	"os"

	_ "github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wifiops/shaperctl/cmd/shaperctl/clear"
	configcmd "github.com/wifiops/shaperctl/cmd/shaperctl/config"
	"github.com/wifiops/shaperctl/cmd/shaperctl/get"
	"github.com/wifiops/shaperctl/cmd/shaperctl/list"
	"github.com/wifiops/shaperctl/cmd/shaperctl/login"
	"github.com/wifiops/shaperctl/cmd/shaperctl/logout"
	"github.com/wifiops/shaperctl/cmd/shaperctl/scan"
	"github.com/wifiops/shaperctl/cmd/shaperctl/version"
	"github.com/wifiops/shaperctl/pkg/arguments"
)

var root = &cobra.Command{
	Use:          "shaperctl",
	Long:         "Command line tool for finding and clearing SSID bandwidth limits in the Meraki Dashboard.",
	SilenceUsage: true,
}

func init() {
	// Send logs to the standard error stream by default:
	err := flag.Set("logtostderr", "true")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Can't set default error stream: %v\n", err)
		os.Exit(1)
	}

	// Register the options that are managed by the 'flag' package, so that they will also be
	// parsed by the 'pflag' package:
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)

	// Add the command line flags:
	fs := root.PersistentFlags()
	arguments.AddDebugFlag(fs)

	// Register the subcommands:
	root.AddCommand(clear.Cmd)
	root.AddCommand(configcmd.Cmd)
	root.AddCommand(get.Cmd)
	root.AddCommand(list.Cmd)
	root.AddCommand(login.Cmd)
	root.AddCommand(logout.Cmd)
	root.AddCommand(scan.Cmd)
	root.AddCommand(version.Cmd)
}

func main() {
	// This is needed to make `glog` believe that the flags have already been parsed, otherwise
	// every log message is prefixed by an error message stating that the flags haven't been
	// parsed.
	err := flag.CommandLine.Parse([]string{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Can't parse empty command line to satisfy 'glog': %v\n", err)
		os.Exit(1)
	}

	// Execute the root command:
	root.SetArgs(os.Args[1:])
	if err = root.Execute(); err != nil {
		os.Exit(1)
	}
}
