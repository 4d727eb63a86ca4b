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

package get

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wifiops/shaperctl/pkg/arguments"
	"github.com/wifiops/shaperctl/pkg/dashboard"
	"github.com/wifiops/shaperctl/pkg/dump"
)

var args struct {
	parameter []string
	single    bool
}

var Cmd = &cobra.Command{
	Use:   "get PATH",
	Short: "Send a GET request",
	Long: "Send a GET request to the given Dashboard API path, for example " +
		"'/organizations', and print the response body.",
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	fs := Cmd.Flags()
	arguments.AddParameterFlag(fs, &args.parameter)
	fs.BoolVar(
		&args.single,
		"single",
		false,
		"Return the output as a single line.",
	)
}

func run(cmd *cobra.Command, argv []string) error {
	// Create the client for the Dashboard API:
	client, err := dashboard.NewClient().Build()
	if err != nil {
		return err
	}

	// Send the request:
	parameters := arguments.ParseParameterFlag(args.parameter)
	body, status, err := client.Get(cmd.Context(), argv[0], parameters)
	if err != nil {
		return fmt.Errorf("Can't send request: %v", err)
	}
	if status < 400 {
		if args.single {
			err = dump.Single(os.Stdout, body)
		} else {
			err = dump.Pretty(os.Stdout, body)
		}
	} else {
		if args.single {
			err = dump.Single(os.Stderr, body)
		} else {
			err = dump.Pretty(os.Stderr, body)
		}
	}
	if err != nil {
		return fmt.Errorf("Can't print body: %v", err)
	}

	// Bye:
	if status >= 400 {
		os.Exit(1)
	}

	return nil
}
