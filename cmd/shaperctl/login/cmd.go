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

package login

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wifiops/shaperctl/pkg/config"
	"github.com/wifiops/shaperctl/pkg/dashboard"
)

var args struct {
	apiKey string
	url    string
	org    string
}

var Cmd = &cobra.Command{
	Use:   "login",
	Short: "Save the Dashboard API key",
	Long: "Validate the Meraki Dashboard API key and save it to the configuration file used " +
		"by all other commands.",
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	fs := Cmd.Flags()
	fs.StringVar(
		&args.apiKey,
		"api-key",
		"",
		"Dashboard API key. When omitted the key is read from the '"+config.APIKeyEnv+
			"' environment variable, and failing that prompted for.",
	)
	fs.StringVar(
		&args.url,
		"url",
		dashboard.DefaultURL,
		"Base URL of the Dashboard API.",
	)
	fs.StringVar(
		&args.org,
		"org",
		"",
		"Default organization identifier saved for later commands.",
	)
}

func run(cmd *cobra.Command, argv []string) error {
	key := args.apiKey
	if key == "" {
		key = os.Getenv(config.APIKeyEnv)
	}
	if key == "" {
		prompt := &survey.Password{
			Message: "Dashboard API key:",
		}
		err := survey.AskOne(prompt, &key, survey.WithValidator(survey.Required))
		if err != nil {
			return err
		}
	}

	cfg := &config.Config{
		APIKey: key,
		URL:    args.url,
		Org:    args.org,
	}

	// Check that the key actually works before saving it:
	client, err := dashboard.NewClient().Config(cfg).Build()
	if err != nil {
		return err
	}
	organizations, err := client.Organizations(cmd.Context())
	if err != nil {
		if dashboard.IsUnauthorized(err) {
			return errors.New("the Dashboard rejected the API key")
		}
		return errors.Wrap(err, "can't verify the API key")
	}

	err = config.Save(cfg)
	if err != nil {
		return errors.Wrap(err, "can't save config file")
	}

	fmt.Printf("Logged in, %d organizations visible.\n", len(organizations))
	return nil
}
