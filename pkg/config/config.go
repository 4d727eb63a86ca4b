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

// This file contains the types and functions used to manage the configuration of the command line
// client.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
)

// LocationEnv is the name of the environment variable that overrides the location of the
// configuration file.
const LocationEnv = "SHAPERCTL_CONFIG"

// APIKeyEnv is the name of the environment variable holding the Dashboard API key. When set it
// takes precedence over the key stored in the configuration file.
const APIKeyEnv = "MERAKI_DASHBOARD_API_KEY"

// Config is the type used to store the configuration of the client.
// nolint:lll
type Config struct {
	APIKey string `json:"api_key,omitempty" doc:"Meraki Dashboard API key."`
	URL    string `json:"url,omitempty" doc:"Base URL of the Dashboard API. Defaults to https://api.meraki.com/api/v1."`
	Org    string `json:"org,omitempty" doc:"Default organization identifier used when '--org' isn't given."`
}

// Load loads the configuration from the configuration file. If the configuration file doesn't
// exist it will return an empty configuration object.
func Load() (cfg *Config, err error) {
	file, err := Location()
	if err != nil {
		return
	}
	_, err = os.Stat(file)
	if os.IsNotExist(err) {
		cfg = &Config{}
		err = nil
		return
	}
	if err != nil {
		err = fmt.Errorf("can't check if config file '%s' exists: %v", file, err)
		return
	}
	// #nosec G304
	data, err := os.ReadFile(file)
	if err != nil {
		err = fmt.Errorf("can't read config file '%s': %v", file, err)
		return
	}
	cfg = &Config{}
	if len(data) == 0 {
		return
	}
	err = json.Unmarshal(data, cfg)
	if err != nil {
		err = fmt.Errorf("can't parse config file '%s': %v", file, err)
		return
	}
	return
}

// Save saves the given configuration to the configuration file.
func Save(cfg *Config) error {
	file, err := Location()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("can't marshal config: %v", err)
	}
	dir := filepath.Dir(file)
	err = os.MkdirAll(dir, os.FileMode(0755))
	if err != nil {
		return fmt.Errorf("can't create directory %s: %v", dir, err)
	}
	err = os.WriteFile(file, data, 0600)
	if err != nil {
		return fmt.Errorf("can't write file '%s': %v", file, err)
	}
	return nil
}

// Location returns the location of the configuration file. If a configuration file already exists
// in the HOME directory, it uses that, otherwise it prefers to use the XDG config directory.
func Location() (path string, err error) {
	if override := os.Getenv(LocationEnv); override != "" {
		return override, nil
	}

	// Determine home directory to use for the legacy file path:
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}

	path = filepath.Join(home, ".shaperctl.json")

	_, err = os.Stat(path)
	if os.IsNotExist(err) {
		// Determine standard config directory:
		configDir, err := os.UserConfigDir()
		if err != nil {
			return path, err
		}

		// Use standard config directory:
		path = filepath.Join(configDir, "shaperctl", "shaperctl.json")
	}

	return path, nil
}

// EffectiveAPIKey returns the API key to use for requests. The environment variable takes
// precedence over the stored key, so a key exported in the shell always wins.
func (c *Config) EffectiveAPIKey() string {
	if key := os.Getenv(APIKeyEnv); key != "" {
		return key
	}
	return c.APIKey
}

// Armed checks if the configuration contains an API key, so that it can be used to perform
// authenticated requests. If it isn't armed the returned reason describes what is missing.
func (c *Config) Armed() (armed bool, reason string) {
	armed = c.EffectiveAPIKey() != ""
	if !armed {
		reason = fmt.Sprintf(
			"API key isn't set, and the '%s' environment variable is empty",
			APIKeyEnv,
		)
	}
	return
}

// Disarm removes from the configuration all the settings that are needed for authentication.
func (c *Config) Disarm() {
	c.APIKey = ""
	c.URL = ""
	c.Org = ""
}
