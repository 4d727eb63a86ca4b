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
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2" // nolint
	. "github.com/onsi/gomega"    // nolint
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config")
}

var _ = Describe("Location", func() {
	It("Honours the environment override", func() {
		file := filepath.Join(GinkgoT().TempDir(), "my-config.json")
		GinkgoT().Setenv(LocationEnv, file)
		location, err := Location()
		Expect(err).ToNot(HaveOccurred())
		Expect(location).To(Equal(file))
	})
})

var _ = Describe("Load and save", func() {
	var file string

	BeforeEach(func() {
		file = filepath.Join(GinkgoT().TempDir(), "shaperctl.json")
		GinkgoT().Setenv(LocationEnv, file)
	})

	It("Returns an empty configuration when the file doesn't exist", func() {
		cfg, err := Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg).ToNot(BeNil())
		Expect(cfg.APIKey).To(BeEmpty())
	})

	It("Round trips the configuration", func() {
		err := Save(&Config{
			APIKey: "my-key",
			URL:    "http://my-server.example.com",
			Org:    "my-org",
		})
		Expect(err).ToNot(HaveOccurred())
		cfg, err := Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.APIKey).To(Equal("my-key"))
		Expect(cfg.URL).To(Equal("http://my-server.example.com"))
		Expect(cfg.Org).To(Equal("my-org"))
	})

	It("Fails on a corrupted file", func() {
		err := os.WriteFile(file, []byte("{not json"), 0600)
		Expect(err).ToNot(HaveOccurred())
		_, err = Load()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("can't parse"))
	})
})

var _ = Describe("Armed", func() {
	BeforeEach(func() {
		GinkgoT().Setenv(APIKeyEnv, "")
	})

	It("Is armed when the configuration contains a key", func() {
		cfg := &Config{APIKey: "my-key"}
		armed, reason := cfg.Armed()
		Expect(armed).To(BeTrue())
		Expect(reason).To(BeEmpty())
	})

	It("Is armed when only the environment contains a key", func() {
		GinkgoT().Setenv(APIKeyEnv, "env-key")
		cfg := &Config{}
		armed, reason := cfg.Armed()
		Expect(armed).To(BeTrue())
		Expect(reason).To(BeEmpty())
		Expect(cfg.EffectiveAPIKey()).To(Equal("env-key"))
	})

	It("Prefers the environment key over the stored one", func() {
		GinkgoT().Setenv(APIKeyEnv, "env-key")
		cfg := &Config{APIKey: "stored-key"}
		Expect(cfg.EffectiveAPIKey()).To(Equal("env-key"))
	})

	It("Isn't armed without a key", func() {
		cfg := &Config{}
		armed, reason := cfg.Armed()
		Expect(armed).To(BeFalse())
		Expect(reason).To(ContainSubstring("API key isn't set"))
	})

	It("Isn't armed after disarming", func() {
		cfg := &Config{APIKey: "my-key", Org: "my-org"}
		cfg.Disarm()
		armed, _ := cfg.Armed()
		Expect(armed).To(BeFalse())
		Expect(cfg.Org).To(BeEmpty())
	})
})
