// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avltree.yaml"

type StressConfig struct {
	Ops         int    `yaml:"ops"`
	KeySpace    int    `yaml:"key_space"`
	Seed        uint64 `yaml:"seed"`
	VerifyEvery int    `yaml:"verify_every"`
	Progress    bool   `yaml:"progress"`
}

type ReplConfig struct {
	RenderValues bool `yaml:"render_values"`
	CacheMinutes int  `yaml:"cache_minutes"`
}

type Config struct {
	Stress StressConfig `yaml:"stress"`
	Repl   ReplConfig   `yaml:"repl"`
}

var defaultConfig = Config{
	Stress: StressConfig{
		Ops:         100000,
		KeySpace:    10000,
		Seed:        1,
		VerifyEvery: 100,
		Progress:    true,
	},
	Repl: ReplConfig{
		RenderValues: false,
		CacheMinutes: 30,
	},
}

// LoadConfig reads ~/.avltree.yaml, falling back to the defaults when the
// file is missing or unreadable.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaults(), nil
	}

	// start from the defaults so omitted keys keep their default values
	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults(), fmt.Errorf("failed to parse %s: %v", configPath, err)
	}
	config.sanitize()
	return config, nil
}

func defaults() *Config {
	c := defaultConfig
	return &c
}

// sanitize replaces values that cannot drive a run with their defaults
func (c *Config) sanitize() {
	if c.Stress.Ops < 0 {
		c.Stress.Ops = defaultConfig.Stress.Ops
	}
	if c.Stress.KeySpace <= 0 {
		c.Stress.KeySpace = defaultConfig.Stress.KeySpace
	}
	if c.Stress.VerifyEvery <= 0 {
		c.Stress.VerifyEvery = defaultConfig.Stress.VerifyEvery
	}
	if c.Repl.CacheMinutes <= 0 {
		c.Repl.CacheMinutes = defaultConfig.Repl.CacheMinutes
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}
	return writeConfigFile(configPath, &defaultConfig)
}

func writeConfigFile(configPath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}
	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 avltree Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🎲 %sStress runs:%s\n", Green, Reset)
	fmt.Printf("  • %sops%s: %d\n", Green, Reset, config.Stress.Ops)
	fmt.Printf("    Random operations per run\n")
	fmt.Printf("  • %skey_space%s: %d\n", Green, Reset, config.Stress.KeySpace)
	fmt.Printf("    Keys are drawn from [0, key_space)\n")
	fmt.Printf("  • %sseed%s: %d\n", Green, Reset, config.Stress.Seed)
	fmt.Printf("  • %sverify_every%s: %d\n", Green, Reset, config.Stress.VerifyEvery)
	fmt.Printf("    Full invariant check after this many operations\n")
	fmt.Printf("  • %sprogress%s: %t\n\n", Green, Reset, config.Stress.Progress)

	fmt.Printf("🌳 %sREPL:%s\n", Green, Reset)
	fmt.Printf("  • %srender_values%s: %t\n", Green, Reset, config.Repl.RenderValues)
	fmt.Printf("    Show values, heights and sizes in the tree diagram\n")
	fmt.Printf("  • %scache_minutes%s: %d\n\n", Green, Reset, config.Repl.CacheMinutes)

	fmt.Printf("💡 To change a setting, edit %s, for example:\n", configPath)
	fmt.Printf("   stress:\n     ops: 5000\n     verify_every: 10\n\n")
}
