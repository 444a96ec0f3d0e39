// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the complete configuration of a proving run.
type Config struct {
	Search      SearchConfig    `yaml:"search"`
	Chooser     ChooserConfig   `yaml:"chooser"`
	Library     LibraryConfig   `yaml:"library"`
	ProofData   ProofDataConfig `yaml:"proofdata"`
	Fallback    FallbackConfig  `yaml:"fallback"`
	Parallelism uint            `yaml:"parallelism" validate:"gte=1,lte=256"`
}

// SearchConfig bounds the search for each VC.
type SearchConfig struct {
	// MaxDepth is the maximum number of steps in a proof.
	MaxDepth uint `yaml:"max_depth" validate:"gte=1,lte=64"`
	// Timeout is the wall-clock budget per VC (0 for none).
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
}

// ChooserConfig selects the strategy ordering alternatives.
type ChooserConfig struct {
	Name string `yaml:"name" validate:"oneof=naive guided"`
	// QuantifierBudget bounds the steps introducing fresh quantified variables
	// on any proof path (guided only).
	QuantifierBudget uint `yaml:"quantifier_budget" validate:"lte=16"`
}

// LibraryConfig controls theorem library loading.
type LibraryConfig struct {
	// Noisy reports library rules which seed no transformation.
	Noisy bool `yaml:"noisy"`
}

// ProofDataConfig locates the prior proof data store.
type ProofDataConfig struct {
	// Path of the store directory (empty for an in-memory store).
	Path string `yaml:"path"`
}

// FallbackConfig controls the decision procedure used when search fails.
type FallbackConfig struct {
	Enabled bool `yaml:"enabled"`
	// MaxModels bounds the assignments refuted by the decision procedure.
	MaxModels uint `yaml:"max_models" validate:"gte=1"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() *Config {
	return &Config{
		Search:      SearchConfig{MaxDepth: 6, Timeout: 10 * time.Second},
		Chooser:     ChooserConfig{Name: "guided", QuantifierBudget: 1},
		Library:     LibraryConfig{Noisy: true},
		ProofData:   ProofDataConfig{Path: ""},
		Fallback:    FallbackConfig{Enabled: true, MaxModels: 256},
		Parallelism: 4,
	}
}

var validate = newValidator()

// Validate checks every field of this configuration is within range.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	//
	var verrs validator.ValidationErrors
	//
	if errors.As(err, &verrs) {
		msgs := make([]string, len(verrs))
		//
		for i, e := range verrs {
			msgs[i] = fmt.Sprintf("%s fails %s=%s (found %v)", fieldName(e), e.Tag(), e.Param(), e.Value())
		}
		//
		return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, ", "))
	}
	//
	return err
}

// LoadFromFile loads a configuration from a YAML file.  Fields not given in the
// file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	//
	config := DefaultConfig()
	//
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	} else if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	//
	return config, nil
}

// SaveToFile writes this configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	//
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	//
	return os.WriteFile(path, data, 0644)
}

// Report fields by their YAML path (e.g. search.max_depth).
func fieldName(e validator.FieldError) string {
	_, name, _ := strings.Cut(e.Namespace(), ".")
	return name
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	//
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		return name
	})
	//
	return v
}
