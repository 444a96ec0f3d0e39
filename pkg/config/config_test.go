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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	//
	path := filepath.Join(t.TempDir(), "prover.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	//
	return path
}

func Test_Config_01(t *testing.T) {
	c := DefaultConfig()
	//
	require.NoError(t, c.Validate())
	assert.Equal(t, uint(6), c.Search.MaxDepth)
	assert.Equal(t, 10*time.Second, c.Search.Timeout)
	assert.Equal(t, "guided", c.Chooser.Name)
	assert.Equal(t, uint(1), c.Chooser.QuantifierBudget)
	assert.True(t, c.Library.Noisy)
	assert.Equal(t, "", c.ProofData.Path)
	assert.True(t, c.Fallback.Enabled)
	assert.Equal(t, uint(4), c.Parallelism)
}

func Test_Config_02(t *testing.T) {
	path := writeConfig(t, `
search:
  max_depth: 3
  timeout: 250ms
chooser:
  name: naive
parallelism: 1
`)
	//
	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, uint(3), c.Search.MaxDepth)
	assert.Equal(t, 250*time.Millisecond, c.Search.Timeout)
	assert.Equal(t, "naive", c.Chooser.Name)
	assert.Equal(t, uint(1), c.Parallelism)
	// Unspecified fields keep defaults
	assert.Equal(t, uint(1), c.Chooser.QuantifierBudget)
	assert.True(t, c.Fallback.Enabled)
}

func Test_Config_03(t *testing.T) {
	_, err := LoadFromFile(writeConfig(t, "chooser:\n  name: clever\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chooser.name fails oneof")
	//
	_, err = LoadFromFile(writeConfig(t, "search:\n  max_depth: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search.max_depth")
	//
	_, err = LoadFromFile(writeConfig(t, "search: [1, 2]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
	//
	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func Test_Config_04(t *testing.T) {
	var (
		c    = DefaultConfig()
		path = filepath.Join(t.TempDir(), "sub", "prover.yaml")
	)
	//
	c.Search.MaxDepth = 9
	c.ProofData.Path = "proofs"
	require.NoError(t, c.SaveToFile(path))
	//
	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}
