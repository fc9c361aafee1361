// Copyright 2020 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "config.toml")
	assert.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	data, err := os.ReadFile("config.toml.template")
	assert.NoError(t, err)
	text := string(data)
	text = strings.Replace(text, "dir = \".\"", "dir = \"s3://datasets/cancer\"", -1)
	text = strings.Replace(text, "endpoint = \"\"", "endpoint = \"localhost:9000\"", 1)
	text = strings.Replace(text, "use_ssl = true", "use_ssl = false", -1)

	config, err := LoadConfig(writeConfig(t, text))
	assert.NoError(t, err)
	// [dataset]
	assert.Equal(t, "s3://datasets/cancer", config.Dataset.Dir)
	assert.Equal(t, "breast-cancer.csv", config.Dataset.File)
	assert.Equal(t, int64(321), config.Dataset.Seed)
	assert.Equal(t, 0.2, config.Dataset.ValidRatio)
	assert.Equal(t, time.Minute, config.Dataset.Timeout)
	// [s3]
	assert.Equal(t, "localhost:9000", config.S3.Endpoint)
	assert.False(t, config.S3.UseSSL)
	// [gcs]
	assert.Empty(t, config.GCS.CredentialsFile)
	// [azure]
	assert.Empty(t, config.Azure.ConnectionString)
}

func TestLoadDefaultConfig(t *testing.T) {
	config, err := LoadConfig("")
	assert.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), config)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CANCERDATA_DATASET_DIR", "gcs://bucket/prefix")
	t.Setenv("CANCERDATA_DATASET_SEED", "42")
	t.Setenv("CANCERDATA_DATASET_VALID_RATIO", "0.5")
	t.Setenv("CANCERDATA_DATASET_TIMEOUT", "5s")
	t.Setenv("CANCERDATA_AZURE_CONNECTION_STRING", "UseDevelopmentStorage=true")

	config, err := LoadConfig(writeConfig(t, "[dataset]\nseed = 7\n"))
	assert.NoError(t, err)
	assert.Equal(t, "gcs://bucket/prefix", config.Dataset.Dir)
	assert.Equal(t, int64(42), config.Dataset.Seed)
	assert.Equal(t, 0.5, config.Dataset.ValidRatio)
	assert.Equal(t, 5*time.Second, config.Dataset.Timeout)
	assert.Equal(t, "UseDevelopmentStorage=true", config.Azure.ConnectionString)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "[dataset]\nvalid_ratio = 1.5\n"))
	assert.ErrorContains(t, err, "invalid config")
	_, err = LoadConfig(writeConfig(t, "[dataset]\nfile = \"\"\n"))
	assert.ErrorContains(t, err, "invalid config")
	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	config := GetDefaultConfig()
	assert.NoError(t, config.Validate())
	config.Dataset.ValidRatio = -0.1
	assert.Error(t, config.Validate())
	config = GetDefaultConfig()
	config.Dataset.Dir = ""
	assert.Error(t, config.Validate())
	config = GetDefaultConfig()
	config.Dataset.Seed = 4294967296
	assert.Error(t, config.Validate())
	config.Dataset.Seed = -1
	assert.Error(t, config.Validate())
	config.Dataset.Seed = 4294967295
	assert.NoError(t, config.Validate())
}
