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
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/juju/errors"
	"github.com/spf13/viper"
)

const (
	DefaultDataFile   = "breast-cancer.csv"
	DefaultSeed       = 321
	DefaultValidRatio = 0.2

	envPrefix = "CANCERDATA"
)

// Config is the configuration for cancerdata.
type Config struct {
	Dataset DatasetConfig   `mapstructure:"dataset"`
	S3      S3Config        `mapstructure:"s3"`
	GCS     GCSConfig       `mapstructure:"gcs"`
	Azure   AzureBlobConfig `mapstructure:"azure"`
}

// DatasetConfig locates the dataset and controls how it is split.
type DatasetConfig struct {
	// Dir is a local directory or a blob location such as s3://bucket/prefix.
	Dir        string        `mapstructure:"dir" validate:"required"`
	File       string        `mapstructure:"file" validate:"required"`
	Seed       int64         `mapstructure:"seed" validate:"gte=0,lte=4294967295"`
	ValidRatio float64       `mapstructure:"valid_ratio" validate:"gte=0,lte=1"`
	Timeout    time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

type GCSConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
}

type AzureBlobConfig struct {
	AccountName      string `mapstructure:"account_name"`
	AccountKey       string `mapstructure:"account_key"`
	ConnectionString string `mapstructure:"connection_string"`
	Endpoint         string `mapstructure:"endpoint"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Dir:        ".",
			File:       DefaultDataFile,
			Seed:       DefaultSeed,
			ValidRatio: DefaultValidRatio,
			Timeout:    time.Minute,
		},
		S3: S3Config{
			UseSSL: true,
		},
	}
}

func (config *Config) Validate() error {
	validate := validator.New()
	return validate.Struct(config)
}

func setDefault() {
	defaultConfig := GetDefaultConfig()
	// [dataset]
	viper.SetDefault("dataset.dir", defaultConfig.Dataset.Dir)
	viper.SetDefault("dataset.file", defaultConfig.Dataset.File)
	viper.SetDefault("dataset.seed", defaultConfig.Dataset.Seed)
	viper.SetDefault("dataset.valid_ratio", defaultConfig.Dataset.ValidRatio)
	viper.SetDefault("dataset.timeout", defaultConfig.Dataset.Timeout)
	// [s3]
	viper.SetDefault("s3.use_ssl", defaultConfig.S3.UseSSL)
}

type configBinding struct {
	key string
	env string
}

func bindings() []configBinding {
	keys := []string{
		"dataset.dir",
		"dataset.file",
		"dataset.seed",
		"dataset.valid_ratio",
		"dataset.timeout",
		"s3.endpoint",
		"s3.access_key_id",
		"s3.secret_access_key",
		"s3.use_ssl",
		"gcs.credentials_file",
		"azure.account_name",
		"azure.account_key",
		"azure.connection_string",
		"azure.endpoint",
	}
	result := make([]configBinding, 0, len(keys))
	for _, key := range keys {
		result = append(result, configBinding{
			key: key,
			env: envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_")),
		})
	}
	return result
}

// LoadConfig loads configuration from a file. An empty path loads defaults and
// environment variables only.
func LoadConfig(path string) (*Config, error) {
	viper.Reset()
	setDefault()
	for _, binding := range bindings() {
		if err := viper.BindEnv(binding.key, binding.env); err != nil {
			return nil, errors.Trace(err)
		}
	}
	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, errors.Trace(err)
		}
	}
	var conf Config
	if err := viper.Unmarshal(&conf, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, errors.Trace(err)
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Annotate(err, "invalid config")
	}
	return &conf, nil
}
