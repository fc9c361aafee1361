// Copyright 2025 gorse Project Authors
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

package blob

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/gorse-io/cancerdata/config"
	"github.com/juju/errors"
)

const (
	S3Prefix    = "s3://"
	GCSPrefix   = "gcs://"
	AzurePrefix = "azblob://"
)

// Store is a read-only directory of named blobs.
type Store interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

var (
	_ Store = (*POSIX)(nil)
	_ Store = (*S3)(nil)
	_ Store = (*GCS)(nil)
	_ Store = (*AzureBlob)(nil)
)

// Open creates a store for a dataset location. Locations starting with s3://, gcs://
// or azblob:// are bucket (or container) plus prefix, anything else is a local directory.
func Open(location string, cfg *config.Config) (Store, error) {
	switch {
	case strings.HasPrefix(location, S3Prefix):
		bucket, prefix, err := parseLocation(location)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return NewS3(cfg.S3, bucket, prefix)
	case strings.HasPrefix(location, GCSPrefix):
		bucket, prefix, err := parseLocation(location)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return NewGCS(cfg.GCS, bucket, prefix)
	case strings.HasPrefix(location, AzurePrefix):
		container, prefix, err := parseLocation(location)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return NewAzureBlob(cfg.Azure, container, prefix)
	default:
		return NewPOSIX(location), nil
	}
}

func parseLocation(location string) (string, string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", errors.Trace(err)
	}
	if u.Host == "" {
		return "", "", errors.NotValidf("location %q without bucket", location)
	}
	return u.Host, strings.Trim(u.Path, "/"), nil
}
