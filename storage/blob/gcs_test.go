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
	"testing"

	"github.com/fsouza/fake-gcs-server/fakestorage"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestGCS(t *testing.T) {
	server, err := fakestorage.NewServerWithOptions(fakestorage.Options{
		NoListener: true,
		InitialObjects: []fakestorage.Object{
			{
				ObjectAttrs: fakestorage.ObjectAttrs{
					BucketName: "cancerdata-test",
					Name:       "blob/test.txt",
				},
				Content: []byte("hello"),
			},
		},
	})
	assert.NoError(t, err)
	defer server.Stop()

	client := NewGCSWithClient(server.Client(), "cancerdata-test", "blob")
	assert.Equal(t, "gcs://cancerdata-test/blob", client.String())

	// read file
	r, err := client.Open(context.Background(), "test.txt")
	assert.NoError(t, err)
	data, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.NoError(t, r.Close())

	// read missing file
	_, err = client.Open(context.Background(), "missing.txt")
	assert.True(t, errors.Is(err, errors.NotFound))
}
