/*
 * Copyright 2023 Quill Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package protocol

import (
	"testing"

	"github.com/duriantang/quill/pkg/common/test/assert"
)

func TestRequestBodyKinds(t *testing.T) {
	var req Request
	assert.DeepEqual(t, BodyKindNone, req.BodyKind())
	assert.False(t, req.HasDeferredBody())

	req.SetBody([]byte("payload"))
	assert.DeepEqual(t, BodyKindBinary, req.BodyKind())
	assert.DeepEqual(t, []byte("payload"), req.BodyBytes())

	req.SetBodyStream()
	assert.DeepEqual(t, BodyKindStream, req.BodyKind())
	assert.True(t, req.HasDeferredBody())
	assert.Nil(t, req.BodyBytes())

	ch := make(chan []byte)
	req.SetBodyChannel(ch)
	assert.DeepEqual(t, BodyKindChannel, req.BodyKind())
	assert.True(t, req.HasDeferredBody())
	assert.NotNil(t, req.BodyChannel())
}

func TestRequestSetBodyRawNoCopy(t *testing.T) {
	var req Request
	raw := []byte("raw bytes")
	req.SetBodyRaw(raw)
	got := req.BodyBytes()
	assert.Assert(t, &got[0] == &raw[0])
}

func TestRequestTakeBody(t *testing.T) {
	var req Request
	req.SetBody([]byte("gone"))
	b := req.TakeBody()
	assert.DeepEqual(t, []byte("gone"), b)
	assert.DeepEqual(t, BodyKindNone, req.BodyKind())
	assert.Nil(t, req.BodyBytes())
}

func TestRequestReset(t *testing.T) {
	var req Request
	req.Header.SetMethod("POST")
	req.SetBody([]byte("x"))
	req.SetUpgrade(true)
	req.SetChunked(true)
	req.SetContentEncoding(EncodingGzip)

	req.Reset()
	assert.DeepEqual(t, BodyKindNone, req.BodyKind())
	assert.False(t, req.IsUpgrade())
	assert.False(t, req.IsChunked())
	assert.DeepEqual(t, EncodingAuto, req.ContentEncoding())
}

func TestVersionTraits(t *testing.T) {
	assert.True(t, VersionHTTP11.SupportsChunkedTransfer())
	assert.False(t, VersionHTTP10.SupportsChunkedTransfer())
	assert.False(t, VersionHTTP2.SupportsChunkedTransfer())
	assert.True(t, VersionHTTP2.Multiplexed())
	assert.DeepEqual(t, "HTTP/1.1", VersionHTTP11.String())
	assert.DeepEqual(t, []byte("HTTP/1.0"), VersionHTTP10.Bytes())
}

func TestContentEncodingTraits(t *testing.T) {
	assert.True(t, EncodingGzip.IsCompression())
	assert.True(t, EncodingDeflate.IsCompression())
	assert.True(t, EncodingBr.IsCompression())
	assert.False(t, EncodingIdentity.IsCompression())
	assert.False(t, EncodingAuto.IsCompression())
	assert.DeepEqual(t, []byte("gzip"), EncodingGzip.Bytes())
	assert.DeepEqual(t, "br", EncodingBr.String())
}
