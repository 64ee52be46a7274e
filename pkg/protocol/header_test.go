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
	"github.com/duriantang/quill/pkg/protocol/consts"
)

func TestRequestHeaderDefaults(t *testing.T) {
	var h RequestHeader
	assert.DeepEqual(t, []byte(consts.MethodGet), h.Method())
	assert.DeepEqual(t, []byte("/"), h.RequestURI())
	assert.DeepEqual(t, VersionHTTP11, h.Version())
}

func TestRequestHeaderPeekCaseInsensitive(t *testing.T) {
	var h RequestHeader
	h.Set("Content-Type", "text/plain")
	assert.DeepEqual(t, []byte("text/plain"), h.Peek("content-type"))
	assert.DeepEqual(t, []byte("text/plain"), h.Peek("CONTENT-TYPE"))
	assert.Nil(t, h.Peek("Content-Length"))
}

func TestRequestHeaderAddKeepsDuplicates(t *testing.T) {
	var h RequestHeader
	h.Add("Cookie", "a=1")
	h.Add("Cookie", "b=2")
	assert.DeepEqual(t, 2, h.Len())

	var got []string
	h.VisitAll(func(key, value []byte) {
		got = append(got, string(key)+"="+string(value))
	})
	assert.DeepEqual(t, []string{"Cookie=a=1", "Cookie=b=2"}, got)
}

func TestRequestHeaderSetReplacesAll(t *testing.T) {
	var h RequestHeader
	h.Add("X-Trace", "one")
	h.Add("X-Trace", "two")
	h.Set("x-trace", "three")
	assert.DeepEqual(t, 1, h.Len())
	assert.DeepEqual(t, []byte("three"), h.Peek("X-Trace"))
}

func TestRequestHeaderSetContentLength(t *testing.T) {
	var h RequestHeader
	h.SetContentLength(12345)
	assert.DeepEqual(t, []byte("12345"), h.Peek(consts.HeaderContentLength))
}

func TestRequestHeaderDel(t *testing.T) {
	var h RequestHeader
	h.Add("Transfer-Encoding", "chunked")
	h.Add("Host", "example.com")
	h.Del("transfer-encoding")
	assert.Nil(t, h.Peek("Transfer-Encoding"))
	assert.DeepEqual(t, []byte("example.com"), h.Peek("Host"))
}

func TestRequestHeaderReset(t *testing.T) {
	var h RequestHeader
	h.SetMethod(consts.MethodPost)
	h.SetRequestURI("/upload")
	h.SetVersion(VersionHTTP10)
	h.Add("Host", "example.com")
	h.Reset()
	assert.DeepEqual(t, []byte(consts.MethodGet), h.Method())
	assert.DeepEqual(t, []byte("/"), h.RequestURI())
	assert.DeepEqual(t, VersionHTTP11, h.Version())
	assert.DeepEqual(t, 0, h.Len())
}
