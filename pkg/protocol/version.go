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

import "github.com/duriantang/quill/internal/bytestr"

// Version identifies the HTTP protocol version a request is written
// against. The zero value is HTTP/1.1.
type Version int

const (
	VersionHTTP11 Version = iota
	VersionHTTP10
	VersionHTTP2
)

func (v Version) String() string {
	switch v {
	case VersionHTTP10:
		return "HTTP/1.0"
	case VersionHTTP2:
		return "HTTP/2.0"
	default:
		return "HTTP/1.1"
	}
}

// Bytes returns the version token used on the request line.
func (v Version) Bytes() []byte {
	switch v {
	case VersionHTTP10:
		return bytestr.StrHTTP10
	case VersionHTTP2:
		return bytestr.StrHTTP2
	default:
		return bytestr.StrHTTP11
	}
}

// SupportsChunkedTransfer reports whether chunked transfer coding is
// available. Only HTTP/1.1 defines it; HTTP/2 has its own framing and
// HTTP/1.0 peers cannot parse chunks.
func (v Version) SupportsChunkedTransfer() bool {
	return v == VersionHTTP11
}

// Multiplexed reports whether the version runs several exchanges over one
// connection, which rules out HTTP/1.x connection upgrades.
func (v Version) Multiplexed() bool {
	return v == VersionHTTP2
}
