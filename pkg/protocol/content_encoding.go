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

// ContentEncoding selects the content coding applied to an outgoing body.
// The zero value EncodingAuto lets the writer decide from the request.
type ContentEncoding int

const (
	EncodingAuto ContentEncoding = iota
	EncodingIdentity
	EncodingDeflate
	EncodingGzip
	EncodingBr
)

// IsCompression reports whether the encoding transforms the payload.
func (ce ContentEncoding) IsCompression() bool {
	switch ce {
	case EncodingDeflate, EncodingGzip, EncodingBr:
		return true
	}
	return false
}

func (ce ContentEncoding) String() string {
	return string(ce.Bytes())
}

// Bytes returns the Content-Encoding header value for the coding.
func (ce ContentEncoding) Bytes() []byte {
	switch ce {
	case EncodingDeflate:
		return bytestr.StrDeflate
	case EncodingGzip:
		return bytestr.StrGzip
	case EncodingBr:
		return bytestr.StrBr
	default:
		return bytestr.StrIdentity
	}
}
