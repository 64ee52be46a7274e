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

// Package bytestr defines some common bytes
package bytestr

import (
	"github.com/duriantang/quill/pkg/protocol/consts"
)

var (
	StrCRLF       = []byte("\r\n")
	StrColonSpace = []byte(": ")
	StrSpace      = []byte(" ")

	StrChunkedTerminator = []byte("0\r\n\r\n")

	StrConnection       = []byte(consts.HeaderConnection)
	StrContentLength    = []byte(consts.HeaderContentLength)
	StrContentEncoding  = []byte(consts.HeaderContentEncoding)
	StrTransferEncoding = []byte(consts.HeaderTransferEncoding)
	StrDate             = []byte(consts.HeaderDate)

	StrClose     = []byte("close")
	StrGzip      = []byte("gzip")
	StrDeflate   = []byte("deflate")
	StrBr        = []byte("br")
	StrIdentity  = []byte("identity")
	StrKeepAlive = []byte("keep-alive")
	StrUpgrade   = []byte("upgrade")
	StrChunked   = []byte("chunked")

	StrHTTP10 = []byte("HTTP/1.0")
	StrHTTP11 = []byte("HTTP/1.1")
	StrHTTP2  = []byte("HTTP/2.0")
)
