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

package client

import (
	"github.com/duriantang/quill/internal/bytesconv"
	"github.com/duriantang/quill/internal/bytestr"
	errs "github.com/duriantang/quill/pkg/common/errors"
)

type transferMode int

const (
	modeEOF transferMode = iota
	modeLength
	modeChunked
)

// TransferEncoding applies one wire-framing discipline to body bytes and
// appends the result to the shared buffer. The mode is fixed at selection
// time and never changes mid-request.
type TransferEncoding struct {
	mode transferMode
	buf  *SharedBytes

	remaining  uint64 // modeLength
	terminated bool   // modeChunked

	hexBuf [16]byte // scratch for chunk size lines
}

// eofTransfer writes bytes through unframed; the body ends with the
// connection or with an outer protocol's own framing.
func eofTransfer(buf *SharedBytes) *TransferEncoding {
	return &TransferEncoding{mode: modeEOF, buf: buf}
}

// lengthTransfer enforces an exact body length of n bytes.
func lengthTransfer(buf *SharedBytes, n uint64) *TransferEncoding {
	return &TransferEncoding{mode: modeLength, buf: buf, remaining: n}
}

// chunkedTransfer emits HTTP/1.1 chunked framing.
func chunkedTransfer(buf *SharedBytes) *TransferEncoding {
	return &TransferEncoding{mode: modeChunked, buf: buf}
}

func (te *TransferEncoding) Write(p []byte) (int, error) {
	switch te.mode {
	case modeLength:
		if uint64(len(p)) > te.remaining {
			return 0, errs.ErrBodyTooLong
		}
		te.remaining -= uint64(len(p))
		te.buf.Append(p)
	case modeChunked:
		if len(p) == 0 {
			return 0, nil
		}
		te.buf.Append(bytesconv.AppendHexUint(te.hexBuf[:0], len(p)))
		te.buf.Append(bytestr.StrCRLF)
		te.buf.Append(p)
		te.buf.Append(bytestr.StrCRLF)
	default:
		te.buf.Append(p)
	}
	return len(p), nil
}

// WriteEOF terminates the framing. A length-framed body finalized before
// the declared length has been written fails with errs.ErrBodyIncomplete.
func (te *TransferEncoding) WriteEOF() error {
	switch te.mode {
	case modeLength:
		if te.remaining != 0 {
			return errs.ErrBodyIncomplete
		}
	case modeChunked:
		if !te.terminated {
			te.buf.Append(bytestr.StrChunkedTerminator)
			te.terminated = true
		}
	}
	return nil
}

// IsEOF reports whether the framing owes no further bytes.
func (te *TransferEncoding) IsEOF() bool {
	switch te.mode {
	case modeLength:
		return te.remaining == 0
	case modeChunked:
		return te.terminated
	default:
		return true
	}
}
