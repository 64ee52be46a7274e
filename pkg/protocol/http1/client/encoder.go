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
	"compress/flate"
	"compress/gzip"

	"github.com/andybalholm/brotli"

	"github.com/duriantang/quill/internal/bytesconv"
	"github.com/duriantang/quill/pkg/common/compress"
	"github.com/duriantang/quill/pkg/common/config"
	"github.com/duriantang/quill/pkg/common/hlog"
	"github.com/duriantang/quill/pkg/protocol"
	"github.com/duriantang/quill/pkg/protocol/consts"
)

// ContentEncoder runs body bytes through an optional compression codec
// before handing them to the transfer framer. At most one codec writer is
// active; identity goes straight to the framer.
type ContentEncoder struct {
	te *TransferEncoding

	gzw *gzip.Writer
	flw *flate.Writer
	brw *brotli.Writer

	level   int
	quality int
}

func (e *ContentEncoder) Write(p []byte) (int, error) {
	switch {
	case e.gzw != nil:
		return e.gzw.Write(p)
	case e.flw != nil:
		return e.flw.Write(p)
	case e.brw != nil:
		return e.brw.Write(p)
	}
	return e.te.Write(p)
}

// WriteEOF flushes the codec trailer, returns the codec writer to its
// pool and finalizes the framer.
func (e *ContentEncoder) WriteEOF() error {
	switch {
	case e.gzw != nil:
		if err := e.gzw.Close(); err != nil {
			return err
		}
		compress.ReleaseGzipWriter(e.gzw, e.level)
		e.gzw = nil
	case e.flw != nil:
		if err := e.flw.Close(); err != nil {
			return err
		}
		compress.ReleaseDeflateWriter(e.flw, e.level)
		e.flw = nil
	case e.brw != nil:
		if err := e.brw.Close(); err != nil {
			return err
		}
		compress.ReleaseBrotliWriter(e.brw, e.quality)
		e.brw = nil
	}
	return e.te.WriteEOF()
}

// IsEOF reports whether the framing confirmed no further bytes are owed.
func (e *ContentEncoder) IsEOF() bool {
	return e.te.IsEOF()
}

// newContentEncoder inspects the request and builds the encoder/framer
// pair for it, adjusting the framing headers so the head stays consistent
// with the choice. It is pure with respect to the transport; all effects
// are on req and the returned encoder.
func newContentEncoder(buf *SharedBytes, req *protocol.Request, opts *config.Options) (*ContentEncoder, error) {
	encoding := req.ContentEncoding()

	switch req.BodyKind() {
	case protocol.BodyKindNone:
		req.Header.Del(consts.HeaderContentLength)
		return &ContentEncoder{te: lengthTransfer(buf, 0)}, nil

	case protocol.BodyKindBinary:
		// The whole payload is in memory, so compression happens here in
		// one shot and the working encoding downgrades to identity.
		body := req.TakeBody()
		if encoding.IsCompression() {
			var (
				compressed []byte
				err        error
			)
			switch encoding {
			case protocol.EncodingGzip:
				compressed, err = compress.AppendGzipBytesLevel(nil, body, opts.CompressionLevel)
			case protocol.EncodingDeflate:
				compressed, err = compress.AppendDeflateBytesLevel(nil, body, opts.CompressionLevel)
			case protocol.EncodingBr:
				compressed, err = compress.AppendBrotliBytesQuality(nil, body, opts.BrotliQuality)
			}
			if err != nil {
				return nil, err
			}
			body = compressed
			req.Header.Set(consts.HeaderContentEncoding, encoding.String())
		}
		req.SetBodyRaw(body)
		req.Header.SetContentLength(len(body))
		return &ContentEncoder{te: eofTransfer(buf)}, nil
	}

	if req.IsUpgrade() {
		// Compressing bytes on an upgraded connection would corrupt the
		// post-upgrade protocol, whatever the caller asked for.
		if encoding != protocol.EncodingIdentity {
			req.Header.Del(consts.HeaderContentEncoding)
		}
		if req.Header.Version().Multiplexed() {
			hlog.SystemLogger().Errorf("connection upgrade is forbidden with %s", req.Header.Version())
		} else {
			req.Header.Set(consts.HeaderConnection, "upgrade")
		}
		return &ContentEncoder{te: eofTransfer(buf)}, nil
	}

	te := streamingTransfer(buf, req)
	e := &ContentEncoder{te: te}
	switch encoding {
	case protocol.EncodingGzip:
		e.gzw = compress.AcquireGzipWriter(te, opts.CompressionLevel)
		e.level = opts.CompressionLevel
	case protocol.EncodingDeflate:
		e.flw = compress.AcquireDeflateWriter(te, opts.CompressionLevel)
		e.level = opts.CompressionLevel
	case protocol.EncodingBr:
		e.brw = compress.AcquireBrotliWriter(te, opts.BrotliQuality)
		e.quality = opts.BrotliQuality
	}
	if encoding.IsCompression() {
		req.Header.Set(consts.HeaderContentEncoding, encoding.String())
	}
	return e, nil
}

// streamingTransfer picks the framing for a body whose bytes arrive after
// the head.
func streamingTransfer(buf *SharedBytes, req *protocol.Request) *TransferEncoding {
	version := req.Header.Version()

	if req.IsChunked() {
		// Chunked intent rules out a declared length.
		req.Header.Del(consts.HeaderContentLength)
		if !version.SupportsChunkedTransfer() {
			req.Header.Del(consts.HeaderTransferEncoding)
			return eofTransfer(buf)
		}
		req.Header.Set(consts.HeaderTransferEncoding, "chunked")
		return chunkedTransfer(buf)
	}

	if cl := req.Header.Peek(consts.HeaderContentLength); cl != nil {
		n, err := bytesconv.ParseUint(cl)
		if err == nil {
			return lengthTransfer(buf, uint64(n))
		}
		hlog.SystemLogger().Warnf("malformed Content-Length %q, framing body as unknown-length", cl)
		req.Header.Del(consts.HeaderContentLength)
	}

	if version.SupportsChunkedTransfer() {
		req.Header.Set(consts.HeaderTransferEncoding, "chunked")
		return chunkedTransfer(buf)
	}
	req.Header.Del(consts.HeaderTransferEncoding)
	return eofTransfer(buf)
}
