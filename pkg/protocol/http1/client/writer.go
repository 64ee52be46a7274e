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

// Package client implements the outbound HTTP/1.x message writer: request
// head serialization, content and transfer encoding selection, and a
// watermark-driven drain loop onto a nonblocking transport.
package client

import (
	"errors"

	"github.com/duriantang/quill/internal/bytestr"
	"github.com/duriantang/quill/pkg/common/config"
	errs "github.com/duriantang/quill/pkg/common/errors"
	"github.com/duriantang/quill/pkg/common/utils"
	"github.com/duriantang/quill/pkg/network"
	"github.com/duriantang/quill/pkg/protocol"
	"github.com/duriantang/quill/pkg/protocol/consts"
)

const (
	flagStarted = 1 << iota
	flagUpgrade
	flagKeepalive
	flagDisconnected
)

// WriterState is the backpressure signal returned by Write.
type WriterState int

const (
	// WriterDone means the caller may keep writing.
	WriterDone WriterState = iota
	// WriterPause means buffered bytes exceed the high watermark; the
	// caller should drain before writing more.
	WriterPause
)

// PollState is the drain progress signal returned by PollDrain.
type PollState int

const (
	// PollReady means the buffer is drained or below the high watermark.
	PollReady PollState = iota
	// PollPending means the transport is saturated above the high
	// watermark; re-poll once it reports writable.
	PollPending
)

// MessageWriter serializes one outgoing request onto one connection. It is
// exclusively owned by the goroutine driving that connection; none of its
// methods block.
type MessageWriter struct {
	flags       uint8
	written     uint64
	headersSize uint32

	buf     *SharedBytes
	encoder *ContentEncoder
	dates   *DateCache
	opts    *config.Options
}

// NewMessageWriter builds a writer draining through the given per-worker
// date cache. A nil cache gets the writer a private one.
func NewMessageWriter(dates *DateCache, opts ...config.Option) *MessageWriter {
	if dates == nil {
		dates = NewDateCache()
	}
	options := config.NewOptions(opts)
	return &MessageWriter{
		// Steady state stays near the low watermark; the buffer grows
		// toward the high watermark only under backpressure.
		buf:   NewSharedBytes(options.LowWatermark),
		dates: dates,
		opts:  options,
	}
}

// Start selects the encoding for req, serializes the request head into the
// buffer and, for an in-memory body, feeds the payload through the encoder
// right away.
func (w *MessageWriter) Start(req *protocol.Request) error {
	w.flags |= flagStarted
	if req.IsUpgrade() {
		w.flags |= flagUpgrade
	}
	w.deriveKeepalive(&req.Header)

	encoder, err := newContentEncoder(w.buf, req, w.opts)
	if err != nil {
		return err
	}
	w.encoder = encoder

	header := &req.Header
	method := header.Method()
	uri := header.RequestURI()
	version := header.Version().Bytes()

	begin := w.buf.Len()
	w.buf.Reserve(len(method) + len(uri) + len(version) + 4 +
		(header.Len()+2)*consts.AverageHeaderSize)

	w.buf.Append(method)
	w.buf.Append(bytestr.StrSpace)
	w.buf.Append(uri)
	w.buf.Append(bytestr.StrSpace)
	w.buf.Append(version)
	w.buf.Append(bytestr.StrCRLF)

	header.VisitAll(func(key, value []byte) {
		w.buf.Append(key)
		w.buf.Append(bytestr.StrColonSpace)
		w.buf.Append(value)
		w.buf.Append(bytestr.StrCRLF)
	})
	if !w.opts.NoDefaultDate && header.Peek(consts.HeaderDate) == nil {
		w.buf.Append(bytestr.StrDate)
		w.buf.Append(bytestr.StrColonSpace)
		w.buf.Append(w.dates.Current())
		w.buf.Append(bytestr.StrCRLF)
	}
	w.buf.Append(bytestr.StrCRLF)
	w.headersSize = uint32(w.buf.Len() - begin)

	if req.BodyKind() == protocol.BodyKindBinary {
		body := req.TakeBody()
		w.written += uint64(len(body))
		if len(body) > 0 {
			if _, err := w.encoder.Write(body); err != nil {
				return err
			}
		}
	}
	return nil
}

// Write submits one body chunk. Payload bytes are counted in Written even
// when the peer is gone and the bytes go nowhere.
func (w *MessageWriter) Write(p []byte) (WriterState, error) {
	w.written += uint64(len(p))
	if w.flags&flagDisconnected != 0 {
		return WriterDone, nil
	}
	if w.flags&flagUpgrade != 0 {
		// After an upgrade the connection speaks another protocol; bytes
		// pass through unframed and uncompressed.
		w.buf.Append(p)
	} else if _, err := w.encoder.Write(p); err != nil {
		return WriterDone, err
	}
	if w.buf.Len() > w.opts.HighWatermark {
		return WriterPause, nil
	}
	return WriterDone, nil
}

// WriteEOF finalizes the body framing. It fails with errs.ErrBodyIncomplete
// when a declared length was never satisfied.
func (w *MessageWriter) WriteEOF() error {
	if w.flags&flagDisconnected != 0 {
		return nil
	}
	if err := w.encoder.WriteEOF(); err != nil {
		return err
	}
	if !w.encoder.IsEOF() {
		return errs.ErrBodyIncomplete
	}
	return nil
}

// PollDrain pushes buffered bytes into tr until the buffer is empty or the
// transport stops accepting. It never blocks: a saturated transport above
// the high watermark yields PollPending and the caller re-polls on
// writability. When the peer has closed, the remaining bytes are discarded
// and the drain completes without error.
func (w *MessageWriter) PollDrain(tr network.Transport, shutdownOnDone bool) (PollState, error) {
	for w.buf.Len() > 0 {
		n, err := tr.Write(w.buf.Bytes())
		if n > 0 {
			w.buf.Skip(n)
		}
		if err != nil {
			if errors.Is(err, errs.ErrWouldBlock) {
				if w.buf.Len() > w.opts.HighWatermark {
					return PollPending, nil
				}
				return PollReady, nil
			}
			return PollPending, err
		}
		if n == 0 {
			w.Disconnect()
			if shutdownOnDone {
				// The peer is already gone; a failing shutdown is moot.
				_ = tr.Shutdown()
			}
			return PollReady, nil
		}
	}
	if shutdownOnDone {
		if err := tr.Shutdown(); err != nil {
			return PollPending, err
		}
	}
	return PollReady, nil
}

// Disconnect records that the peer is gone and abandons buffered bytes.
// Later writes are accepted and counted but produce nothing.
func (w *MessageWriter) Disconnect() {
	w.flags |= flagDisconnected
	w.buf.Take()
}

// Keepalive reports whether the connection may serve another request. An
// upgraded connection never can.
func (w *MessageWriter) Keepalive() bool {
	return w.flags&flagKeepalive != 0 && w.flags&flagUpgrade == 0
}

// Written returns the cumulative payload bytes submitted, framing and
// compression overhead excluded.
func (w *MessageWriter) Written() uint64 {
	return w.written
}

// HeadersSize returns the byte length of the serialized request head.
func (w *MessageWriter) HeadersSize() uint32 {
	return w.headersSize
}

// IsCompleted reports whether every buffered byte has been drained.
func (w *MessageWriter) IsCompleted() bool {
	return w.buf.Len() == 0
}

func (w *MessageWriter) IsStarted() bool {
	return w.flags&flagStarted != 0
}

func (w *MessageWriter) IsDisconnected() bool {
	return w.flags&flagDisconnected != 0
}

// SetBufferCapacity replaces the drain watermarks. Swapped bounds are
// reordered.
func (w *MessageWriter) SetBufferCapacity(low, high int) {
	if low > high {
		low, high = high, low
	}
	w.opts.LowWatermark = low
	w.opts.HighWatermark = high
}

// Reset prepares the writer for the next request on the same connection.
func (w *MessageWriter) Reset() {
	w.flags = 0
	w.written = 0
	w.headersSize = 0
	w.encoder = nil
	w.buf.Take()
}

// Release returns the buffer storage. The writer must not be used after.
func (w *MessageWriter) Release() {
	w.encoder = nil
	w.buf.Release()
}

func (w *MessageWriter) deriveKeepalive(header *protocol.RequestHeader) {
	conn := header.Peek(consts.HeaderConnection)
	switch header.Version() {
	case protocol.VersionHTTP10:
		if utils.CaseInsensitiveCompare(conn, bytestr.StrKeepAlive) {
			w.flags |= flagKeepalive
		}
	default:
		if !utils.CaseInsensitiveCompare(conn, bytestr.StrClose) {
			w.flags |= flagKeepalive
		}
	}
}
