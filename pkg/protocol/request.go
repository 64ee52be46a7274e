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
	"github.com/duriantang/quill/internal/nocopy"
	"github.com/duriantang/quill/pkg/common/bytebufferpool"
)

// BodyKind tells the writer how the request payload arrives.
type BodyKind int

const (
	// BodyKindNone is a request without payload.
	BodyKindNone BodyKind = iota
	// BodyKindBinary is a payload fully available at start time.
	BodyKindBinary
	// BodyKindStream is a payload fed to the writer after the head.
	BodyKindStream
	// BodyKindChannel is a stream payload produced on a channel.
	BodyKindChannel
)

// Request is an outgoing HTTP request: head plus a payload in one of the
// BodyKind shapes.
//
// Request instances must not be copied after first use.
type Request struct {
	noCopy nocopy.NoCopy

	Header RequestHeader

	body    *bytebufferpool.ByteBuffer
	bodyRaw []byte
	kind    BodyKind
	bodyCh  <-chan []byte

	upgrade         bool
	chunked         bool
	contentEncoding ContentEncoding
}

// SetBody copies b into a pooled buffer as the binary payload.
func (req *Request) SetBody(b []byte) {
	req.bodyRaw = nil
	if req.body == nil {
		req.body = bytebufferpool.Get()
	}
	req.body.Reset()
	req.body.Set(b)
	req.kind = BodyKindBinary
}

// SetBodyRaw uses b directly as the binary payload without copying. The
// caller must not mutate b until the request has been written.
func (req *Request) SetBodyRaw(b []byte) {
	req.resetBody()
	req.bodyRaw = b
	req.kind = BodyKindBinary
}

// SetBodyStream declares a payload that will be fed to the writer in
// pieces after the head goes out.
func (req *Request) SetBodyStream() {
	req.resetBody()
	req.kind = BodyKindStream
}

// SetBodyChannel declares a stream payload produced on ch. A nil slice on
// the channel ends the body.
func (req *Request) SetBodyChannel(ch <-chan []byte) {
	req.resetBody()
	req.bodyCh = ch
	req.kind = BodyKindChannel
}

// BodyBytes returns the binary payload, or nil for the other body kinds.
func (req *Request) BodyBytes() []byte {
	if req.bodyRaw != nil {
		return req.bodyRaw
	}
	if req.body != nil {
		return req.body.B
	}
	return nil
}

// TakeBody returns the binary payload and detaches it from the request,
// leaving the request body-less.
func (req *Request) TakeBody() []byte {
	b := req.BodyBytes()
	req.bodyRaw = nil
	if req.body != nil {
		// The bytes were handed to the caller, the buffer cannot be pooled.
		req.body = nil
	}
	req.kind = BodyKindNone
	return b
}

func (req *Request) BodyKind() BodyKind {
	return req.kind
}

func (req *Request) BodyChannel() <-chan []byte {
	return req.bodyCh
}

// HasDeferredBody reports whether the payload arrives after the head.
func (req *Request) HasDeferredBody() bool {
	return req.kind == BodyKindStream || req.kind == BodyKindChannel
}

// SetUpgrade marks the request as an HTTP/1.x connection upgrade.
func (req *Request) SetUpgrade(upgrade bool) {
	req.upgrade = upgrade
}

func (req *Request) IsUpgrade() bool {
	return req.upgrade
}

// SetChunked forces chunked transfer for a deferred body where the
// protocol version allows it.
func (req *Request) SetChunked(chunked bool) {
	req.chunked = chunked
}

func (req *Request) IsChunked() bool {
	return req.chunked
}

// SetContentEncoding picks the content coding for the payload.
// EncodingAuto leaves the choice to the writer.
func (req *Request) SetContentEncoding(ce ContentEncoding) {
	req.contentEncoding = ce
}

func (req *Request) ContentEncoding() ContentEncoding {
	return req.contentEncoding
}

func (req *Request) resetBody() {
	req.bodyRaw = nil
	req.bodyCh = nil
	if req.body != nil {
		bytebufferpool.Put(req.body)
		req.body = nil
	}
	req.kind = BodyKindNone
}

// Reset clears the request for reuse.
func (req *Request) Reset() {
	req.Header.Reset()
	req.resetBody()
	req.upgrade = false
	req.chunked = false
	req.contentEncoding = EncodingAuto
}
