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
	"github.com/duriantang/quill/internal/bytesconv"
	"github.com/duriantang/quill/internal/nocopy"
	"github.com/duriantang/quill/pkg/common/utils"
	"github.com/duriantang/quill/pkg/protocol/consts"
)

type argsKV struct {
	key   []byte
	value []byte
}

// RequestHeader holds the request line and the ordered header list of an
// outgoing request. Header lookup is case-insensitive; serialization keeps
// the names exactly as they were added.
//
// RequestHeader instances must not be copied after first use.
type RequestHeader struct {
	noCopy nocopy.NoCopy

	method     []byte
	requestURI []byte
	version    Version

	h []argsKV
}

// Method returns the request method. It defaults to GET.
func (h *RequestHeader) Method() []byte {
	if len(h.method) == 0 {
		return []byte(consts.MethodGet)
	}
	return h.method
}

func (h *RequestHeader) SetMethod(method string) {
	h.method = append(h.method[:0], method...)
}

// RequestURI returns the request target. It defaults to "/".
func (h *RequestHeader) RequestURI() []byte {
	if len(h.requestURI) == 0 {
		return []byte("/")
	}
	return h.requestURI
}

func (h *RequestHeader) SetRequestURI(requestURI string) {
	h.requestURI = append(h.requestURI[:0], requestURI...)
}

func (h *RequestHeader) Version() Version {
	return h.version
}

func (h *RequestHeader) SetVersion(v Version) {
	h.version = v
}

// Add appends a header without touching existing values for the same key.
func (h *RequestHeader) Add(key, value string) {
	var kv *argsKV
	h.h, kv = allocArg(h.h)
	kv.key = append(kv.key[:0], key...)
	kv.value = append(kv.value[:0], value...)
}

// Set replaces every value previously stored for key with the given one.
func (h *RequestHeader) Set(key, value string) {
	h.Del(key)
	h.Add(key, value)
}

// SetContentLength sets the Content-Length header to n.
func (h *RequestHeader) SetContentLength(n int) {
	h.Del(consts.HeaderContentLength)
	var kv *argsKV
	h.h, kv = allocArg(h.h)
	kv.key = append(kv.key[:0], consts.HeaderContentLength...)
	kv.value = bytesconv.AppendUint(kv.value[:0], n)
}

// Peek returns the first value stored for key or nil.
func (h *RequestHeader) Peek(key string) []byte {
	for i := range h.h {
		if utils.CaseInsensitiveCompare(h.h[i].key, bytesconv.S2b(key)) {
			return h.h[i].value
		}
	}
	return nil
}

// Del removes every header stored for key.
func (h *RequestHeader) Del(key string) {
	k := bytesconv.S2b(key)
	dst := h.h[:0]
	for i := range h.h {
		if !utils.CaseInsensitiveCompare(h.h[i].key, k) {
			dst = append(dst, h.h[i])
		}
	}
	h.h = dst
}

// Len returns the number of header lines.
func (h *RequestHeader) Len() int {
	return len(h.h)
}

// VisitAll calls f for each header line in insertion order. f must not
// retain the slices it receives.
func (h *RequestHeader) VisitAll(f func(key, value []byte)) {
	for i := range h.h {
		f(h.h[i].key, h.h[i].value)
	}
}

func (h *RequestHeader) Reset() {
	h.method = h.method[:0]
	h.requestURI = h.requestURI[:0]
	h.version = VersionHTTP11
	h.h = h.h[:0]
}

func allocArg(args []argsKV) ([]argsKV, *argsKV) {
	n := len(args)
	if cap(args) > n {
		args = args[:n+1]
	} else {
		args = append(args, argsKV{})
	}
	return args, &args[n]
}
