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

import "github.com/bytedance/gopkg/lang/mcache"

// SharedBytes is the output buffer one writer pipeline appends to and
// drains from. The encoder stages of a single in-flight request share the
// same handle, so framed bytes become visible to the drain loop without
// copying. Storage comes from mcache and must be given back with Release.
type SharedBytes struct {
	b []byte
}

func NewSharedBytes(capacity int) *SharedBytes {
	return &SharedBytes{b: mcache.Malloc(0, capacity)}
}

// Reserve makes room for at least n more bytes.
func (s *SharedBytes) Reserve(n int) {
	if cap(s.b)-len(s.b) >= n {
		return
	}
	nb := mcache.Malloc(len(s.b), 2*cap(s.b)+n)
	copy(nb, s.b)
	if s.b != nil {
		mcache.Free(s.b)
	}
	s.b = nb
}

func (s *SharedBytes) Append(p []byte) {
	s.Reserve(len(p))
	s.b = append(s.b, p...)
}

func (s *SharedBytes) AppendString(str string) {
	s.Reserve(len(str))
	s.b = append(s.b, str...)
}

// Bytes returns the buffered, not yet drained bytes. The slice is only
// valid until the next Append or Skip.
func (s *SharedBytes) Bytes() []byte {
	return s.b
}

func (s *SharedBytes) Len() int {
	return len(s.b)
}

// Skip drops the first n bytes, which the transport has accepted.
func (s *SharedBytes) Skip(n int) {
	if n >= len(s.b) {
		s.b = s.b[:0]
		return
	}
	s.b = s.b[:copy(s.b, s.b[n:])]
}

// Take abandons the buffered bytes and leaves the buffer empty. Used when
// the peer is gone and the remainder will never be written.
func (s *SharedBytes) Take() []byte {
	b := s.b
	s.b = s.b[:0]
	return b
}

// Release gives the storage back to mcache. The buffer must not be used
// afterwards.
func (s *SharedBytes) Release() {
	if s.b != nil {
		mcache.Free(s.b)
		s.b = nil
	}
}
