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
	"time"

	"github.com/duriantang/quill/internal/bytesconv"
)

// dateValueLen is the length of an RFC 1123 GMT timestamp,
// e.g. "Sun, 06 Nov 1994 08:49:37 GMT".
const dateValueLen = 29

// DateCache renders the Date header value once per wall-clock second and
// serves the cached bytes until the second rolls over. One cache belongs
// to one worker goroutine, so there is no locking; skew between workers is
// bounded by a second, which Date semantics allow.
type DateCache struct {
	value       []byte
	nextRefresh time.Time

	now func() time.Time
}

func NewDateCache() *DateCache {
	return &DateCache{
		value: make([]byte, 0, dateValueLen),
		now:   time.Now,
	}
}

// Current returns the formatted value for the current second. The slice is
// valid until the next Current call on the same cache.
func (d *DateCache) Current() []byte {
	now := d.now()
	if now.After(d.nextRefresh) {
		d.value = bytesconv.AppendHTTPDate(d.value[:0], now)
		d.nextRefresh = now.Truncate(time.Second).Add(time.Second)
	}
	return d.value
}
