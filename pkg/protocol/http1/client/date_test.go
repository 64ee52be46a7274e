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
	"testing"
	"time"

	"github.com/duriantang/quill/pkg/common/test/assert"
)

func TestDateCacheFormat(t *testing.T) {
	d := NewDateCache()
	d.now = func() time.Time {
		return time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC)
	}
	v := d.Current()
	assert.DeepEqual(t, dateValueLen, len(v))
	assert.DeepEqual(t, "Sun, 06 Nov 1994 08:49:37 GMT", string(v))
}

func TestDateCacheSameSecond(t *testing.T) {
	base := time.Date(2023, time.May, 1, 12, 0, 0, 200e6, time.UTC)
	now := base

	d := NewDateCache()
	d.now = func() time.Time { return now }

	first := string(d.Current())
	now = base.Add(700 * time.Millisecond)
	assert.DeepEqual(t, first, string(d.Current()))

	now = base.Add(1200 * time.Millisecond)
	second := string(d.Current())
	assert.NotEqual(t, first, second)
	assert.DeepEqual(t, "Mon, 01 May 2023 12:00:01 GMT", second)
}
