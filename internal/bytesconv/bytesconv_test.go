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

package bytesconv

import (
	"testing"
	"time"

	"github.com/duriantang/quill/pkg/common/test/assert"
)

func TestAppendUint(t *testing.T) {
	for _, c := range []struct {
		n      int
		expect string
	}{
		{0, "0"},
		{5, "5"},
		{1024, "1024"},
		{1<<31 - 1, "2147483647"},
	} {
		assert.DeepEqual(t, c.expect, string(AppendUint(nil, c.n)))
	}
}

func TestAppendHexUint(t *testing.T) {
	for _, c := range []struct {
		n      int
		expect string
	}{
		{0, "0"},
		{5, "5"},
		{10, "a"},
		{255, "ff"},
		{4096, "1000"},
	} {
		assert.DeepEqual(t, c.expect, string(AppendHexUint(nil, c.n)))
	}
}

func TestParseUint(t *testing.T) {
	n, err := ParseUint([]byte("1234"))
	assert.Nil(t, err)
	assert.DeepEqual(t, 1234, n)

	_, err = ParseUint([]byte(""))
	assert.NotNil(t, err)

	_, err = ParseUint([]byte("12a"))
	assert.NotNil(t, err)

	_, err = ParseUint([]byte("-5"))
	assert.NotNil(t, err)
}

func TestAppendHTTPDate(t *testing.T) {
	d := time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC)
	s := AppendHTTPDate(nil, d)
	assert.DeepEqual(t, "Sun, 06 Nov 1994 08:49:37 GMT", string(s))
	assert.DeepEqual(t, 29, len(s))

	parsed, err := ParseHTTPDate(s)
	assert.Nil(t, err)
	assert.DeepEqual(t, d.Unix(), parsed.Unix())
}
