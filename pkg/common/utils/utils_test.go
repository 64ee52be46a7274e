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

package utils

import (
	"testing"

	"github.com/duriantang/quill/pkg/common/test/assert"
)

func TestCaseInsensitiveCompare(t *testing.T) {
	assert.True(t, CaseInsensitiveCompare([]byte("content-length"), []byte("Content-Length")))
	assert.True(t, CaseInsensitiveCompare([]byte("HOST"), []byte("host")))
	assert.False(t, CaseInsensitiveCompare([]byte("host"), []byte("hosts")))
	assert.False(t, CaseInsensitiveCompare([]byte("date"), []byte("data")))
	assert.True(t, CaseInsensitiveCompare(nil, []byte{}))
}
