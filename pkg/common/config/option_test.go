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

package config

import (
	"testing"

	"github.com/duriantang/quill/pkg/common/compress"
	"github.com/duriantang/quill/pkg/common/test/assert"
	"github.com/duriantang/quill/pkg/protocol/consts"
)

func TestDefaultOptions(t *testing.T) {
	opts := NewOptions(nil)
	assert.DeepEqual(t, consts.DefaultLowWatermark, opts.LowWatermark)
	assert.DeepEqual(t, consts.DefaultHighWatermark, opts.HighWatermark)
	assert.DeepEqual(t, compress.DefaultCompression, opts.CompressionLevel)
	assert.DeepEqual(t, compress.DefaultBrotliQuality, opts.BrotliQuality)
	assert.False(t, opts.NoDefaultDate)
}

func TestApplyOptions(t *testing.T) {
	opts := NewOptions([]Option{
		WithWriteBufferWatermarks(512, 4096),
		WithCompressionLevel(9),
		WithBrotliQuality(11),
		WithNoDefaultDate(true),
	})
	assert.DeepEqual(t, 512, opts.LowWatermark)
	assert.DeepEqual(t, 4096, opts.HighWatermark)
	assert.DeepEqual(t, 9, opts.CompressionLevel)
	assert.DeepEqual(t, 11, opts.BrotliQuality)
	assert.True(t, opts.NoDefaultDate)
}

func TestWatermarkSwap(t *testing.T) {
	opts := NewOptions([]Option{WithWriteBufferWatermarks(4096, 512)})
	assert.DeepEqual(t, 512, opts.LowWatermark)
	assert.DeepEqual(t, 4096, opts.HighWatermark)
}
