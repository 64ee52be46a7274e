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
	"github.com/duriantang/quill/pkg/common/compress"
	"github.com/duriantang/quill/pkg/protocol/consts"
)

// Options holds the tunables of a message writer.
type Options struct {
	// LowWatermark and HighWatermark bound the output buffer.
	// Once more than HighWatermark bytes are buffered the writer signals
	// backpressure; draining below HighWatermark releases it again.
	LowWatermark  int
	HighWatermark int

	// CompressionLevel is used for deflate and gzip payload compression.
	CompressionLevel int

	// BrotliQuality is used for brotli payload compression.
	BrotliQuality int

	// NoDefaultDate disables the automatic Date header.
	NoDefaultDate bool
}

// Option is the only struct to set writer-level options.
type Option struct {
	F func(o *Options)
}

// NewOptions creates an *Options according to the given opts.
func NewOptions(opts []Option) *Options {
	options := &Options{
		LowWatermark:     consts.DefaultLowWatermark,
		HighWatermark:    consts.DefaultHighWatermark,
		CompressionLevel: compress.DefaultCompression,
		BrotliQuality:    compress.DefaultBrotliQuality,
	}
	options.Apply(opts)
	return options
}

func (o *Options) Apply(opts []Option) {
	for _, op := range opts {
		op.F(o)
	}
}

// WithWriteBufferWatermarks sets the low and high watermark of the output
// buffer. low must be smaller than high; out-of-order values are swapped.
func WithWriteBufferWatermarks(low, high int) Option {
	return Option{F: func(o *Options) {
		if low > high {
			low, high = high, low
		}
		o.LowWatermark = low
		o.HighWatermark = high
	}}
}

// WithCompressionLevel sets the deflate/gzip compression level.
func WithCompressionLevel(level int) Option {
	return Option{F: func(o *Options) {
		o.CompressionLevel = level
	}}
}

// WithBrotliQuality sets the brotli quality.
func WithBrotliQuality(quality int) Option {
	return Option{F: func(o *Options) {
		o.BrotliQuality = quality
	}}
}

// WithNoDefaultDate controls whether a Date header is added when the
// request carries none.
func WithNoDefaultDate(b bool) Option {
	return Option{F: func(o *Options) {
		o.NoDefaultDate = b
	}}
}
