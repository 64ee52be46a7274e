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
 *
 * The MIT License (MIT)
 *
 * Copyright (c) 2015-present Aliaksandr Valialkin, VertaMedia, Kirill Danshin, Erik Dubbelboer, FastHTTP Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
 * THE SOFTWARE.
 *
 * This file may have been modified by Quill authors. All Quill
 * Modifications are Copyright 2023 Quill Authors.
 */

package compress

import (
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"sync"

	"github.com/andybalholm/brotli"
)

const (
	DefaultCompression = 6 // flate.DefaultCompression
	// DefaultBrotliQuality trades ratio for throughput on request bodies.
	DefaultBrotliQuality = 5
)

var (
	realGzipWriterPoolMap    = newCompressWriterPoolMap()
	realDeflateWriterPoolMap = newCompressWriterPoolMap()
	realBrotliWriterPoolMap  = newCompressWriterPoolMap()
)

func newCompressWriterPoolMap() []*sync.Pool {
	// Initialize pools for all the compression levels defined
	// in https://golang.org/pkg/compress/flate/#pkg-constants .
	// Compression levels are normalized with normalizeCompressLevel,
	// so they fit [0..11].
	var m []*sync.Pool
	for i := 0; i < 12; i++ {
		m = append(m, &sync.Pool{})
	}
	return m
}

// normalizeCompressLevel normalizes a flate/gzip compression level into
// [0..11], so it could be used as an index in *PoolMap.
func normalizeCompressLevel(level int) int {
	// -2 is the lowest compression level - flate.HuffmanOnly
	// 9 is the highest compression level - flate.BestCompression
	if level < -2 || level > 9 {
		level = DefaultCompression
	}
	return level + 2
}

// normalizeBrotliQuality clamps a brotli quality into its native [0..11].
func normalizeBrotliQuality(quality int) int {
	if quality < 0 || quality > 11 {
		quality = DefaultBrotliQuality
	}
	return quality
}

type byteSliceWriter struct {
	b []byte
}

func (w *byteSliceWriter) Write(p []byte) (int, error) {
	w.b = append(w.b, p...)
	return len(p), nil
}

// AcquireGzipWriter returns a pooled *gzip.Writer streaming into w.
func AcquireGzipWriter(w io.Writer, level int) *gzip.Writer {
	nLevel := normalizeCompressLevel(level)
	p := realGzipWriterPoolMap[nLevel]
	v := p.Get()
	if v == nil {
		zw, err := gzip.NewWriterLevel(w, level)
		if err != nil {
			panic(fmt.Sprintf("BUG: unexpected error from gzip.NewWriterLevel(%d): %s", level, err))
		}
		return zw
	}
	zw := v.(*gzip.Writer)
	zw.Reset(w)
	return zw
}

// ReleaseGzipWriter returns zw acquired via AcquireGzipWriter to the pool.
// zw must be closed by the caller before the release.
func ReleaseGzipWriter(zw *gzip.Writer, level int) {
	nLevel := normalizeCompressLevel(level)
	realGzipWriterPoolMap[nLevel].Put(zw)
}

// AcquireDeflateWriter returns a pooled *flate.Writer streaming into w.
func AcquireDeflateWriter(w io.Writer, level int) *flate.Writer {
	nLevel := normalizeCompressLevel(level)
	p := realDeflateWriterPoolMap[nLevel]
	v := p.Get()
	if v == nil {
		zw, err := flate.NewWriter(w, level)
		if err != nil {
			panic(fmt.Sprintf("BUG: unexpected error from flate.NewWriter(%d): %s", level, err))
		}
		return zw
	}
	zw := v.(*flate.Writer)
	zw.Reset(w)
	return zw
}

// ReleaseDeflateWriter returns zw acquired via AcquireDeflateWriter to the
// pool. zw must be closed by the caller before the release.
func ReleaseDeflateWriter(zw *flate.Writer, level int) {
	nLevel := normalizeCompressLevel(level)
	realDeflateWriterPoolMap[nLevel].Put(zw)
}

// AcquireBrotliWriter returns a pooled *brotli.Writer streaming into w.
func AcquireBrotliWriter(w io.Writer, quality int) *brotli.Writer {
	nQuality := normalizeBrotliQuality(quality)
	p := realBrotliWriterPoolMap[nQuality]
	v := p.Get()
	if v == nil {
		return brotli.NewWriterLevel(w, nQuality)
	}
	zw := v.(*brotli.Writer)
	zw.Reset(w)
	return zw
}

// ReleaseBrotliWriter returns zw acquired via AcquireBrotliWriter to the
// pool. zw must be closed by the caller before the release.
func ReleaseBrotliWriter(zw *brotli.Writer, quality int) {
	nQuality := normalizeBrotliQuality(quality)
	realBrotliWriterPoolMap[nQuality].Put(zw)
}

// AppendGzipBytesLevel appends gzipped src to dst using the given
// compression level and returns the resulting dst.
func AppendGzipBytesLevel(dst, src []byte, level int) ([]byte, error) {
	w := &byteSliceWriter{dst}
	zw := AcquireGzipWriter(w, level)
	_, err := zw.Write(src)
	if err1 := zw.Close(); err == nil {
		err = err1
	}
	ReleaseGzipWriter(zw, level)
	return w.b, err
}

// AppendDeflateBytesLevel appends deflated src to dst using the given
// compression level and returns the resulting dst.
func AppendDeflateBytesLevel(dst, src []byte, level int) ([]byte, error) {
	w := &byteSliceWriter{dst}
	zw := AcquireDeflateWriter(w, level)
	_, err := zw.Write(src)
	if err1 := zw.Close(); err == nil {
		err = err1
	}
	ReleaseDeflateWriter(zw, level)
	return w.b, err
}

// AppendBrotliBytesQuality appends brotli-compressed src to dst using the
// given quality and returns the resulting dst.
func AppendBrotliBytesQuality(dst, src []byte, quality int) ([]byte, error) {
	w := &byteSliceWriter{dst}
	zw := AcquireBrotliWriter(w, quality)
	_, err := zw.Write(src)
	if err1 := zw.Close(); err == nil {
		err = err1
	}
	ReleaseBrotliWriter(zw, quality)
	return w.b, err
}
