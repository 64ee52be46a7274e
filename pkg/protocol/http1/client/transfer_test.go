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
	"errors"
	"testing"

	errs "github.com/duriantang/quill/pkg/common/errors"
	"github.com/duriantang/quill/pkg/common/test/assert"
)

func TestChunkedTransferFraming(t *testing.T) {
	buf := NewSharedBytes(64)
	defer buf.Release()

	te := chunkedTransfer(buf)
	_, err := te.Write([]byte("hello"))
	assert.Nil(t, err)
	_, err = te.Write([]byte("world"))
	assert.Nil(t, err)
	assert.False(t, te.IsEOF())
	assert.Nil(t, te.WriteEOF())
	assert.True(t, te.IsEOF())

	assert.DeepEqual(t, "5\r\nhello\r\n5\r\nworld\r\n0\r\n\r\n", string(buf.Bytes()))
}

func TestChunkedTransferSkipsEmptyWrites(t *testing.T) {
	buf := NewSharedBytes(64)
	defer buf.Release()

	te := chunkedTransfer(buf)
	_, err := te.Write(nil)
	assert.Nil(t, err)
	assert.DeepEqual(t, 0, buf.Len())

	// An empty write must not emit "0\r\n", which would terminate the body.
	assert.Nil(t, te.WriteEOF())
	assert.DeepEqual(t, "0\r\n\r\n", string(buf.Bytes()))
}

func TestLengthTransferExact(t *testing.T) {
	buf := NewSharedBytes(64)
	defer buf.Release()

	te := lengthTransfer(buf, 5)
	_, err := te.Write([]byte("abcde"))
	assert.Nil(t, err)
	assert.True(t, te.IsEOF())
	assert.Nil(t, te.WriteEOF())
	assert.DeepEqual(t, "abcde", string(buf.Bytes()))
}

func TestLengthTransferOverlong(t *testing.T) {
	buf := NewSharedBytes(64)
	defer buf.Release()

	te := lengthTransfer(buf, 5)
	_, err := te.Write([]byte("abcde"))
	assert.Nil(t, err)
	_, err = te.Write([]byte("f"))
	assert.True(t, errors.Is(err, errs.ErrBodyTooLong))
	// The rejected write must not leak bytes into the buffer.
	assert.DeepEqual(t, "abcde", string(buf.Bytes()))
}

func TestLengthTransferIncomplete(t *testing.T) {
	buf := NewSharedBytes(64)
	defer buf.Release()

	te := lengthTransfer(buf, 5)
	_, err := te.Write([]byte("abc"))
	assert.Nil(t, err)
	assert.False(t, te.IsEOF())
	assert.True(t, errors.Is(te.WriteEOF(), errs.ErrBodyIncomplete))
}

func TestEOFTransferPassthrough(t *testing.T) {
	buf := NewSharedBytes(64)
	defer buf.Release()

	te := eofTransfer(buf)
	assert.True(t, te.IsEOF())
	_, err := te.Write([]byte("raw"))
	assert.Nil(t, err)
	assert.Nil(t, te.WriteEOF())
	assert.DeepEqual(t, "raw", string(buf.Bytes()))
}
