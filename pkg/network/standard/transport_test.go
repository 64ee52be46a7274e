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

package standard

import (
	"errors"
	"io"
	"net"
	"testing"

	errs "github.com/duriantang/quill/pkg/common/errors"
	"github.com/duriantang/quill/pkg/common/test/assert"
)

func TestWriteDrained(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	done := make(chan []byte)
	go func() {
		b, _ := io.ReadAll(server)
		done <- b
	}()

	tr := NewTransport(client)
	pending := []byte("hello")
	for len(pending) > 0 {
		n, err := tr.Write(pending)
		pending = pending[n:]
		if err != nil {
			// The reader goroutine may not be scheduled within one write
			// deadline on a synchronous pipe.
			assert.True(t, errors.Is(err, errs.ErrWouldBlock))
		}
	}

	assert.Nil(t, tr.Shutdown())
	assert.DeepEqual(t, []byte("hello"), <-done)
}

func TestWriteWouldBlock(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()
	defer client.Close()

	// Nobody reads from server, so the synchronous pipe cannot take a
	// single byte before the write deadline fires.
	tr := NewTransport(client)
	n, err := tr.Write([]byte("stalled"))
	assert.DeepEqual(t, 0, n)
	assert.True(t, errors.Is(err, errs.ErrWouldBlock))
}

func TestWriteAfterPeerClose(t *testing.T) {
	client, server := net.Pipe()
	assert.Nil(t, server.Close())
	assert.Nil(t, client.Close())

	tr := NewTransport(client)
	n, err := tr.Write([]byte("late"))
	assert.DeepEqual(t, 0, n)
	assert.Nil(t, err)
}
