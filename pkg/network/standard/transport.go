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
	"os"
	"syscall"
	"time"

	errs "github.com/duriantang/quill/pkg/common/errors"
	"github.com/duriantang/quill/pkg/network"
)

// writeAttemptTimeout bounds a single write attempt on a blocking net.Conn.
// The net poller has no exported nonblocking write, so a near-immediate
// deadline approximates one.
const writeAttemptTimeout = time.Millisecond

type transport struct {
	conn net.Conn
}

// NewTransport adapts a net.Conn to the nonblocking network.Transport
// contract. A write that cannot complete within one poll interval is
// reported as errs.ErrWouldBlock together with the bytes already taken.
func NewTransport(conn net.Conn) network.Transport {
	return &transport{conn: conn}
}

func (t *transport) Write(b []byte) (int, error) {
	if err := t.conn.SetWriteDeadline(time.Now().Add(writeAttemptTimeout)); err != nil {
		if errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
			return 0, nil
		}
		return 0, err
	}
	n, err := t.conn.Write(b)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return n, errs.ErrWouldBlock
	}
	if errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe) || errors.Is(err, syscall.EPIPE) {
		// Orderly close by the peer ends the request, it does not fail it.
		return 0, nil
	}
	if errors.Is(err, syscall.ECONNRESET) {
		return n, errs.ErrConnectionClosed
	}
	return n, err
}

func (t *transport) Shutdown() error {
	if cw, ok := t.conn.(interface{ CloseWrite() error }); ok {
		return cw.CloseWrite()
	}
	return t.conn.Close()
}
