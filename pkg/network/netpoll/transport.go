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

//go:build !windows

package netpoll

import (
	"errors"
	"syscall"

	"github.com/cloudwego/netpoll"

	errs "github.com/duriantang/quill/pkg/common/errors"
	"github.com/duriantang/quill/pkg/network"
)

type transport struct {
	conn netpoll.Connection
}

// NewTransport adapts a netpoll.Connection to network.Transport. Flush
// hands the bytes to the poller without blocking, so a successful write
// here means queued, not on the wire.
func NewTransport(conn netpoll.Connection) network.Transport {
	return &transport{conn: conn}
}

func (t *transport) Write(b []byte) (int, error) {
	w := t.conn.Writer()
	buf, err := w.Malloc(len(b))
	if err != nil {
		return 0, normalizeErr(err)
	}
	copy(buf, b)
	if err = w.Flush(); err != nil {
		return 0, normalizeErr(err)
	}
	return len(b), nil
}

func (t *transport) Shutdown() error {
	return t.conn.Close()
}

func normalizeErr(err error) error {
	if errors.Is(err, netpoll.ErrConnClosed) || errors.Is(err, syscall.EPIPE) {
		return errs.ErrConnectionClosed
	}
	return err
}
