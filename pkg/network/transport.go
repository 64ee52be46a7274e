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

package network

// Transport is the nonblocking write side of one connection.
//
// Write submits as many bytes of b as the transport can take right now and
// returns how many were consumed. A full send buffer is reported as an
// error matching errs.ErrWouldBlock; partial writes may accompany it.
// An orderly peer close is reported as (0, nil) so the caller can finish
// the request instead of failing it. Any other error is a hard transport
// failure.
//
// Write must never block the calling goroutine; readiness notification is
// the caller's concern.
type Transport interface {
	Write(b []byte) (n int, err error)

	// Shutdown closes the write side of the connection once all buffered
	// bytes have been handed over.
	Shutdown() error
}
