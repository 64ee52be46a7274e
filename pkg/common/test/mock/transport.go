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

package mock

// WriteResult scripts the outcome of a single Transport.Write call.
type WriteResult struct {
	N   int
	Err error
}

// Transport is a scripted network.Transport for tests. Each Write consumes
// the next WriteResult; once the script runs out every write is accepted
// in full. The accepted bytes are recorded and can be inspected with
// Wrote.
type Transport struct {
	script       []WriteResult
	wrote        []byte
	WriteCalls   int
	ShutdownDone bool
}

func NewTransport(script ...WriteResult) *Transport {
	return &Transport{script: script}
}

func (t *Transport) Write(b []byte) (int, error) {
	t.WriteCalls++
	if len(t.script) == 0 {
		t.wrote = append(t.wrote, b...)
		return len(b), nil
	}
	r := t.script[0]
	t.script = t.script[1:]
	n := r.N
	if n > len(b) {
		n = len(b)
	}
	t.wrote = append(t.wrote, b[:n]...)
	return n, r.Err
}

func (t *Transport) Shutdown() error {
	t.ShutdownDone = true
	return nil
}

// Wrote returns every byte the transport has accepted so far.
func (t *Transport) Wrote() []byte {
	return t.wrote
}
