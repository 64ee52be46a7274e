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

package consts

const (
	// DefaultLowWatermark is the buffered byte count under which a paused
	// writer becomes writable again.
	DefaultLowWatermark = 1024

	// DefaultHighWatermark is the buffered byte count above which Write
	// and PollDrain start signaling backpressure.
	DefaultHighWatermark = 8 * DefaultLowWatermark

	// AverageHeaderSize is the reserve hint per header line when the
	// request head is rendered.
	AverageHeaderSize = 30
)
