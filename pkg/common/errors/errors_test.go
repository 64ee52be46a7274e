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

package errors

import (
	"errors"
	"testing"

	"github.com/duriantang/quill/pkg/common/test/assert"
)

func TestError(t *testing.T) {
	baseError := errors.New("test error")
	err := &Error{
		Err:  baseError,
		Type: ErrorTypePrivate,
	}
	assert.DeepEqual(t, err.Error(), baseError.Error())

	assert.True(t, err.IsType(ErrorTypePrivate))
	assert.False(t, err.IsType(ErrorTypePublic))

	err.SetType(ErrorTypePublic)
	assert.True(t, err.IsType(ErrorTypePublic))

	err.SetMeta("some data")
	assert.DeepEqual(t, "some data", err.Meta)

	assert.True(t, errors.Is(err, baseError))
}

func TestSentinelWrapping(t *testing.T) {
	err := New(ErrBodyTooLong, ErrorTypePrivate, "transfer")
	assert.True(t, errors.Is(err, ErrBodyTooLong))
	assert.False(t, errors.Is(err, ErrBodyIncomplete))

	err = NewPublicf("would block after %d bytes: %w", 42, ErrWouldBlock)
	assert.True(t, errors.Is(err, ErrWouldBlock))
}
