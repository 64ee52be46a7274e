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
	"fmt"
)

// These errors are the base errors, which are used for checking in errors.Is()
var (
	// ErrWouldBlock is reported by a nonblocking transport whose send
	// buffer cannot accept more bytes right now. It is not a failure:
	// the drain loop converts it into a backpressure signal.
	ErrWouldBlock = errors.New("write would block")

	// ErrBodyTooLong is reported when a write exceeds the declared
	// Content-Length of a fixed-length body.
	ErrBodyTooLong = errors.New("body length exceeds the declared Content-Length")

	// ErrBodyIncomplete is reported when a body is finalized before the
	// declared Content-Length has been satisfied, or when the encoder
	// cannot confirm EOF.
	ErrBodyIncomplete = errors.New("body finalized before reaching the declared Content-Length")

	ErrConnectionClosed = errors.New("connection closed")
	ErrTimeout          = errors.New("timeout")
)

// ErrorType is an unsigned 64-bit error code.
type ErrorType uint64

const (
	// ErrorTypePrivate indicates a private error.
	ErrorTypePrivate ErrorType = 1 << iota
	// ErrorTypePublic indicates a public error.
	ErrorTypePublic
	// ErrorTypeAny indicates any other error.
	ErrorTypeAny
)

type Error struct {
	Err  error
	Type ErrorType
	Meta interface{}
}

var _ error = (*Error)(nil)

// SetType sets the error's type.
func (msg *Error) SetType(flags ErrorType) *Error {
	msg.Type = flags
	return msg
}

func (msg *Error) Error() string {
	return msg.Err.Error()
}

func (msg *Error) Unwrap() error {
	return msg.Err
}

// SetMeta sets the error's meta data.
func (msg *Error) SetMeta(data interface{}) *Error {
	msg.Meta = data
	return msg
}

// IsType judges one error.
func (msg *Error) IsType(flags ErrorType) bool {
	return (msg.Type & flags) > 0
}

func New(err error, t ErrorType, meta interface{}) *Error {
	return &Error{
		Err:  err,
		Type: t,
		Meta: meta,
	}
}

// NewPublic is a shortcut for creating a public *Error from string
func NewPublic(err string) *Error {
	return New(errors.New(err), ErrorTypePublic, nil)
}

// NewPrivate is a shortcut for creating a private *Error from string
func NewPrivate(err string) *Error {
	return New(errors.New(err), ErrorTypePrivate, nil)
}

func Newf(t ErrorType, meta interface{}, format string, v ...interface{}) *Error {
	return New(fmt.Errorf(format, v...), t, meta)
}

func NewPublicf(format string, v ...interface{}) *Error {
	return New(fmt.Errorf(format, v...), ErrorTypePublic, nil)
}

func NewPrivatef(format string, v ...interface{}) *Error {
	return New(fmt.Errorf(format, v...), ErrorTypePrivate, nil)
}
