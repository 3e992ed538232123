// Copyright (c) 2026, The Serialdict Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides easy, context-wrapped error handling: an
// [Error] type carrying a call stack, [Wrap]/[New]/[Errorf]
// constructors that annotate with it, the standard library errors
// functions so the package is a drop-in replacement, and logging
// and must/ignore helpers for handling the error values that
// pervade Go code.
package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Error represents an error with a base error and a stack trace.
type Error struct {
	Base  error
	Stack []string
}

// Wrap wraps the given error into an error object with
// a stack trace. It returns nil if the given error is nil.
// If it is not nil, the result is guaranteed to be of type [*Error].
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return &Error{
		Base:  err,
		Stack: stack(),
	}
}

// New returns a new error with the given text, wrapped with
// a stack trace via [Wrap]. The result is guaranteed to be of
// type [*Error]. It is the stack-annotated equivalent of [errors.New].
func New(text string) error {
	return Wrap(errors.New(text))
}

// Errorf returns a new error with the given format and arguments,
// wrapped with a stack trace via [Wrap]. The result is guaranteed to
// be of type [*Error]. It is the stack-annotated equivalent of
// [fmt.Errorf].
func Errorf(format string, a ...any) error {
	return Wrap(fmt.Errorf(format, a...))
}

// Error returns the error as a string, wrapping the string of
// the base error with the stack trace.
func (e *Error) Error() string {
	res := e.Base.Error()
	if len(e.Stack) > 0 {
		res += " (" + strings.Join(e.Stack, ": ") + ")"
	}
	return res
}

// String returns the error as a string, wrapping the string of
// the base error with the stack trace.
func (e *Error) String() string {
	return e.Error()
}

// Unwrap returns the underlying base error of the Error.
func (e *Error) Unwrap() error {
	return e.Base
}

// stack returns the function call stack of the caller of the
// constructor that captured it, innermost first.
func stack() []string {
	var pcs [8]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	var st []string
	for {
		f, more := frames.Next()
		if f.Function != "" {
			st = append(st, f.Function)
		}
		if !more {
			break
		}
	}
	return st
}

// Is reports whether any error in err's tree matches target.
// It is the same as [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// It is the same as [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors.
// It is the same as [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap returns the result of calling the Unwrap method on err.
// It is the same as [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
