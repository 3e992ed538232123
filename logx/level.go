// Copyright (c) 2026, The Serialdict Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides logging levels and a default colored
// [slog.Handler] for the library. Library code logs through the
// standard [log/slog] calls; logx controls what the user sees.
package logx

import "log/slog"

// UserLevel is the minimum [slog.Level] that reaches the user.
// Records below it are dropped by [Handler]. It starts at
// [slog.LevelWarn] so that routine reconciliation chatter stays
// quiet unless verbosity is raised.
var UserLevel = slog.LevelWarn

// LevelFromFlags maps the usual verbosity command line flags to a
// [slog.Level]: vv selects [slog.LevelDebug], v selects
// [slog.LevelInfo], and q selects [slog.LevelError]. With none set
// it returns [slog.LevelWarn]. When several are set, the most
// verbose one wins.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
