// Copyright (c) 2026, The Serialdict Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// SetDefaultLogger sets the default logger to be a [Handler] writing
// to [os.Stderr] at [UserLevel]. It is called on program start by
// hosts that want the logx formatting; and it can be called again
// after UserLevel changes, although that is not necessary since the
// handler reads UserLevel on every message.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// Handler is a [slog.Handler] that prints compact, level-colored
// messages gated on [UserLevel].
type Handler struct {
	w      io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string
}

// NewHandler returns a new [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{w: w, mu: &sync.Mutex{}}
}

var (
	debugColor = color.New(color.FgCyan)
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed, color.Bold)
)

// levelLabel returns the colored display label for the given level.
func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return errorColor.Sprint("ERROR")
	case level >= slog.LevelWarn:
		return warnColor.Sprint("WARN")
	case level >= slog.LevelInfo:
		return infoColor.Sprint("INFO")
	default:
		return debugColor.Sprint("DEBUG")
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	b := &strings.Builder{}
	b.WriteString(levelLabel(r.Level))
	b.WriteString(" ")
	b.WriteString(r.Message)
	prefix := strings.Join(h.groups, ".")
	if prefix != "" {
		prefix += "."
	}
	for _, a := range h.attrs {
		writeAttr(b, prefix, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(b, prefix, a)
		return true
	})
	b.WriteString("\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	b.WriteString(" ")
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteString("=")
	b.WriteString(a.Value.String())
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := &Handler{w: h.w, mu: h.mu, groups: h.groups}
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := &Handler{w: h.w, mu: h.mu, attrs: h.attrs}
	nh.groups = append(append([]string{}, h.groups...), name)
	return nh
}
