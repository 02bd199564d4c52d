package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

const (
	ansiReset  = "\033[0m"
	ansiDim    = "\033[2m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
	ansiCyan   = "\033[36m"
)

// terminalHandler renders records as colored single-line output for humans.
type terminalHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	groups []string
}

func newTerminalHandler(w io.Writer, opts *slog.HandlerOptions) *terminalHandler {
	h := &terminalHandler{
		w:  w,
		mu: &sync.Mutex{},
	}
	if opts != nil {
		h.opts = *opts
	}
	if h.opts.Level == nil {
		h.opts.Level = slog.LevelInfo
	}
	return h
}

func (h *terminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *terminalHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	sb.WriteString(ansiDim)
	sb.WriteString(r.Time.Format("15:04:05.000"))
	sb.WriteString(ansiReset)
	sb.WriteString(" ")

	switch {
	case r.Level >= slog.LevelError:
		sb.WriteString(ansiRed + "ERR" + ansiReset)
	case r.Level >= slog.LevelWarn:
		sb.WriteString(ansiYellow + "WRN" + ansiReset)
	case r.Level >= slog.LevelInfo:
		sb.WriteString(ansiBlue + "INF" + ansiReset)
	default:
		sb.WriteString(ansiCyan + "DBG" + ansiReset)
	}
	sb.WriteString(" ")

	sb.WriteString(ansiBold)
	sb.WriteString(r.Message)
	sb.WriteString(ansiReset)

	prefix := strings.Join(h.groups, ".")
	for _, attr := range h.attrs {
		h.appendAttr(&sb, prefix, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		h.appendAttr(&sb, prefix, attr)
		return true
	})

	sb.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

func (h *terminalHandler) appendAttr(sb *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	key := attr.Key
	if prefix != "" {
		key = prefix + "." + key
	}

	if attr.Value.Kind() == slog.KindGroup {
		for _, ga := range attr.Value.Group() {
			h.appendAttr(sb, key, ga)
		}
		return
	}

	sb.WriteString(" ")
	sb.WriteString(ansiDim)
	sb.WriteString(key)
	sb.WriteString("=")
	sb.WriteString(formatAttrValue(attr.Value))
	sb.WriteString(ansiReset)
}

func formatAttrValue(v slog.Value) string {
	if v.Kind() == slog.KindString {
		s := v.String()
		if strings.ContainsAny(s, " \t\n\"\\") {
			return fmt.Sprintf("%q", s)
		}
		return s
	}
	return v.String()
}

func (h *terminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	nh.attrs = append(nh.attrs, attrs...)
	return &nh
}

func (h *terminalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = make([]string, 0, len(h.groups)+1)
	nh.groups = append(nh.groups, h.groups...)
	nh.groups = append(nh.groups, name)
	return &nh
}
