package logging

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// Redaction is the placeholder written in place of sensitive values.
const Redaction = "***"

// RedactingHandler wraps a slog.Handler and masks the values of a fixed
// set of attribute keys. Group structure is preserved; only leaf values
// with a matching key are replaced.
type RedactingHandler struct {
	inner slog.Handler
	keys  map[string]struct{}
}

// NewRedactingHandler creates a handler that redacts the given keys.
func NewRedactingHandler(inner slog.Handler, keys []string) *RedactingHandler {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return &RedactingHandler{inner: inner, keys: set}
}

func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *RedactingHandler) Handle(ctx context.Context, record slog.Record) error {
	redacted := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		redacted.AddAttrs(h.redact(attr))
		return true
	})
	return h.inner.Handle(ctx, redacted)
}

func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		masked[i] = h.redact(attr)
	}
	return &RedactingHandler{inner: h.inner.WithAttrs(masked), keys: h.keys}
}

func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{inner: h.inner.WithGroup(name), keys: h.keys}
}

func (h *RedactingHandler) redact(attr slog.Attr) slog.Attr {
	if attr.Value.Kind() == slog.KindGroup {
		group := attr.Value.Group()
		masked := make([]any, 0, len(group))
		for _, a := range group {
			masked = append(masked, h.redact(a))
		}
		return slog.Group(attr.Key, masked...)
	}
	if _, ok := h.keys[attr.Key]; ok {
		return slog.String(attr.Key, Redaction)
	}
	return attr
}

// RedactFields rewrites "field=value" pairs of a flat log line, replacing
// the value of every named field with the redaction string. separator is
// the character that terminates a pair.
func RedactFields(fields []string, redaction, message, separator string) string {
	if len(fields) == 0 {
		return message
	}
	alternates := make([]string, len(fields))
	for i, field := range fields {
		alternates[i] = regexp.QuoteMeta(field)
	}
	pattern := regexp.MustCompile(fmt.Sprintf(`(%s)=[^%s]*`,
		strings.Join(alternates, "|"), regexp.QuoteMeta(separator)))
	return pattern.ReplaceAllString(message, "${1}="+redaction)
}
