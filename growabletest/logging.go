// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package growabletest

import (
	"slices"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// A LogRecorder is a [logging.Logger] that stores all logs as [LogRecord]
// entries for inspection.
type LogRecorder struct {
	level   logging.Level
	with    []zap.Field
	records *[]*LogRecord
	// Methods not implemented below will panic, which is preferable to
	// embedding a [logging.NoLog] that would silently drop entries.
	logging.Logger
}

var _ logging.Logger = (*LogRecorder)(nil)

// A LogRecord is a single entry in a [LogRecorder].
type LogRecord struct {
	Level  logging.Level
	Msg    string
	Fields []zap.Field
}

// NewLogRecorder constructs a new [LogRecorder] at the specified level.
func NewLogRecorder(level logging.Level) *LogRecorder {
	return &LogRecorder{
		level:   level,
		records: new([]*LogRecord),
	}
}

// With returns a logger that shares its records with `l` and prepends
// `fields` to every entry.
func (l *LogRecorder) With(fields ...zap.Field) logging.Logger {
	return &LogRecorder{
		level:   l.level,
		with:    slices.Concat(l.with, fields),
		records: l.records,
	}
}

func (l *LogRecorder) log(lvl logging.Level, msg string, fields ...zap.Field) {
	if lvl < l.level {
		return
	}
	*l.records = append(*l.records, &LogRecord{
		Level:  lvl,
		Msg:    msg,
		Fields: slices.Concat(l.with, fields),
	})
}

func (l *LogRecorder) Verbo(msg string, fs ...zap.Field) { l.log(logging.Verbo, msg, fs...) }
func (l *LogRecorder) Debug(msg string, fs ...zap.Field) { l.log(logging.Debug, msg, fs...) }
func (l *LogRecorder) Trace(msg string, fs ...zap.Field) { l.log(logging.Trace, msg, fs...) }
func (l *LogRecorder) Info(msg string, fs ...zap.Field)  { l.log(logging.Info, msg, fs...) }
func (l *LogRecorder) Warn(msg string, fs ...zap.Field)  { l.log(logging.Warn, msg, fs...) }
func (l *LogRecorder) Error(msg string, fs ...zap.Field) { l.log(logging.Error, msg, fs...) }
func (l *LogRecorder) Fatal(msg string, fs ...zap.Field) { l.log(logging.Fatal, msg, fs...) }

// Records returns all recorded logs.
func (l *LogRecorder) Records() []*LogRecord {
	return *l.records
}

// Filter returns the recorded logs for which `fn` returns true.
func (l *LogRecorder) Filter(fn func(*LogRecord) bool) []*LogRecord {
	var out []*LogRecord
	for _, r := range *l.records {
		if fn(r) {
			out = append(out, r)
		}
	}
	return out
}

// At returns all recorded logs at the specified [logging.Level].
func (l *LogRecorder) At(lvl logging.Level) []*LogRecord {
	return l.Filter(func(r *LogRecord) bool { return r.Level == lvl })
}

// A Resize is the decoded form of a resize log entry.
type Resize struct {
	Msg       string
	Container string
	From, To  int
	Size      int
}

// Resizes decodes every recorded resize entry, in the order they were logged.
func (l *LogRecorder) Resizes() []Resize {
	var out []Resize
	for _, r := range *l.records {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range r.Fields {
			f.AddTo(enc)
		}
		kind, ok := enc.Fields["container"].(string)
		if !ok {
			continue
		}
		out = append(out, Resize{
			Msg:       r.Msg,
			Container: kind,
			From:      asInt(enc.Fields["from"]),
			To:        asInt(enc.Fields["to"]),
			Size:      asInt(enc.Fields["size"]),
		})
	}
	return out
}

func asInt(v any) int {
	switch v := v.(type) {
	case int:
		return v
	case int64:
		return int(v)
	default:
		return -1
	}
}
