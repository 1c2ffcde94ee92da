//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//


// Package log is the structured logger of trpc-rouge-go. Records are written
// to stderr so that scores printed on stdout stay machine readable.
package log

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger logs a message with alternating key/value fields.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

// level is shared by every logger built with New.
var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// Default is used by the package-level functions. Tests may replace it.
var Default Logger = New(zapcore.Lock(os.Stderr))

// New returns a console logger writing to w. Its level follows SetLevel.
func New(w zapcore.WriteSyncer) *zap.SugaredLogger {
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		CallerKey:      "caller",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	})
	core := zapcore.NewCore(enc, w, level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

// SetLevel sets the level of every logger from a zap level name such as
// "debug" or "warn". An empty name selects info.
func SetLevel(name string) error {
	l, err := zapcore.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	level.SetLevel(l)
	return nil
}

// Debugw logs at debug level.
func Debugw(msg string, keysAndValues ...any) {
	Default.Debugw(msg, keysAndValues...)
}

// Infow logs at info level.
func Infow(msg string, keysAndValues ...any) {
	Default.Infow(msg, keysAndValues...)
}

// Errorw logs at error level.
func Errorw(msg string, keysAndValues ...any) {
	Default.Errorw(msg, keysAndValues...)
}
