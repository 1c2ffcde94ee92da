//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package mysql

import "time"

const (
	defaultTableName   = "rouge_reports"
	defaultInitTimeout = 30 * time.Second
)

type options struct {
	dsn          string
	tablePrefix  string
	skipDBInit   bool
	initTimeout  time.Duration
	maxOpenConns int
}

func newOptions(opt ...Option) *options {
	opts := &options{initTimeout: defaultInitTimeout}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures the MySQL sink.
type Option func(*options)

// WithMySQLClientDSN sets the data source name, for example
// "user:password@tcp(localhost:3306)/rouge?parseTime=true".
func WithMySQLClientDSN(dsn string) Option {
	return func(o *options) {
		o.dsn = dsn
	}
}

// WithTablePrefix prefixes the reports table name.
func WithTablePrefix(prefix string) Option {
	return func(o *options) {
		o.tablePrefix = prefix
	}
}

// WithSkipDBInit skips table creation on start.
func WithSkipDBInit(skip bool) Option {
	return func(o *options) {
		o.skipDBInit = skip
	}
}

// WithInitTimeout bounds table creation. Non-positive values keep the default.
func WithInitTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.initTimeout = timeout
		}
	}
}

// WithMaxOpenConns caps the connection pool.
func WithMaxOpenConns(n int) Option {
	return func(o *options) {
		o.maxOpenConns = n
	}
}
