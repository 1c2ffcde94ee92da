//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//


// Package mysql opens the MySQL connections used by the report sinks.
//
// The builder is a package variable so that tests can hand out sqlmock
// connections through SetClientBuilder.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

const defaultPingTimeout = 5 * time.Second

// Client is the part of *sql.DB the sinks need.
type Client interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	Close() error
}

// ClientBuilder opens a Client.
type ClientBuilder func(builderOpts ...ClientBuilderOpt) (Client, error)

var builder ClientBuilder = DefaultClientBuilder

// SetClientBuilder replaces the builder used by the sinks.
func SetClientBuilder(b ClientBuilder) {
	builder = b
}

// GetClientBuilder returns the current builder.
func GetClientBuilder() ClientBuilder {
	return builder
}

// ClientBuilderOpts collects the connection settings.
type ClientBuilderOpts struct {
	// DSN in go-sql-driver/mysql form, e.g. "user:pass@tcp(localhost:3306)/rouge?parseTime=true".
	// parseTime is required to scan report timestamps.
	DSN string
	// MaxOpenConns caps the pool; zero leaves database/sql's default.
	MaxOpenConns int
	// PingTimeout bounds the connectivity check after opening.
	PingTimeout time.Duration
}

// ClientBuilderOpt sets one connection setting.
type ClientBuilderOpt func(*ClientBuilderOpts)

// WithClientBuilderDSN sets the DSN.
func WithClientBuilderDSN(dsn string) ClientBuilderOpt {
	return func(o *ClientBuilderOpts) {
		o.DSN = dsn
	}
}

// WithMaxOpenConns caps the number of open connections.
func WithMaxOpenConns(n int) ClientBuilderOpt {
	return func(o *ClientBuilderOpts) {
		o.MaxOpenConns = n
	}
}

// WithPingTimeout bounds the initial ping. Non-positive values keep the default.
func WithPingTimeout(d time.Duration) ClientBuilderOpt {
	return func(o *ClientBuilderOpts) {
		if d > 0 {
			o.PingTimeout = d
		}
	}
}

// DefaultClientBuilder opens a pool with go-sql-driver/mysql and fails unless
// the server answers a ping in time.
func DefaultClientBuilder(builderOpts ...ClientBuilderOpt) (Client, error) {
	o := &ClientBuilderOpts{PingTimeout: defaultPingTimeout}
	for _, opt := range builderOpts {
		opt(o)
	}
	if o.DSN == "" {
		return nil, errors.New("mysql: dsn is empty")
	}
	db, err := sql.Open("mysql", o.DSN)
	if err != nil {
		return nil, fmt.Errorf("mysql: open: %w", err)
	}
	if o.MaxOpenConns > 0 {
		db.SetMaxOpenConns(o.MaxOpenConns)
	}
	ctx, cancel := context.WithTimeout(context.Background(), o.PingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mysql: ping failed: %w", err)
	}
	return db, nil
}
