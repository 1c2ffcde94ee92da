//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package mysql provides a MySQL sink for scoring reports.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"trpc.group/trpc-go/trpc-rouge-go/rouge"
	"trpc.group/trpc-go/trpc-rouge-go/sink"
	storage "trpc.group/trpc-go/trpc-rouge-go/storage/mysql"
)

const createTableSQL = `CREATE TABLE IF NOT EXISTS %s (
  id VARCHAR(64) NOT NULL,
  name VARCHAR(255) NOT NULL DEFAULT '',
  metrics JSON NOT NULL,
  scores JSON NULL,
  average JSON NULL,
  created_at TIMESTAMP(6) NOT NULL,
  updated_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),
  PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

var _ sink.Sink = (*mysqlSink)(nil)

type mysqlSink struct {
	db    storage.Client
	table string
}

// New creates a MySQL-backed sink and creates its table unless skipped.
func New(opts ...Option) (sink.Sink, error) {
	o := newOptions(opts...)
	builderOpts := []storage.ClientBuilderOpt{
		storage.WithClientBuilderDSN(o.dsn),
		storage.WithPingTimeout(o.initTimeout),
	}
	if o.maxOpenConns > 0 {
		builderOpts = append(builderOpts, storage.WithMaxOpenConns(o.maxOpenConns))
	}
	db, err := storage.GetClientBuilder()(builderOpts...)
	if err != nil {
		return nil, fmt.Errorf("create mysql client failed: %w", err)
	}
	s := &mysqlSink{db: db, table: o.tablePrefix + defaultTableName}
	if !o.skipDBInit {
		ctx, cancel := context.WithTimeout(context.Background(), o.initTimeout)
		defer cancel()
		if _, err := db.ExecContext(ctx, fmt.Sprintf(createTableSQL, s.table)); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init database failed: %w", err)
		}
	}
	return s, nil
}

// Save upserts a report.
func (s *mysqlSink) Save(ctx context.Context, report *sink.Report) (string, error) {
	if report == nil {
		return "", errors.New("report is nil")
	}
	if report.ID == "" {
		report.ID = sink.NewReportID()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	metrics := report.Metrics
	if metrics == nil {
		metrics = []string{}
	}
	metricsPayload, err := json.Marshal(metrics)
	if err != nil {
		return "", fmt.Errorf("marshal metrics: %w", err)
	}
	var scoresPayload, averagePayload any
	if report.Scores != nil {
		b, err := json.Marshal(report.Scores)
		if err != nil {
			return "", fmt.Errorf("marshal scores: %w", err)
		}
		scoresPayload = b
	}
	if report.Average != nil {
		b, err := json.Marshal(report.Average)
		if err != nil {
			return "", fmt.Errorf("marshal average: %w", err)
		}
		averagePayload = b
	}
	query := fmt.Sprintf(
		`INSERT INTO %s (id, name, metrics, scores, average, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE
		   name = VALUES(name),
		   metrics = VALUES(metrics),
		   scores = VALUES(scores),
		   average = VALUES(average),
		   updated_at = CURRENT_TIMESTAMP(6)`,
		s.table,
	)
	if _, err := s.db.ExecContext(ctx, query, report.ID, report.Name, metricsPayload,
		scoresPayload, averagePayload, report.CreatedAt); err != nil {
		return "", fmt.Errorf("store report %s: %w", report.ID, err)
	}
	return report.ID, nil
}

// Get loads a report by ID.
func (s *mysqlSink) Get(ctx context.Context, id string) (*sink.Report, error) {
	if id == "" {
		return nil, errors.New("report id is empty")
	}
	var (
		name           string
		metricsPayload []byte
		scoresPayload  []byte
		averagePayload []byte
		createdAt      time.Time
	)
	query := fmt.Sprintf("SELECT name, metrics, scores, average, created_at FROM %s WHERE id = ?", s.table)
	row := s.db.QueryRowContext(ctx, query, id)
	if err := row.Scan(&name, &metricsPayload, &scoresPayload, &averagePayload, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("report %s not found: %w", id, os.ErrNotExist)
		}
		return nil, fmt.Errorf("load report %s: %w", id, err)
	}
	report := &sink.Report{ID: id, Name: name, CreatedAt: createdAt}
	if err := json.Unmarshal(metricsPayload, &report.Metrics); err != nil {
		return nil, fmt.Errorf("unmarshal metrics %s: %w", id, err)
	}
	if len(scoresPayload) > 0 {
		var scores []rouge.ScoreSet
		if err := json.Unmarshal(scoresPayload, &scores); err != nil {
			return nil, fmt.Errorf("unmarshal scores %s: %w", id, err)
		}
		report.Scores = scores
	}
	if len(averagePayload) > 0 {
		var avg rouge.ScoreSet
		if err := json.Unmarshal(averagePayload, &avg); err != nil {
			return nil, fmt.Errorf("unmarshal average %s: %w", id, err)
		}
		report.Average = avg
	}
	return report, nil
}

// Close implements sink.Sink.
func (s *mysqlSink) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
