//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package local provides a local file sink for scoring reports.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"trpc.group/trpc-go/trpc-rouge-go/sink"
)

// DefaultBaseDir is used when no directory is configured.
const DefaultBaseDir = "./rouge-reports"

const reportFileSuffix = ".report.json"

var _ sink.Sink = (*localSink)(nil)

// localSink stores every report as an indented JSON file under baseDir.
type localSink struct {
	baseDir string
	mu      sync.Mutex
}

// New creates a local file sink rooted at baseDir.
func New(baseDir string) sink.Sink {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	return &localSink{baseDir: baseDir}
}

// Save writes the report atomically through a temporary file.
func (s *localSink) Save(ctx context.Context, report *sink.Report) (string, error) {
	_ = ctx
	if report == nil {
		return "", errors.New("report is nil")
	}
	if report.ID == "" {
		report.ID = sink.NewReportID()
	}
	if strings.ContainsAny(report.ID, `/\`) {
		return "", fmt.Errorf("invalid report id %q", report.ID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", err
	}
	path := s.reportPath(report.ID)
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", err
	}
	return report.ID, nil
}

// Get reads a report by ID.
func (s *localSink) Get(ctx context.Context, id string) (*sink.Report, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.reportPath(id))
	if err != nil {
		return nil, fmt.Errorf("load report %s: %w", id, err)
	}
	var report sink.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("unmarshal report %s: %w", id, err)
	}
	return &report, nil
}

// Close implements sink.Sink.
func (s *localSink) Close() error {
	return nil
}

func (s *localSink) reportPath(id string) string {
	return filepath.Join(s.baseDir, id+reportFileSuffix)
}
