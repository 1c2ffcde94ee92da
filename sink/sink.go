//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package sink defines where scoring reports are persisted.
package sink

import (
	"context"
	"time"

	"github.com/google/uuid"
	"trpc.group/trpc-go/trpc-rouge-go/rouge"
)

// Report is one scoring run as handed to a Sink.
type Report struct {
	// ID identifies the report. Sinks assign one when empty.
	ID string `json:"id"`
	// Name is a free-form label such as the scored file names.
	Name string `json:"name,omitempty"`
	// Metrics lists the metric names that were computed.
	Metrics []string `json:"metrics"`
	// Scores holds per-pair results when the run was not averaged.
	Scores []rouge.ScoreSet `json:"scores,omitempty"`
	// Average holds the averaged result when the run was averaged.
	Average rouge.ScoreSet `json:"average,omitempty"`
	// CreatedAt is the time the report was produced.
	CreatedAt time.Time `json:"created_at"`
}

// Sink persists reports.
type Sink interface {
	// Save stores the report and returns its ID.
	Save(ctx context.Context, report *Report) (string, error)
	// Get loads a report by ID.
	Get(ctx context.Context, id string) (*Report, error)
	// Close releases the sink's resources.
	Close() error
}

// NewReportID returns a random report ID.
func NewReportID() string {
	return uuid.New().String()
}

// NewReport builds a report from a scorer's metrics and file scores.
func NewReport(name string, metrics []rouge.Metric, scores *rouge.FileScores) *Report {
	names := make([]string, 0, len(metrics))
	for _, m := range metrics {
		names = append(names, m.String())
	}
	r := &Report{
		Name:      name,
		Metrics:   names,
		CreatedAt: time.Now().UTC(),
	}
	if scores != nil {
		r.Scores = scores.Scores
		r.Average = scores.Average
	}
	return r
}
