//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// fileOptions holds configuration for ScoreFiles.
type fileOptions struct {
	avg         bool
	ignoreEmpty bool
	excludePath string
}

// FileOption configures ScoreFiles.
type FileOption func(*fileOptions)

// WithAvg returns the average over all lines instead of per-line scores.
func WithAvg(avg bool) FileOption {
	return func(o *fileOptions) {
		o.avg = avg
	}
}

// WithIgnoreEmptyLines drops line pairs where either side is empty.
func WithIgnoreEmptyLines(ignoreEmpty bool) FileOption {
	return func(o *fileOptions) {
		o.ignoreEmpty = ignoreEmpty
	}
}

// WithExcludeFile removes n-grams shared with the matching line of path.
func WithExcludeFile(path string) FileOption {
	return func(o *fileOptions) {
		o.excludePath = path
	}
}

// FileScores is the result of ScoreFiles. Exactly one of Scores and Average is set.
type FileScores struct {
	// Scores holds one ScoreSet per scored line pair.
	Scores []ScoreSet `json:"scores,omitempty"`
	// Average holds the mean over all scored line pairs.
	Average ScoreSet `json:"average,omitempty"`
}

// ScoreFiles scores the i-th line of hypPath against the i-th line of
// refPath. All files are read into memory before scoring and must have the
// same number of lines.
func (r *Rouge) ScoreFiles(ctx context.Context, hypPath, refPath string, opt ...FileOption) (*FileScores, error) {
	opts := &fileOptions{}
	for _, o := range opt {
		o(opts)
	}
	hyps, err := readLines(hypPath)
	if err != nil {
		return nil, err
	}
	refs, err := readLines(refPath)
	if err != nil {
		return nil, err
	}
	if len(hyps) != len(refs) {
		return nil, fmt.Errorf("%w: %s has %d lines, %s has %d lines",
			ErrFileMismatch, hypPath, len(hyps), refPath, len(refs))
	}
	scoreOpts := []ScoreOption{WithIgnoreEmpty(opts.ignoreEmpty)}
	if opts.excludePath != "" {
		excludes, err := readLines(opts.excludePath)
		if err != nil {
			return nil, err
		}
		if len(excludes) != len(hyps) {
			return nil, fmt.Errorf("%w: %s has %d lines, %s has %d lines",
				ErrFileMismatch, hypPath, len(hyps), opts.excludePath, len(excludes))
		}
		scoreOpts = append(scoreOpts, WithExclude(excludes))
	}

	if opts.avg {
		avg, err := r.GetAvgScores(ctx, hyps, refs, scoreOpts...)
		if err != nil {
			return nil, err
		}
		return &FileScores{Average: avg}, nil
	}
	scores, err := r.GetScores(ctx, hyps, refs, scoreOpts...)
	if err != nil {
		return nil, err
	}
	return &FileScores{Scores: scores}, nil
}

// readLines reads every line of path without its "\n" or "\r\n" terminator.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if err != nil {
			break
		}
	}
	return lines, nil
}
