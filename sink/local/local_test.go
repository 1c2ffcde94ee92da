//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package local

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-rouge-go/rouge"
	"trpc.group/trpc-go/trpc-rouge-go/sink"
)

func TestLocalSink_SaveAndGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	s := New(dir)
	defer s.Close()

	report := &sink.Report{
		Name:    "batch",
		Metrics: []string{"rouge-1"},
		Scores:  []rouge.ScoreSet{{"rouge-1": rouge.Score{"p": 0.8, "r": 0.8}}},
	}
	id, err := s.Save(context.Background(), report)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, report.ID)
	assert.FileExists(t, filepath.Join(dir, id+reportFileSuffix))
	assert.NoFileExists(t, filepath.Join(dir, id+reportFileSuffix+".tmp"))

	got, err := s.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "batch", got.Name)
	assert.Equal(t, 0.8, got.Scores[0]["rouge-1"]["p"])
}

func TestLocalSink_KeepsGivenID(t *testing.T) {
	s := New(t.TempDir())
	id, err := s.Save(context.Background(), &sink.Report{ID: "run-1"})
	require.NoError(t, err)
	assert.Equal(t, "run-1", id)
}

func TestLocalSink_Errors(t *testing.T) {
	s := New(t.TempDir())
	_, err := s.Save(context.Background(), nil)
	assert.Error(t, err)
	_, err = s.Save(context.Background(), &sink.Report{ID: "../escape"})
	assert.Error(t, err)
	_, err = s.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestNew_DefaultDir(t *testing.T) {
	s := New("").(*localSink)
	assert.Equal(t, DefaultBaseDir, s.baseDir)
}
