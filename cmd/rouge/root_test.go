//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-rouge-go/config"
	"trpc.group/trpc-go/trpc-rouge-go/log"
	"trpc.group/trpc-go/trpc-rouge-go/rouge"
)

const (
	hypText = "the cat was found under the bed"
	refText = "the cat was under the bed"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		config.EnvMetrics, config.EnvStats, config.EnvExclusive, config.EnvRaw, config.EnvLengths,
		config.EnvParallelism, config.EnvLogLevel, config.EnvSink, config.EnvSinkDir, config.EnvMySQLDSN,
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

// runCmd runs the root command and returns its stdout.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Definition(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "rouge <hypothesis> <reference>", cmd.Use)

	flags := cmd.Flags()
	file := flags.Lookup("file")
	require.NotNil(t, file)
	assert.Equal(t, "f", file.Shorthand)
	avg := flags.Lookup("avg")
	require.NotNil(t, avg)
	assert.Equal(t, "a", avg.Shorthand)
	for _, name := range []string{"ignore_empty", "metrics", "stats", "exclude", "exclusive",
		"raw", "lengths", "parallelism", "config", "log-level", "sink", "sink-dir", "mysql-dsn", "name"} {
		assert.NotNil(t, flags.Lookup(name), name)
	}
	assert.Equal(t, "true", flags.Lookup("exclusive").DefValue)

	assert.Error(t, cmd.Args(cmd, []string{"only one"}))
	assert.NoError(t, cmd.Args(cmd, []string{"hyp", "ref"}))
}

func TestRun_TextMode(t *testing.T) {
	clearEnv(t)
	out, err := runCmd(t, hypText, refText)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[\n  {"), "output is indented by two spaces")

	var sets []rouge.ScoreSet
	require.NoError(t, json.Unmarshal([]byte(out), &sets))
	require.Len(t, sets, 1)
	assert.Len(t, sets[0], 3)
	assert.Equal(t, 1.0, sets[0]["rouge-1"]["r"])
	assert.InDelta(t, 5.0/6.0, sets[0]["rouge-1"]["p"], 1e-12)
	assert.Len(t, sets[0]["rouge-l"], 3)
}

func TestRun_ShortMetricsAndStats(t *testing.T) {
	clearEnv(t)
	out, err := runCmd(t, "--metrics", "1,l", "--stats", "F", hypText, refText)
	require.NoError(t, err)

	var sets []rouge.ScoreSet
	require.NoError(t, json.Unmarshal([]byte(out), &sets))
	require.Len(t, sets, 1)
	assert.Len(t, sets[0], 2)
	assert.Equal(t, []string{"f"}, keys(sets[0]["rouge-1"]))
	assert.Equal(t, []string{"f"}, keys(sets[0]["rouge-l"]))
}

func TestRun_AvgTextMode(t *testing.T) {
	clearEnv(t)
	out, err := runCmd(t, "-a", "--raw", hypText, refText)
	require.NoError(t, err)

	var avg rouge.ScoreSet
	require.NoError(t, json.Unmarshal([]byte(out), &avg))
	assert.Equal(t, 6.0, avg["rouge-1"]["hyp"])
	assert.Equal(t, 5.0, avg["rouge-1"]["ref"])
	assert.Equal(t, 5.0, avg["rouge-1"]["overlap"])
}

func TestRun_FileModeWithLocalSink(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	hyp := filepath.Join(dir, "hyp.txt")
	ref := filepath.Join(dir, "ref.txt")
	require.NoError(t, os.WriteFile(hyp, []byte(hypText+"\n\nhello world\n"), 0o644))
	require.NoError(t, os.WriteFile(ref, []byte(refText+"\nx\nhello there\n"), 0o644))
	reports := filepath.Join(dir, "reports")

	out, err := runCmd(t, "-f", "-a", "--ignore_empty", "--sink", "local", "--sink-dir", reports, hyp, ref)
	require.NoError(t, err)

	var avg rouge.ScoreSet
	require.NoError(t, json.Unmarshal([]byte(out), &avg))
	assert.InDelta(t, (1.0+0.5)/2, avg["rouge-1"]["r"], 1e-12)

	entries, err := os.ReadDir(reports)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".report.json"))
}

func TestRun_Errors(t *testing.T) {
	clearEnv(t)
	_, err := runCmd(t, "--metrics", "7", "a", "b")
	assert.ErrorIs(t, err, rouge.ErrInvalidConfiguration)

	_, err = runCmd(t, "", refText)
	assert.ErrorIs(t, err, rouge.ErrEmptyInput)

	_, err = runCmd(t, "--sink", "mysql", "a", "b")
	assert.Error(t, err)

	dir := t.TempDir()
	_, err = runCmd(t, "-f", filepath.Join(dir, "missing1"), filepath.Join(dir, "missing2"))
	assert.Error(t, err)
}

func TestRun_FlagsOverrideEnvAndConfig(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "rouge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metrics: [rouge-2]\nstats: [r]\n"), 0o644))
	t.Setenv(config.EnvStats, "p")

	out, err := runCmd(t, "-c", path, hypText, refText)
	require.NoError(t, err)
	var sets []rouge.ScoreSet
	require.NoError(t, json.Unmarshal([]byte(out), &sets))
	assert.Equal(t, []string{"rouge-2"}, keys(sets[0]))
	assert.Equal(t, []string{"p"}, keys(sets[0]["rouge-2"]))

	out, err = runCmd(t, "-c", path, "--stats", "r", hypText, refText)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &sets))
	assert.Equal(t, []string{"r"}, keys(sets[0]["rouge-2"]))
}

func TestRun_EnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	_, err := runCmd(t, "--env-file", filepath.Join(dir, "missing.env"), hypText, refText)
	assert.ErrorIs(t, err, os.ErrNotExist)

	envFile := filepath.Join(dir, "rouge.env")
	require.NoError(t, os.WriteFile(envFile, []byte("ROUGE_METRICS=2\n"), 0o644))
	t.Setenv(config.EnvMetrics, "x")
	require.NoError(t, os.Unsetenv(config.EnvMetrics))
	out, err := runCmd(t, "--env-file", envFile, hypText, refText)
	require.NoError(t, err)
	var sets []rouge.ScoreSet
	require.NoError(t, json.Unmarshal([]byte(out), &sets))
	assert.Equal(t, []string{"rouge-2"}, keys(sets[0]))
}

func TestExecute_LogsFailure(t *testing.T) {
	clearEnv(t)
	stub := &errorLogger{}
	oldDefault := log.Default
	log.Default = stub
	t.Cleanup(func() { log.Default = oldDefault })

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--metrics", "9", "a", "b"})
	assert.Equal(t, 1, execute(cmd))
	require.Equal(t, []string{"rouge: command failed"}, stub.errors)
	require.Len(t, stub.fields, 2)
	assert.Equal(t, "error", stub.fields[0])
	assert.ErrorIs(t, stub.fields[1].(error), rouge.ErrInvalidConfiguration)

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"a", "a"})
	assert.Equal(t, 0, execute(cmd))
	assert.Len(t, stub.errors, 1)
}

type errorLogger struct {
	errors []string
	fields []any
}

func (l *errorLogger) Debugw(string, ...any) {}
func (l *errorLogger) Infow(string, ...any)  {}
func (l *errorLogger) Errorw(msg string, kv ...any) {
	l.errors = append(l.errors, msg)
	l.fields = kv
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
