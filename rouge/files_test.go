//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestReadLines verifies terminator stripping and final line handling.
func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		content string
		want    []string
	}{
		{content: "", want: nil},
		{content: "a\n", want: []string{"a"}},
		{content: "a\n\nb", want: []string{"a", "", "b"}},
		{content: "a\r\nb\r\n", want: []string{"a", "b"}},
	}
	for i, c := range cases {
		path := writeFile(t, dir, filepath.Base(t.Name())+string(rune('a'+i)), c.content)
		lines, err := readLines(path)
		require.NoError(t, err)
		assert.Equal(t, c.want, lines, "%q", c.content)
	}
	_, err := readLines(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

// TestScoreFiles verifies per-line scoring against the in-memory result.
func TestScoreFiles(t *testing.T) {
	dir := t.TempDir()
	hyp := writeFile(t, dir, "hyp.txt", catHyp+"\r\nhello world\n")
	ref := writeFile(t, dir, "ref.txt", catRef+"\nhello there\n")

	r, err := New()
	require.NoError(t, err)
	got, err := r.ScoreFiles(context.Background(), hyp, ref)
	require.NoError(t, err)
	assert.Nil(t, got.Average)

	want, err := r.GetScores(context.Background(), []string{catHyp, "hello world"}, []string{catRef, "hello there"})
	require.NoError(t, err)
	assert.Equal(t, want, got.Scores)

	avg, err := r.ScoreFiles(context.Background(), hyp, ref, WithAvg(true))
	require.NoError(t, err)
	assert.Nil(t, avg.Scores)
	assert.InDelta(t, (0.8+0.5)/2, avg.Average["rouge-1"]["p"], 1e-12)
}

// TestScoreFiles_Mismatch verifies that differing line counts fail before scoring.
func TestScoreFiles_Mismatch(t *testing.T) {
	dir := t.TempDir()
	hyp := writeFile(t, dir, "hyp.txt", "a\nb\n")
	ref := writeFile(t, dir, "ref.txt", "a\nb\nc\n")
	exc := writeFile(t, dir, "exc.txt", "a\n")

	r, err := New()
	require.NoError(t, err)
	_, err = r.ScoreFiles(context.Background(), hyp, ref)
	assert.ErrorIs(t, err, ErrFileMismatch)
	_, err = r.ScoreFiles(context.Background(), hyp, hyp, WithExcludeFile(exc))
	assert.ErrorIs(t, err, ErrFileMismatch)
	_, err = r.ScoreFiles(context.Background(), hyp, filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

// TestScoreFiles_IgnoreEmptyAndExclude verifies that file options reach the scorer.
func TestScoreFiles_IgnoreEmptyAndExclude(t *testing.T) {
	dir := t.TempDir()
	hyp := writeFile(t, dir, "hyp.txt", catHyp+"\n\nthe cat sat on a red mat\n")
	ref := writeFile(t, dir, "ref.txt", catRef+"\nx\na red mat indeed\n")
	exc := writeFile(t, dir, "exc.txt", "\n\n"+catHyp+"\n")

	r, err := New(WithMetrics("rouge-1"))
	require.NoError(t, err)

	_, err = r.ScoreFiles(context.Background(), hyp, ref)
	assert.ErrorIs(t, err, ErrEmptyInput)

	got, err := r.ScoreFiles(context.Background(), hyp, ref, WithIgnoreEmptyLines(true))
	require.NoError(t, err)
	assert.Len(t, got.Scores, 2)

	excluded, err := r.ScoreFiles(context.Background(), hyp, ref, WithExcludeFile(exc))
	require.NoError(t, err)
	require.Len(t, excluded.Scores, 2)
	assert.Equal(t, 0.8, excluded.Scores[0]["rouge-1"]["p"])
	assert.Equal(t, 0.75, excluded.Scores[1]["rouge-1"]["r"])
}
