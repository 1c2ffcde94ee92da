//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"errors"

	irouge "trpc.group/trpc-go/trpc-rouge-go/internal/rouge"
)

var (
	// ErrInvalidConfiguration is returned by New for unknown metric or stat names and bad option values.
	ErrInvalidConfiguration = errors.New("rouge: invalid configuration")
	// ErrEmptyInput is returned when a hypothesis or reference has no sentence to score.
	// Pass WithIgnoreEmpty(true) to drop such pairs instead.
	ErrEmptyInput = irouge.ErrEmptyInput
	// ErrLengthMismatch is returned when hypotheses, references or exclusions differ in length.
	ErrLengthMismatch = errors.New("rouge: hypotheses and references must have the same length")
	// ErrFileMismatch is returned when scored files differ in line count.
	ErrFileMismatch = errors.New("rouge: files must have the same number of lines")
	// ErrNoScoreablePairs is returned when averaging over zero pairs.
	ErrNoScoreablePairs = errors.New("rouge: no pairs left to score")
)
