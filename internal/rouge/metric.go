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
	"fmt"
)

// fEpsilon keeps the F1 denominator positive when precision and recall are both zero.
const fEpsilon = 1e-8

// ErrEmptyInput is returned when a metric receives no hypothesis or no reference sentence.
var ErrEmptyInput = errors.New("rouge: collections must contain at least 1 sentence")

// Result holds every statistic a metric produces for one hypothesis/reference pair.
type Result struct {
	// Hyp is the hypothesis unit count used as the precision denominator.
	Hyp int
	// Ref is the reference unit count used as the recall denominator.
	Ref int
	// Overlap is the matched unit count.
	Overlap int
	// Precision is Overlap / Hyp.
	Precision float64
	// Recall is Overlap / Ref.
	Recall float64
	// F is the epsilon-guarded harmonic mean of Precision and Recall.
	F float64
}

// newResult derives precision, recall and F1 from raw counts. A zero
// denominator yields a zero ratio.
func newResult(hypCount, refCount, overlap int) Result {
	var precision, recall float64
	if hypCount > 0 {
		precision = float64(overlap) / float64(hypCount)
	}
	if refCount > 0 {
		recall = float64(overlap) / float64(refCount)
	}
	return Result{
		Hyp:       hypCount,
		Ref:       refCount,
		Overlap:   overlap,
		Precision: precision,
		Recall:    recall,
		F:         fMeasure(precision, recall),
	}
}

// fMeasure computes 2pr/(p+r) with a small epsilon in the denominator.
func fMeasure(precision, recall float64) float64 {
	return 2.0 * ((precision * recall) / (precision + recall + fEpsilon))
}

// RougeN computes ROUGE-N between hypothesis and reference sentences.
func RougeN(hyp, ref []string, n int, exclusive bool) (Result, error) {
	if len(hyp) == 0 || len(ref) == 0 {
		return Result{}, ErrEmptyInput
	}
	if n <= 0 {
		return Result{}, fmt.Errorf("rouge: invalid n-gram size %d", n)
	}
	hypNGrams := NewNGrams(n, SplitWords(hyp), exclusive)
	refNGrams := NewNGrams(n, SplitWords(ref), exclusive)
	overlap := hypNGrams.Intersection(refNGrams).Len()
	return newResult(hypNGrams.Len(), refNGrams.Len(), overlap), nil
}

// RougeLSummary computes summary-level ROUGE-L between hypothesis and
// reference sentences.
//
// For every reference sentence the LCS with each hypothesis sentence is
// reconstructed and merged into a union that spans all reference sentences.
// Each reference sentence contributes only the tokens it adds to that union.
// Precision and recall are normalized by the distinct word counts.
func RougeLSummary(hyp, ref []string, exclusive bool) (Result, error) {
	if len(hyp) == 0 || len(ref) == 0 {
		return Result{}, ErrEmptyInput
	}
	m := distinctCount(SplitWords(ref))
	n := distinctCount(SplitWords(hyp))

	hypWords := make([][]string, 0, len(hyp))
	for _, sentence := range hyp {
		hypWords = append(hypWords, SplitWords([]string{sentence}))
	}

	union := EmptyNGrams(exclusive)
	llcs := 0
	for _, sentence := range ref {
		refWords := SplitWords([]string{sentence})
		prevCount := union.Len()
		for _, words := range hypWords {
			union = union.Union(ReconstructLCS(refWords, words, exclusive))
		}
		llcs += union.Len() - prevCount
	}
	return newResult(n, m, llcs), nil
}

// distinctCount returns the number of distinct tokens.
func distinctCount(tokens []string) int {
	return NewNGrams(1, tokens, true).Len()
}
