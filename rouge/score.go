//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

// LengthsKey is the ScoreSet entry holding word counts when WithReturnLengths is set.
const LengthsKey = "lengths"

// Length stat names under LengthsKey.
const (
	LengthHyp = "hyp"
	LengthRef = "ref"
)

// Score maps a stat name such as "f", "p" or "r" to its value.
type Score map[string]float64

// ScoreSet maps a metric name such as "rouge-1" to its Score.
type ScoreSet map[string]Score

// average returns the arithmetic mean of every metric and stat across sets.
// Sums are accumulated in slice order. sets must not be empty.
func average(sets []ScoreSet) ScoreSet {
	out := make(ScoreSet, len(sets[0]))
	for metric, first := range sets[0] {
		mean := make(Score, len(first))
		for stat := range first {
			var sum float64
			for _, set := range sets {
				sum += set[metric][stat]
			}
			mean[stat] = sum / float64(len(sets))
		}
		out[metric] = mean
	}
	return out
}
