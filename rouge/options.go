//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

const (
	defaultExcludeMinN = 2
	defaultExcludeMaxN = 4
	defaultParallelism = 1
)

// options holds scorer configuration before validation.
type options struct {
	// metrics holds the requested metric names; nil selects DefaultMetrics.
	metrics []string
	// stats holds the requested stat names; nil selects DefaultStats.
	stats []string
	// exclusive selects set semantics for n-gram and LCS counting.
	exclusive bool
	// rawResults reports raw counts instead of ratios.
	rawResults bool
	// returnLengths adds hypothesis and reference word counts to every score set.
	returnLengths bool
	// excludeMinN and excludeMaxN bound the n-gram sizes removed by exclusion.
	excludeMinN int
	excludeMaxN int
	// parallelism is the number of workers scoring pairs concurrently.
	parallelism int
}

// newOptions applies functional options over the defaults.
func newOptions(opt ...Option) *options {
	opts := &options{
		exclusive:   true,
		excludeMinN: defaultExcludeMinN,
		excludeMaxN: defaultExcludeMaxN,
		parallelism: defaultParallelism,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures a Rouge scorer.
type Option func(*options)

// WithMetrics selects metrics by name, for example "rouge-1" or "rouge-l".
func WithMetrics(metrics ...string) Option {
	return func(o *options) {
		o.metrics = append([]string{}, metrics...)
	}
}

// WithStats selects stats by name: "f", "p" or "r".
func WithStats(stats ...string) Option {
	return func(o *options) {
		o.stats = append([]string{}, stats...)
	}
}

// WithExclusive toggles set semantics for overlap counting. It is enabled by default.
func WithExclusive(exclusive bool) Option {
	return func(o *options) {
		o.exclusive = exclusive
	}
}

// WithRawResults reports hyp, ref and overlap counts instead of precision, recall and F1.
func WithRawResults(raw bool) Option {
	return func(o *options) {
		o.rawResults = raw
	}
}

// WithReturnLengths adds a "lengths" entry with word counts to every score set.
func WithReturnLengths(returnLengths bool) Option {
	return func(o *options) {
		o.returnLengths = returnLengths
	}
}

// WithExcludeNGramRange sets the n-gram sizes removed by WithExclude, largest first.
func WithExcludeNGramRange(minN, maxN int) Option {
	return func(o *options) {
		o.excludeMinN = minN
		o.excludeMaxN = maxN
	}
}

// WithParallelism scores pairs on up to n workers.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// scoreOptions holds per-call configuration.
type scoreOptions struct {
	ignoreEmpty bool
	excludes    []string
}

// ScoreOption configures a single scoring call.
type ScoreOption func(*scoreOptions)

func newScoreOptions(opt ...ScoreOption) *scoreOptions {
	opts := &scoreOptions{}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithIgnoreEmpty drops pairs whose hypothesis or reference is empty instead of failing.
func WithIgnoreEmpty(ignoreEmpty bool) ScoreOption {
	return func(o *scoreOptions) {
		o.ignoreEmpty = ignoreEmpty
	}
}

// WithExclude removes n-grams shared with excludes[i] from the i-th pair
// before scoring. It implies WithIgnoreEmpty(true).
func WithExclude(excludes []string) ScoreOption {
	return func(o *scoreOptions) {
		o.excludes = excludes
	}
}
