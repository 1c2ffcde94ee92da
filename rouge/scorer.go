//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package rouge scores hypothesis texts against reference texts with ROUGE-N
// and summary-level ROUGE-L.
//
// A Rouge scorer is configured once with New and is safe for concurrent use.
package rouge

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	irouge "trpc.group/trpc-go/trpc-rouge-go/internal/rouge"
	"trpc.group/trpc-go/trpc-rouge-go/log"
)

// Rouge holds an immutable scoring configuration.
type Rouge struct {
	metrics       []Metric
	stats         []Stat
	exclusive     bool
	rawResults    bool
	returnLengths bool
	excludeMinN   int
	excludeMaxN   int
	parallelism   int
}

// New validates the options and builds a scorer. Every unknown metric or stat
// name is reported in the returned error, which matches ErrInvalidConfiguration.
func New(opt ...Option) (*Rouge, error) {
	opts := newOptions(opt...)
	r := &Rouge{
		exclusive:     opts.exclusive,
		rawResults:    opts.rawResults,
		returnLengths: opts.returnLengths,
		excludeMinN:   opts.excludeMinN,
		excludeMaxN:   opts.excludeMaxN,
		parallelism:   opts.parallelism,
	}

	var errs error
	if opts.metrics == nil {
		r.metrics = append([]Metric{}, DefaultMetrics...)
	}
	for _, name := range opts.metrics {
		m, err := ParseMetric(name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		r.metrics = append(r.metrics, m)
	}
	if opts.stats == nil {
		r.stats = append([]Stat{}, DefaultStats...)
	}
	for _, name := range opts.stats {
		s, err := ParseStat(name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		r.stats = append(r.stats, s)
	}
	if r.rawResults {
		r.stats = append([]Stat{}, RawStats...)
	}
	if opts.excludeMinN < 1 || opts.excludeMaxN < opts.excludeMinN {
		errs = multierror.Append(errs, fmt.Errorf("%w: invalid exclude n-gram range [%d, %d]",
			ErrInvalidConfiguration, opts.excludeMinN, opts.excludeMaxN))
	}
	if opts.parallelism < 1 {
		errs = multierror.Append(errs, fmt.Errorf("%w: parallelism must be greater than 0, got %d",
			ErrInvalidConfiguration, opts.parallelism))
	}
	if errs != nil {
		return nil, errs
	}
	return r, nil
}

// Metrics returns the configured metrics.
func (r *Rouge) Metrics() []Metric {
	return append([]Metric{}, r.metrics...)
}

// Stats returns the reported stats.
func (r *Rouge) Stats() []Stat {
	return append([]Stat{}, r.stats...)
}

// pair is a tokenized hypothesis/reference pair.
type pair struct {
	// index is the position of the pair in the caller's input.
	index int
	hyp   []string
	ref   []string
}

// ScorePair scores a single hypothesis against a single reference.
func (r *Rouge) ScorePair(ctx context.Context, hyp, ref string) (ScoreSet, error) {
	sets, err := r.GetScores(ctx, []string{hyp}, []string{ref})
	if err != nil {
		return nil, err
	}
	return sets[0], nil
}

// GetScores returns one ScoreSet per pair in input order. Pairs dropped by
// WithIgnoreEmpty or WithExclude are omitted.
func (r *Rouge) GetScores(ctx context.Context, hyps, refs []string, opt ...ScoreOption) ([]ScoreSet, error) {
	pairs, err := r.preparePairs(hyps, refs, newScoreOptions(opt...))
	if err != nil {
		return nil, err
	}
	return r.scorePairs(ctx, pairs)
}

// GetAvgScores returns the arithmetic mean of every metric and stat over all
// scored pairs. It fails with ErrNoScoreablePairs when no pair is left.
func (r *Rouge) GetAvgScores(ctx context.Context, hyps, refs []string, opt ...ScoreOption) (ScoreSet, error) {
	pairs, err := r.preparePairs(hyps, refs, newScoreOptions(opt...))
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("average over %d input pairs: %w", len(hyps), ErrNoScoreablePairs)
	}
	sets, err := r.scorePairs(ctx, pairs)
	if err != nil {
		return nil, err
	}
	return average(sets), nil
}

// preparePairs validates the batch, applies exclusion and empty filtering,
// and tokenizes the surviving pairs.
func (r *Rouge) preparePairs(hyps, refs []string, opts *scoreOptions) ([]pair, error) {
	if len(hyps) != len(refs) {
		return nil, fmt.Errorf("%w: %d hypotheses, %d references", ErrLengthMismatch, len(hyps), len(refs))
	}
	excluding := opts.excludes != nil
	if excluding && len(opts.excludes) != len(hyps) {
		return nil, fmt.Errorf("%w: %d hypotheses, %d exclusions", ErrLengthMismatch, len(hyps), len(opts.excludes))
	}
	ignoreEmpty := opts.ignoreEmpty || excluding

	pairs := make([]pair, 0, len(hyps))
	for i := range hyps {
		hyp, ref := hyps[i], refs[i]
		if excluding {
			hyp = r.exclude(hyp, opts.excludes[i])
			ref = r.exclude(ref, opts.excludes[i])
		}
		if ignoreEmpty && (hyp == "" || ref == "") {
			continue
		}
		pairs = append(pairs, pair{
			index: i,
			hyp:   irouge.SplitSentences(hyp),
			ref:   irouge.SplitSentences(ref),
		})
	}
	if dropped := len(hyps) - len(pairs); dropped > 0 {
		log.Debugw("rouge: dropped pairs with empty text", "dropped", dropped, "total", len(hyps))
	}
	return pairs, nil
}

// scorePairs scores pairs sequentially or on a worker pool.
func (r *Rouge) scorePairs(ctx context.Context, pairs []pair) ([]ScoreSet, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context is nil")
	}
	if r.parallelism > 1 && len(pairs) > 1 {
		return r.scorePairsParallel(ctx, pairs)
	}
	sets := make([]ScoreSet, len(pairs))
	for i, p := range pairs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		set, err := r.scorePair(p)
		if err != nil {
			return nil, err
		}
		sets[i] = set
	}
	return sets, nil
}

// scorePair runs every configured metric over one pair and projects the
// configured stats.
func (r *Rouge) scorePair(p pair) (ScoreSet, error) {
	set := make(ScoreSet, len(r.metrics)+1)
	for _, m := range r.metrics {
		res, err := m.score(p.hyp, p.ref, r.exclusive)
		if err != nil {
			return nil, fmt.Errorf("score pair %d with %s: %w", p.index, m, err)
		}
		score := make(Score, len(r.stats))
		for _, s := range r.stats {
			score[s.String()] = s.value(res)
		}
		set[m.String()] = score
	}
	if r.returnLengths {
		set[LengthsKey] = Score{
			LengthHyp: float64(len(irouge.SplitWords(p.hyp))),
			LengthRef: float64(len(irouge.SplitWords(p.ref))),
		}
	}
	return set, nil
}
