//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"fmt"

	irouge "trpc.group/trpc-go/trpc-rouge-go/internal/rouge"
)

// Metric identifies a ROUGE variant.
type Metric int

// Supported metrics.
const (
	Rouge1 Metric = iota + 1
	Rouge2
	Rouge3
	Rouge4
	Rouge5
	RougeL
)

// metricNames maps each metric to its external name.
var metricNames = map[Metric]string{
	Rouge1: "rouge-1",
	Rouge2: "rouge-2",
	Rouge3: "rouge-3",
	Rouge4: "rouge-4",
	Rouge5: "rouge-5",
	RougeL: "rouge-l",
}

// DefaultMetrics are computed when no metric is configured.
var DefaultMetrics = []Metric{Rouge1, Rouge2, RougeL}

// AvailableMetrics lists every supported metric in canonical order.
var AvailableMetrics = []Metric{Rouge1, Rouge2, Rouge3, Rouge4, Rouge5, RougeL}

// String returns the external metric name such as "rouge-1" or "rouge-l".
func (m Metric) String() string {
	if name, ok := metricNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// ParseMetric parses an external metric name.
func ParseMetric(name string) (Metric, error) {
	for _, m := range AvailableMetrics {
		if metricNames[m] == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown metric %q", ErrInvalidConfiguration, name)
}

// score runs the metric over tokenized sentences.
func (m Metric) score(hyp, ref []string, exclusive bool) (irouge.Result, error) {
	switch m {
	case Rouge1, Rouge2, Rouge3, Rouge4, Rouge5:
		return irouge.RougeN(hyp, ref, int(m-Rouge1)+1, exclusive)
	case RougeL:
		return irouge.RougeLSummary(hyp, ref, exclusive)
	default:
		return irouge.Result{}, fmt.Errorf("%w: unknown metric %s", ErrInvalidConfiguration, m)
	}
}

// Stat identifies a statistic reported for every metric.
type Stat int

// Supported stats. StatHyp, StatRef and StatOverlap are only reported as raw results.
const (
	StatF Stat = iota + 1
	StatP
	StatR
	StatHyp
	StatRef
	StatOverlap
)

// statNames maps each stat to its external name.
var statNames = map[Stat]string{
	StatF:       "f",
	StatP:       "p",
	StatR:       "r",
	StatHyp:     "hyp",
	StatRef:     "ref",
	StatOverlap: "overlap",
}

// DefaultStats are reported when no stat is configured.
var DefaultStats = []Stat{StatR, StatP, StatF}

// RawStats replace the configured stats when raw results are requested.
var RawStats = []Stat{StatHyp, StatRef, StatOverlap}

// String returns the external stat name.
func (s Stat) String() string {
	if name, ok := statNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Stat(%d)", int(s))
}

// ParseStat parses a stat name. Only "f", "p" and "r" can be selected; raw
// stats are enabled with WithRawResults.
func ParseStat(name string) (Stat, error) {
	for _, s := range DefaultStats {
		if statNames[s] == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown stat %q", ErrInvalidConfiguration, name)
}

// value selects the stat from a full result.
func (s Stat) value(res irouge.Result) float64 {
	switch s {
	case StatF:
		return res.F
	case StatP:
		return res.Precision
	case StatR:
		return res.Recall
	case StatHyp:
		return float64(res.Hyp)
	case StatRef:
		return float64(res.Ref)
	case StatOverlap:
		return float64(res.Overlap)
	default:
		return 0
	}
}
