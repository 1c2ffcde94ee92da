//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"trpc.group/trpc-go/trpc-rouge-go/config"
	"trpc.group/trpc-go/trpc-rouge-go/log"
	"trpc.group/trpc-go/trpc-rouge-go/rouge"
	"trpc.group/trpc-go/trpc-rouge-go/sink"
	"trpc.group/trpc-go/trpc-rouge-go/sink/local"
	sinkmysql "trpc.group/trpc-go/trpc-rouge-go/sink/mysql"
)

// flags holds the raw command line values. They override the config file and
// the environment only when set explicitly.
type flags struct {
	file        bool
	avg         bool
	ignoreEmpty bool
	metrics     []string
	stats       []string
	exclude     string
	exclusive   bool
	raw         bool
	lengths     bool
	parallelism int
	configPath  string
	envFiles    []string
	logLevel    string
	sinkType    string
	sinkDir     string
	mysqlDSN    string
	reportName  string
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "rouge <hypothesis> <reference>",
		Short: "Compute ROUGE scores",
		Long: `Compute ROUGE scores of a hypothesis against a reference.

In text mode both arguments are texts. In file mode (-f) both arguments are
files and the i-th line of one is scored against the i-th line of the other.

Examples:
  rouge "the cat sat on the mat" "the cat was on the mat"
  rouge --metrics 1,L --stats F "hyp text" "ref text"
  rouge -f -a --ignore_empty hyps.txt refs.txt`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args[0], args[1])
		},
	}

	fl := cmd.Flags()
	fl.BoolVarP(&f.file, "file", "f", false, "File mode: arguments are line-aligned files")
	fl.BoolVarP(&f.avg, "avg", "a", false, "Average mode: print the mean over all pairs")
	fl.BoolVar(&f.ignoreEmpty, "ignore_empty", false, "Skip pairs with an empty hypothesis or reference")
	fl.StringSliceVar(&f.metrics, "metrics", nil, "Metrics to use: 1, 2, 3, 4, 5, L (default 1 2 L)")
	fl.StringSliceVar(&f.stats, "stats", nil, "Stats to use: F, P, R (default all)")
	fl.StringVar(&f.exclude, "exclude", "", "Text (or file in file mode) whose shared n-grams are removed before scoring")
	fl.BoolVar(&f.exclusive, "exclusive", true, "Count distinct n-grams only")
	fl.BoolVar(&f.raw, "raw", false, "Report hyp, ref and overlap counts instead of ratios")
	fl.BoolVar(&f.lengths, "lengths", false, "Add hypothesis and reference word counts")
	fl.IntVar(&f.parallelism, "parallelism", 1, "Number of workers scoring pairs")
	fl.StringVarP(&f.configPath, "config", "c", "", "Path to a YAML config file")
	fl.StringSliceVar(&f.envFiles, "env-file", nil, "Dotenv files to load (default .env)")
	fl.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fl.StringVar(&f.sinkType, "sink", "", "Where to save the report: none, local, mysql")
	fl.StringVar(&f.sinkDir, "sink-dir", "", "Directory of the local sink")
	fl.StringVar(&f.mysqlDSN, "mysql-dsn", "", "DSN of the mysql sink")
	fl.StringVar(&f.reportName, "name", "", "Name stored with the report (default: the two arguments)")
	return cmd
}

func run(cmd *cobra.Command, f *flags, hyp, ref string) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	r, err := rouge.New(cfg.ScorerOptions()...)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	scores, err := score(ctx, r, f, hyp, ref)
	if err != nil {
		return err
	}
	var out any = scores.Scores
	if f.avg {
		out = scores.Average
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(data)); err != nil {
		return err
	}

	s, err := openSink(cfg)
	if err != nil || s == nil {
		return err
	}
	defer s.Close()
	name := f.reportName
	if name == "" {
		name = hyp + " | " + ref
	}
	id, err := s.Save(ctx, sink.NewReport(name, r.Metrics(), scores))
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	log.Infow("rouge: saved report", "id", id, "sink", cfg.Sink.Type, "name", name)
	return nil
}

func score(ctx context.Context, r *rouge.Rouge, f *flags, hyp, ref string) (*rouge.FileScores, error) {
	if f.file {
		opts := []rouge.FileOption{rouge.WithAvg(f.avg), rouge.WithIgnoreEmptyLines(f.ignoreEmpty)}
		if f.exclude != "" {
			opts = append(opts, rouge.WithExcludeFile(f.exclude))
		}
		return r.ScoreFiles(ctx, hyp, ref, opts...)
	}

	opts := []rouge.ScoreOption{rouge.WithIgnoreEmpty(f.ignoreEmpty)}
	if f.exclude != "" {
		opts = append(opts, rouge.WithExclude([]string{f.exclude}))
	}
	hyps, refs := []string{hyp}, []string{ref}
	if f.avg {
		avg, err := r.GetAvgScores(ctx, hyps, refs, opts...)
		if err != nil {
			return nil, err
		}
		return &rouge.FileScores{Average: avg}, nil
	}
	sets, err := r.GetScores(ctx, hyps, refs, opts...)
	if err != nil {
		return nil, err
	}
	return &rouge.FileScores{Scores: sets}, nil
}

// loadConfig layers the config file, the environment and explicit flags.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg, f.envFiles...); err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("metrics") {
		cfg.Metrics = f.metrics
	}
	if changed("stats") {
		cfg.Stats = f.stats
	}
	if changed("exclusive") {
		cfg.Exclusive = f.exclusive
	}
	if changed("raw") {
		cfg.Raw = f.raw
	}
	if changed("lengths") {
		cfg.Lengths = f.lengths
	}
	if changed("parallelism") {
		cfg.Parallelism = f.parallelism
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("sink") {
		cfg.Sink.Type = strings.ToLower(f.sinkType)
	}
	if changed("sink-dir") {
		cfg.Sink.Dir = f.sinkDir
	}
	if changed("mysql-dsn") {
		cfg.Sink.MySQL.DSN = f.mysqlDSN
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openSink(cfg *config.Config) (sink.Sink, error) {
	switch cfg.Sink.Type {
	case config.SinkLocal:
		return local.New(cfg.Sink.Dir), nil
	case config.SinkMySQL:
		return sinkmysql.New(
			sinkmysql.WithMySQLClientDSN(cfg.Sink.MySQL.DSN),
			sinkmysql.WithTablePrefix(cfg.Sink.MySQL.TablePrefix),
			sinkmysql.WithSkipDBInit(cfg.Sink.MySQL.SkipDBInit),
		)
	default:
		return nil, nil
	}
}
