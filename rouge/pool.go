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
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"trpc.group/trpc-go/trpc-rouge-go/log"
)

type pairScoreParam struct {
	idx     int
	ctx     context.Context
	pair    pair
	scorer  *Rouge
	results []ScoreSet
	errs    []error
	wg      *sync.WaitGroup
}

func (p *pairScoreParam) reset() {
	p.idx = 0
	p.ctx = nil
	p.pair = pair{}
	p.scorer = nil
	p.results = nil
	p.errs = nil
	p.wg = nil
}

var pairScoreParamPool = &sync.Pool{
	New: func() any { return new(pairScoreParam) },
}

func createPairScorePool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*pairScoreParam)
		if !ok {
			panic("pair score pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			pairScoreParamPool.Put(param)
		}()
		if err := param.ctx.Err(); err != nil {
			param.errs[param.idx] = err
			return
		}
		param.results[param.idx], param.errs[param.idx] = param.scorer.scorePair(param.pair)
	})
	if err != nil {
		return nil, fmt.Errorf("create pair score pool: %w", err)
	}
	return pool, nil
}

// scorePairsParallel scores pairs on an ants pool. Results keep input order
// and the error of the first failing pair wins.
func (r *Rouge) scorePairsParallel(ctx context.Context, pairs []pair) ([]ScoreSet, error) {
	size := r.parallelism
	if size > len(pairs) {
		size = len(pairs)
	}
	pool, err := createPairScorePool(size)
	if err != nil {
		return nil, err
	}
	defer pool.Release()
	log.Debugw("rouge: scoring pairs in parallel", "pairs", len(pairs), "workers", size)

	results := make([]ScoreSet, len(pairs))
	errs := make([]error, len(pairs))
	var wg sync.WaitGroup
	for i := range pairs {
		param := pairScoreParamPool.Get().(*pairScoreParam)
		param.idx = i
		param.ctx = ctx
		param.pair = pairs[i]
		param.scorer = r
		param.results = results
		param.errs = errs
		param.wg = &wg
		wg.Add(1)
		if err := pool.Invoke(param); err != nil {
			wg.Done()
			param.reset()
			pairScoreParamPool.Put(param)
			wg.Wait()
			return nil, fmt.Errorf("submit pair %d: %w", pairs[i].index, err)
		}
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
