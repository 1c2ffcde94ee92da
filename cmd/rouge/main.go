//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//


// Command rouge computes ROUGE scores for texts or line-aligned files and
// prints them as JSON.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"trpc.group/trpc-go/trpc-rouge-go/log"
)

func main() {
	os.Exit(execute(newRootCmd()))
}

// execute runs cmd and returns the process exit code. Failures are logged.
func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		log.Errorw("rouge: command failed", "error", err)
		return 1
	}
	return 0
}
