//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

// Package rouge implements the ROUGE scoring core: tokenization, n-gram
// collections, the LCS engine and the ROUGE-N / ROUGE-L metric functions.
package rouge

import "strings"

// sentenceSeparator splits a text unit into sentences.
const sentenceSeparator = "."

// SplitSentences splits text on periods and collapses the whitespace inside
// every sentence to single spaces. Sentences left empty are dropped.
func SplitSentences(text string) []string {
	parts := strings.Split(text, sentenceSeparator)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		sentence := strings.Join(strings.Fields(part), " ")
		if len(sentence) == 0 {
			continue
		}
		sentences = append(sentences, sentence)
	}
	return sentences
}

// SplitWords splits every sentence on whitespace and flattens the result.
func SplitWords(sentences []string) []string {
	words := make([]string, 0, len(sentences)*8)
	for _, sentence := range sentences {
		words = append(words, strings.Fields(sentence)...)
	}
	return words
}
