//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

import (
	"strings"

	irouge "trpc.group/trpc-go/trpc-rouge-go/internal/rouge"
)

// exclude removes from text the word sequences it shares with source.
//
// N-gram sizes are tried from excludeMaxN down to excludeMinN. For every size,
// each n-gram of source is removed once, at its first occurrence in text.
// Matches never span a sentence boundary. The result is "" when no word
// survives.
func (r *Rouge) exclude(text, source string) string {
	sourceWords := irouge.SplitWords(irouge.SplitSentences(source))
	sentences := irouge.SplitSentences(text)
	words := make([][]string, len(sentences))
	for i, sentence := range sentences {
		words[i] = strings.Fields(sentence)
	}

	for n := r.excludeMaxN; n >= r.excludeMinN; n-- {
		grams := irouge.NewNGrams(n, sourceWords, true)
		if grams.Len() == 0 {
			continue
		}
		removed := make(map[string]struct{})
		for i := range words {
			words[i] = removeFirstOccurrences(words[i], n, grams, removed)
		}
	}

	kept := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) == 0 {
			continue
		}
		kept = append(kept, strings.Join(w, " "))
	}
	return strings.Join(kept, ". ")
}

// removeFirstOccurrences scans words left to right and cuts every n-gram found
// in grams that is not yet in removed, recording it there.
func removeFirstOccurrences(words []string, n int, grams *irouge.NGrams, removed map[string]struct{}) []string {
	for i := 0; i+n <= len(words); {
		key := irouge.JoinNGram(words[i : i+n])
		if _, done := removed[key]; !done && grams.Contains(key) {
			removed[key] = struct{}{}
			words = append(words[:i:i], words[i+n:]...)
			continue
		}
		i++
	}
	return words
}
