//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//

package rouge

// Table is the dynamic programming table of an LCS query. Table[i][j] holds
// the LCS length of the first i tokens of x and the first j tokens of y.
type Table [][]int

// LCSTable builds the LCS table for x and y in O(len(x)*len(y)).
func LCSTable(x, y []string) Table {
	rows := len(x)
	cols := len(y)
	table := make(Table, rows+1)
	for i := range table {
		table[i] = make([]int, cols+1)
	}
	for i := 1; i <= rows; i++ {
		for j := 1; j <= cols; j++ {
			if x[i-1] == y[j-1] {
				table[i][j] = table[i-1][j-1] + 1
				continue
			}
			if table[i-1][j] >= table[i][j-1] {
				table[i][j] = table[i-1][j]
			} else {
				table[i][j] = table[i][j-1]
			}
		}
	}
	return table
}

// LCSLength returns the length of the longest common subsequence of x and y.
func LCSLength(x, y []string) int {
	return LCSTable(x, y)[len(x)][len(y)]
}

// LCSTokens returns the tokens of one longest common subsequence of x and y
// in left to right order.
//
// The walk starts at the bottom-right corner of the table. On a mismatch it
// steps back along x only when that keeps a strictly longer subsequence,
// otherwise it steps back along y.
func LCSTokens(x, y []string) []string {
	table := LCSTable(x, y)
	i := len(x)
	j := len(y)
	tokens := make([]string, table[i][j])
	k := len(tokens)
	for i > 0 && j > 0 {
		switch {
		case x[i-1] == y[j-1]:
			k--
			tokens[k] = x[i-1]
			i--
			j--
		case table[i-1][j] > table[i][j-1]:
			i--
		default:
			j--
		}
	}
	return tokens
}

// ReconstructLCS returns the LCS of x and y as a collection of unigrams.
func ReconstructLCS(x, y []string, exclusive bool) *NGrams {
	out := EmptyNGrams(exclusive)
	for _, token := range LCSTokens(x, y) {
		out.Add(token)
	}
	return out
}
