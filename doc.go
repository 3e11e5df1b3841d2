// Package sway structures tabular data by recursive, distance-based
// binary splits.
//
// A Table is built from a header and rows. Header names tag each column:
// a leading uppercase letter marks a numeric column, a trailing "+" or "-"
// a goal to maximize or minimize, a trailing "X" a column to ignore; every
// other column is a feature. Distances between rows are computed over the
// features only, with per-column distances normalized to [0, 1] and missing
// values treated as maximally distant.
//
// Basic usage:
//
//	t, err := sway.LoadCSVFile("auto93.csv")
//	rng := sway.NewRand(sway.DefaultSeed)
//	cfg := sway.DefaultConfig()
//	tree, err := sway.Cluster(t, rng, cfg)   // full binary tree
//	best, err := sway.Sway(t, rng, cfg)      // keeps only the better half
//	sway.Show(os.Stdout, tree)
//
// # Splitting
//
// Half picks two distant anchors A and B, projects every row onto the line
// between them with the cosine rule, and cuts at the median projection.
// Cluster applies Half recursively until nodes hold at most max(2, N^Min)
// rows. Sway applies it along one branch, keeping at each step the half
// whose anchor dominates the other on the goal columns, so a few hundred
// rows shrink to a handful of good ones with O(log N) goal evaluations.
//
// All randomness comes from a caller-owned Rand; reseeding it reproduces
// every result exactly.
package sway
