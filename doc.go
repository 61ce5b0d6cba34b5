// Package gridpath finds shortest 4-connected paths through text grid maps
// and compares how much work two classic searches spend doing it.
//
// 🚀 What is gridpath?
//
//	A small toolkit and CLI that brings together:
//		• Grid model: parse, validate and render maps of '.', '#', 'S', 'G'
//		• Searches: breadth-first search and A* with the Manhattan heuristic
//		• Effort statistics: nodes expanded, peak frontier, wall-clock time
//		• Reporting: side-by-side text report with the path drawn as '*'
//		• Observability: logrus logs and a Prometheus textfile per run
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/          Cell, Move, Grid: parsing, neighbors, path overlay
//	search/        BFS, AStar, Result and the search Options
//	runner/        runs a set of algorithms on one grid and writes the report
//	config/        YAML + GRIDPATH_* environment configuration
//	metrics/       Prometheus collectors on a private registry
//	cmd/gridpath/  the command-line entry point
//
// Quick example:
//
//	S..        --- A* ---
//	.#.   →    Minimal steps: 4
//	..G        Moves: RRDD
//
// Installation:
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
