// Package squarematrix is a small in-memory square-matrix toolkit with a
// console demonstration driver.
//
// 🚀 What is in the box?
//
//	• matrix/               — generic Square[T] over signed integers and floats:
//	                          load, add, multiply, diagonal sum, swap, update, render
//	• internal/demo         — the fixed demonstration sequence over an input file
//	• internal/input        — read-only memory-mapped input files
//	• internal/platform/... — env configuration, exit helper, tracing setup
//	• cmd/matrixdemo        — the command entry point
//
// Input format: whitespace-separated tokens `n typeFlag` (0 = integers,
// 1 = floating point), then n² values for matrix 1 and n² for matrix 2.
//
//	go run ./cmd/matrixdemo -input matrix-data.txt
package squarematrix
