// Package batch drives the caption pipeline over many files.
//
// Collect expands the paths given on the command line into caption inputs.
// Runner processes them with a bounded worker pool, writes each result next
// to its input (or into the configured output directory) and records the run
// in the history store so unchanged inputs are skipped next time. A failure
// on one file is logged and reported; the remaining files still run.
//
// A run holds an exclusive lock on the state directory for its whole
// duration so two invocations never interleave writes to history.
package batch
