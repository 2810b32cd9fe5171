// Package audio locates the benchmark sample in the input directory and
// probes its duration, which drives the cost estimate.
package audio
