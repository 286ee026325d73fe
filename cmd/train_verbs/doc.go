// Package main provides the trial runner for the responsive verb experiments.
// It generates a balanced dataset of partitions, worlds and doxastic sets for the
// configured verbs, trains a feedforward classifier with early stopping on it, and
// writes per trial metrics, checkpoints and predictions as flat files.
package main
