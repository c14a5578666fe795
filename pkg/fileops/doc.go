// Package fileops batches the file writes of one logical step (staging a
// transform, replacing the recent list) into a plan executed by a synthfs
// pipeline.
//
// Operations run in the order they were added and act on a types.FS, so the
// same plan works against the OS and against an afero memory filesystem in
// tests. The first failing operation stops the pipeline; its coded error is
// what Run returns.
package fileops
