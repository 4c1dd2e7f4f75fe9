// Package loader implements the data-loading cycle shared by every page: a
// tri-state result (loading, ready, error) tagged with a monotonically
// increasing cycle id so that results of superseded cycles are discarded on
// arrival.
package loader
