// Package returns computes fund-level return metrics (invested, realized, unrealized,
// total value, MOIC and IRR) from investment and event records.
//
// The computation is pure: it performs no I/O, keeps no state between calls and never
// mutates its inputs, so an Aggregator may be shared between goroutines.
package returns
