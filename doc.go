// Package valuation resolves composite portfolio values from sparse
// snapshot records and computes performance metrics over them.
//
// The engine operates entirely on in-memory, pre-fetched records. Its
// core functionalities are:
//   - Record Indexing: turning an unordered collection of dated snapshots
//     into a sorted series plus per-platform timelines, built in a single
//     pass over the asset-value records.
//   - Carry-Forward Resolution: producing a composite view of the portfolio
//     for any snapshot date by combining directly recorded platform values
//     with the most recent prior values of platforms missing on that date,
//     each entry tagged with its provenance.
//   - Return Metrics: simple and lookback growth rates, Modified Dietz
//     cash-flow-adjusted returns, chained time-weighted returns, and
//     compound annual growth rates, all in exact decimal arithmetic.
//   - Rebalancing: suggested adjustments against per-category target
//     allocations.
//
// Every operation is a pure function of its inputs: the engine performs no
// I/O, holds no mutable state, and never writes carried-forward values back
// as records. A RecordIndex is read-only after construction and safe to
// share across goroutines.
//
// Metrics distinguish structural faults (duplicate snapshot dates, cash
// flows outside their period, unknown target dates), which are returned as
// errors, from numeric unavailability (zero denominators, insufficient
// history), which is an expected outcome of valid data and is carried as a
// value with a machine-readable reason.
//
// This package is the foundation of the `pvc` command-line tool.
package valuation
