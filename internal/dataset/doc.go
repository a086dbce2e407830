// Package dataset loads and normalizes the steel plant tracker
// workbook and implements the pure filtering and aggregation the
// dashboard is built on.
//
// The loader tolerates the schema drift between tracker revisions:
// columns are discovered by fuzzy, case-insensitive header matching
// (see Resolve), the free-text coordinate cell is split into numeric
// latitude/longitude, and a TotalCapacity field is synthesized by
// summing every "* capacity (ttpa)" column. Rows without usable
// coordinates are dropped at load time.
//
// Everything downstream of Load is a pure function over the resulting
// Table: Apply produces filtered views and Summarize computes the KPI
// numbers. The base table is never mutated after construction.
package dataset
