// Package analytics derives the dashboard statistics, rankings, filters and
// alerts from the patient, contract and billing-record collections.
//
// Every function is a pure function of its arguments: no I/O, no shared state,
// and input slices are never modified. Callers may invoke them concurrently.
package analytics
