// Package lifeassist implements the expense ledger behind the lva personal
// assistant: month-keyed CSV stores of expense records, a configurable
// category set, and a closed registry of tabular operations for ad-hoc
// queries.
//
// The ledger engine itself lives in the tracker package; this package holds
// the domain model it operates on.
package lifeassist
