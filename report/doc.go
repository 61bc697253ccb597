// Package report renders problems and comparison results as plain-text
// tables.
//
// Suppliers and consumers are both labelled with spreadsheet-style letters
// (A, B, ..., Z, AA, AB, ...). Every writer aligns its columns with
// text/tabwriter and returns the first write error.
package report
