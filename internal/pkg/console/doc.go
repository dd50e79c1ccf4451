// Package console renders the signature test report: timed task lines, OK/FAIL markers,
// error blocks and the final key/value summary.
//
// Colours are carried by an explicit Styles value handed to the Printer instead of
// mutating a process-wide terminal colour. Output written to something other than a
// terminal, or with NO_COLOR set, is plain text.
package console
