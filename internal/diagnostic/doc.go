// Package diagnostic provides structured errors for case-list expansion.
//
// Key capabilities:
//   - Error codes for every failure class (shape, table schema,
//     consistency, template validation)
//   - Name-template and record-index context on each error
//   - "Did you mean" and add/remove-property suggestions
package diagnostic
