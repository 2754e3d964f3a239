// Package shape classifies case lists as table or object shaped and
// normalizes table input into records.
//
// Key functions:
//   - Detect: classifies a list by its first element
//   - Normalize: zips a header row with positional value rows
//   - Records: converts object-shaped elements into records
package shape
