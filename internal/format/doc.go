// Package format resolves name-template placeholders against one record.
//
// The template grammar has two placeholder forms: the reserved $index
// counter and $path property references, where a path is an identifier
// followed by any mixture of .identifier and [digits] segments. Scanning
// is an explicit tokenizer rather than a regular expression, so the
// $index word-boundary rule is a first-class case and substituted text
// is never rescanned.
package format
