// Package canon produces canonical JSON (RFC 8785 subset) for golden traces
// and machine-readable CLI output.
//
// Canonical form differs from encoding/json in that:
//   - object keys are sorted by UTF-16 code units
//   - strings are NFC normalized and HTML characters are not escaped
//   - U+2028 and U+2029 are emitted literally
//   - floats and null are rejected
//
// Two traces that are semantically equal always marshal to identical bytes,
// which is what golden file comparison relies on.
package canon
