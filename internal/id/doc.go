// Package id provides identifier helpers for generation runs.
//
//   - Counter: a monotonically increasing sequence owned by one caller,
//     used to label the roots of generation trees
//   - UUID: RFC 4122 version 4 identifiers drawn from a caller-supplied
//     byte source, so seeded runs produce reproducible values
//   - Short: 16-character hex identifiers
//
// Nothing in this package keeps process-wide state.
package id
