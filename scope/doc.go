// Package scope implements exact-match permission scope checking.
//
// A scope is an opaque string naming one granted permission. Authorization is
// pure subset arithmetic: a caller holding {"storage.read", "storage.write"}
// satisfies a requirement of {"storage.read"}. There is no wildcard or
// hierarchy expansion — "storage.*" grants only the literal string
// "storage.*".
//
// # Architecture boundaries
//
// This package operates on scope sets already extracted from a validated
// token. It knows nothing about tokens, storage, or HTTP.
//
// # What this package must NOT do
//
//   - Import any other package in this module.
//   - Expand, rewrite, or pattern-match scope strings.
package scope
