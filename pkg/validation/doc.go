// Package validation enforces the shape invariants of outgoing jobs before
// any network call is made.
//
// Every check is pure: no I/O, no mutation of the input. Failures are
// *protocol.InvalidArgumentError values whose message names the offending
// field, so callers and tests can assert on the precise cause. Which id
// fields are required varies by product; the product clients pass the
// applicable set.
package validation
