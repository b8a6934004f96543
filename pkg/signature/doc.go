// Package signature generates and confirms the authentication envelopes of
// the Smile ID API.
//
// Two schemes coexist on the wire:
//
//   - SchemeSignature: HMAC-SHA256 over timestamp, partner id and the
//     literal token "sid_request", keyed by the partner api key and encoded
//     with strict (unwrapped, padded, non-URL-safe) base64. This is the
//     current scheme and the default for new integrations.
//   - SchemeSecKey: the legacy scheme. A SHA-256 hex digest of
//     "<partner id as integer>:<unix timestamp>" is RSA-encrypted with the
//     partner's public key (supplied as a base64-wrapped PEM api key) and
//     joined with the plain digest as "<base64 ciphertext>|<hex digest>".
//     Retained only for partners not yet migrated to HMAC signing.
//
// # Usage
//
//	signer := signature.NewSigner("2213", apiKey)
//
//	// Sign an outgoing request
//	env := signer.GenerateNow()
//	payload["signature"] = env.Signature
//	payload["timestamp"] = env.Timestamp
//
//	// Confirm a server reply
//	if !signer.Confirm(reply.Timestamp, reply.Signature) {
//	    // reply is not authentic
//	}
//
// Confirmation failures are reported as false, never as errors; only
// malformed key material or corrupt sec_key input surfaces a *CryptoError.
// Callers must treat any error during confirmation as "signature invalid".
package signature
