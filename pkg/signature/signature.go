package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"time"
)

// requestToken is the fixed trailer mixed into every HMAC signature.
const requestToken = "sid_request"

// Timestamp layouts accepted by the server. The plain layout matches the
// historical locale-independent format; the ISO layout is required by the
// newer endpoints and is always UTC with millisecond precision.
const (
	plainTimestampLayout = "2006-01-02 15:04:05 -0700"
	isoTimestampLayout   = "2006-01-02T15:04:05.000Z"
)

// Scheme selects how a request is authenticated.
type Scheme int

const (
	// SchemeSignature is the current HMAC-SHA256 scheme.
	SchemeSignature Scheme = iota

	// SchemeSecKey is the legacy RSA-encrypted sec_key scheme.
	SchemeSecKey
)

// SignatureEnvelope is the {signature, timestamp} pair attached to requests
// signed with the current scheme.
type SignatureEnvelope struct {
	Signature string `json:"signature"`
	Timestamp string `json:"timestamp"`
}

// Apply merges the envelope fields into an outgoing payload.
func (e SignatureEnvelope) Apply(payload map[string]interface{}) {
	payload["signature"] = e.Signature
	payload["timestamp"] = e.Timestamp
}

// SecKeyEnvelope is the {sec_key, timestamp} pair of the legacy scheme. The
// timestamp is integer unix seconds, not a formatted string.
type SecKeyEnvelope struct {
	SecKey    string `json:"sec_key"`
	Timestamp int64  `json:"timestamp"`
}

// Apply merges the envelope fields into an outgoing payload.
func (e SecKeyEnvelope) Apply(payload map[string]interface{}) {
	payload["sec_key"] = e.SecKey
	payload["timestamp"] = e.Timestamp
}

// Envelope is the common face of both signing schemes for payload builders.
type Envelope interface {
	Apply(payload map[string]interface{})
}

// Signer generates and confirms authentication envelopes for one partner.
// It is immutable and safe for concurrent use.
type Signer struct {
	partnerID string
	apiKey    string
	now       func() time.Time
}

// NewSigner creates a Signer for the given partner credentials. For the
// HMAC scheme the api key is used verbatim as the HMAC key; for the legacy
// scheme it must be a base64-wrapped RSA PEM.
func NewSigner(partnerID, apiKey string) *Signer {
	return &Signer{
		partnerID: partnerID,
		apiKey:    apiKey,
		now:       time.Now,
	}
}

// Generate computes the HMAC envelope for the given timestamp string.
func (s *Signer) Generate(timestamp string) SignatureEnvelope {
	mac := hmac.New(sha256.New, []byte(s.apiKey))
	mac.Write([]byte(timestamp))
	mac.Write([]byte(s.partnerID))
	mac.Write([]byte(requestToken))

	return SignatureEnvelope{
		Signature: base64.StdEncoding.EncodeToString(mac.Sum(nil)),
		Timestamp: timestamp,
	}
}

// GenerateNow signs the current time in the plain timestamp format.
func (s *Signer) GenerateNow() SignatureEnvelope {
	return s.Generate(s.now().Format(plainTimestampLayout))
}

// GenerateISONow signs the current UTC time in strict ISO-8601 format with
// millisecond precision, as required by the address verification endpoint.
func (s *Signer) GenerateISONow() SignatureEnvelope {
	return s.Generate(s.now().UTC().Format(isoTimestampLayout))
}

// Confirm reports whether a signature matches the one this signer would
// produce for the same timestamp. Used to authenticate server replies that
// echo back the timestamp they were signed with.
func (s *Signer) Confirm(timestamp, candidate string) bool {
	expected := s.Generate(timestamp).Signature
	return hmac.Equal([]byte(expected), []byte(candidate))
}
