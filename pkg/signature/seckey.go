package signature

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/smileid-project/smileid-go/pkg/protocol"
)

// GenerateSecKey computes the legacy envelope for the given unix timestamp:
// base64(RSA(sha256hex(partnerID:timestamp))) joined with the plain hex
// digest by "|". The partner id is interpreted as an integer, matching the
// server's digest computation.
func (s *Signer) GenerateSecKey(timestamp int64) (SecKeyEnvelope, error) {
	digest := s.legacyDigest(timestamp)

	pub, _, err := s.rsaKey()
	if err != nil {
		return SecKeyEnvelope{}, err
	}

	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, pub, []byte(digest))
	if err != nil {
		return SecKeyEnvelope{}, &protocol.CryptoError{Op: "encrypt sec_key", Err: err}
	}

	return SecKeyEnvelope{
		SecKey:    base64.StdEncoding.EncodeToString(ciphertext) + "|" + digest,
		Timestamp: timestamp,
	}, nil
}

// GenerateSecKeyNow computes the legacy envelope for the current time.
func (s *Signer) GenerateSecKeyNow() (SecKeyEnvelope, error) {
	return s.GenerateSecKey(s.now().Unix())
}

// ConfirmSecKey verifies a legacy sec_key against the given timestamp. The
// decrypted ciphertext half is compared to a freshly recomputed digest,
// never to the digest half of the input, so substituting both halves
// consistently with a stale digest still fails.
//
// A mismatch returns (false, nil). Corrupt input or unusable key material
// returns a *CryptoError; callers must treat that as "signature invalid".
func (s *Signer) ConfirmSecKey(timestamp int64, secKey string) (bool, error) {
	expected := s.legacyDigest(timestamp)

	encrypted, _, found := strings.Cut(secKey, "|")
	if !found {
		return false, &protocol.CryptoError{Op: "parse sec_key", Err: errors.New("missing | separator")}
	}

	ciphertext, err := base64.StdEncoding.DecodeString(stripWhitespace(encrypted))
	if err != nil {
		return false, &protocol.CryptoError{Op: "parse sec_key", Err: err}
	}

	pub, priv, err := s.rsaKey()
	if err != nil {
		return false, err
	}

	var decrypted []byte
	if priv != nil {
		decrypted, err = rsa.DecryptPKCS1v15(nil, priv, ciphertext)
	} else {
		decrypted, err = publicDecrypt(pub, ciphertext)
	}
	if err != nil {
		return false, &protocol.CryptoError{Op: "decrypt sec_key", Err: err}
	}

	return string(decrypted) == expected, nil
}

func (s *Signer) legacyDigest(timestamp int64) string {
	partnerNum, _ := strconv.ParseInt(strings.TrimLeft(s.partnerID, "0"), 10, 64)
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d:%d", partnerNum, timestamp)))
	return hex.EncodeToString(sum[:])
}

// rsaKey parses the api key as a base64-wrapped PEM. Public and private
// keys are both accepted; the private half is only present in tests and in
// partner setups that hold their own key pair.
func (s *Signer) rsaKey() (*rsa.PublicKey, *rsa.PrivateKey, error) {
	pemBytes, err := base64.StdEncoding.DecodeString(stripWhitespace(s.apiKey))
	if err != nil {
		return nil, nil, &protocol.CryptoError{Op: "decode api key", Err: err}
	}

	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, nil, &protocol.CryptoError{Op: "decode api key", Err: errors.New("no PEM block found")}
	}

	switch block.Type {
	case "PUBLIC KEY":
		key, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, nil, &protocol.CryptoError{Op: "parse api key", Err: err}
		}
		pub, ok := key.(*rsa.PublicKey)
		if !ok {
			return nil, nil, &protocol.CryptoError{Op: "parse api key", Err: fmt.Errorf("unsupported key type %T", key)}
		}
		return pub, nil, nil
	case "RSA PUBLIC KEY":
		pub, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, nil, &protocol.CryptoError{Op: "parse api key", Err: err}
		}
		return pub, nil, nil
	case "RSA PRIVATE KEY":
		priv, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, nil, &protocol.CryptoError{Op: "parse api key", Err: err}
		}
		return &priv.PublicKey, priv, nil
	case "PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, nil, &protocol.CryptoError{Op: "parse api key", Err: err}
		}
		priv, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, nil, &protocol.CryptoError{Op: "parse api key", Err: fmt.Errorf("unsupported key type %T", key)}
		}
		return &priv.PublicKey, priv, nil
	default:
		return nil, nil, &protocol.CryptoError{Op: "parse api key", Err: fmt.Errorf("unsupported PEM block %q", block.Type)}
	}
}

// publicDecrypt recovers a message that was encrypted with the RSA private
// key, the operation OpenSSL exposes as public_decrypt. The server signs
// its sec_key replies with its private key, and partners hold only the
// public half, so the standard library's private-key decryption cannot be
// used here. PKCS#1 v1.5 type 1 blocks are expected.
func publicDecrypt(pub *rsa.PublicKey, ciphertext []byte) ([]byte, error) {
	k := pub.Size()
	if len(ciphertext) != k {
		return nil, errors.New("ciphertext length does not match key size")
	}

	c := new(big.Int).SetBytes(ciphertext)
	if c.Cmp(pub.N) >= 0 {
		return nil, errors.New("ciphertext out of range")
	}

	m := new(big.Int).Exp(c, big.NewInt(int64(pub.E)), pub.N)
	em := m.FillBytes(make([]byte, k))

	if em[0] != 0x00 || em[1] != 0x01 {
		return nil, errors.New("invalid padding")
	}
	idx := 2
	for idx < len(em) && em[idx] == 0xff {
		idx++
	}
	// at least 8 padding bytes, then the 0x00 delimiter
	if idx < 10 || idx >= len(em) || em[idx] != 0x00 {
		return nil, errors.New("invalid padding")
	}
	return em[idx+1:], nil
}

// stripWhitespace removes the line wrapping that lenient base64 encoders
// insert into long values.
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
}
