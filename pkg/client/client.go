// Copyright (C) 2025 Smile ID Project
//
// This file is part of smileid-go.
//
// smileid-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// smileid-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with smileid-go.  If not, see <https://www.gnu.org/licenses/>.

package client

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	smileid "github.com/smileid-project/smileid-go"
	"github.com/smileid-project/smileid-go/pkg/protocol"
	"github.com/smileid-project/smileid-go/pkg/signature"
	"github.com/smileid-project/smileid-go/pkg/transport"
)

// Config carries the partner credentials and per-client settings shared by
// all product clients. It is copied at construction and never mutated.
type Config struct {
	// PartnerID is the account identifier assigned by Smile ID.
	PartnerID string

	// APIKey is the partner secret: the HMAC key for the current scheme,
	// or a base64-wrapped RSA PEM for the legacy sec_key scheme.
	APIKey string

	// SIDServer selects the server: "0" for sandbox, "1" for production,
	// or an absolute base URL override.
	SIDServer string

	// DefaultCallback receives asynchronous job results unless a job
	// overrides it.
	DefaultCallback string

	// Scheme selects the signing scheme. The zero value is the current
	// HMAC signature scheme.
	Scheme signature.Scheme

	// HTTPClient overrides the transport's HTTP client. Optional.
	HTTPClient *http.Client

	// Logger overrides the default logrus standard logger. Optional.
	Logger *log.Logger
}

// core is the signing and transport machinery every product client shares.
type core struct {
	partnerID string
	scheme    signature.Scheme
	signer    *signature.Signer
	rest      *transport.REST
	logger    *log.Logger
}

func newCore(cfg Config) core {
	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	return core{
		partnerID: cfg.PartnerID,
		scheme:    cfg.Scheme,
		signer:    signature.NewSigner(cfg.PartnerID, cfg.APIKey),
		rest:      transport.NewREST(protocol.ResolveServerURL(cfg.SIDServer), cfg.HTTPClient, logger),
		logger:    logger,
	}
}

// envelope generates a fresh authentication envelope under the configured
// scheme. Only the legacy scheme can fail, on unusable key material.
func (c *core) envelope() (signature.Envelope, error) {
	if c.scheme == signature.SchemeSecKey {
		return c.signer.GenerateSecKeyNow()
	}
	return c.signer.GenerateNow(), nil
}

// addPartnerInfo merges the partner identification into a payload.
func (c *core) addPartnerInfo(payload map[string]interface{}) {
	payload["partner_id"] = c.partnerID
}

// addSDKInfo merges the SDK identification fields into a payload.
func addSDKInfo(payload map[string]interface{}) {
	payload["source_sdk"] = smileid.SourceSDK
	payload["source_sdk_version"] = smileid.Version
}
