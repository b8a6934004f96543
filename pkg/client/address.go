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
	"context"
	"encoding/json"

	smileid "github.com/smileid-project/smileid-go"
	"github.com/smileid-project/smileid-go/pkg/protocol"
	"github.com/smileid-project/smileid-go/pkg/validation"
)

// Request headers carrying the signature on the address verification path.
// The header names are wire protocol.
const (
	headerSourceSDK        = "smileid-source-sdk"
	headerSourceSDKVersion = "smileid-source-sdk-version"
	headerRequestSignature = "smileid-request-signature"
	headerTimestamp        = "smileid-timestamp"
	headerPartnerID        = "smileid-partner-id"
)

// AddressClient verifies user-provided address details against authority
// databases. The verification itself is asynchronous: a successful
// submission is acknowledged with {"success":true} and the result arrives
// later on the caller's callback URL.
type AddressClient struct {
	core
}

// NewAddressClient creates an address verification client from the given
// configuration.
func NewAddressClient(cfg Config) *AddressClient {
	return &AddressClient{core: newCore(cfg)}
}

// SubmitJob validates and submits one address verification job. Unlike the
// other products the signature travels in request headers, signed with an
// ISO-8601 timestamp, and the body is the validated params verbatim.
func (c *AddressClient) SubmitJob(ctx context.Context, params *protocol.AddressParams) (json.RawMessage, error) {
	if err := validation.AddressParams(params); err != nil {
		return nil, err
	}

	env := c.signer.GenerateISONow()
	headers := map[string]string{
		headerSourceSDK:        smileid.SourceSDK,
		headerSourceSDKVersion: smileid.Version,
		headerRequestSignature: env.Signature,
		headerTimestamp:        env.Timestamp,
		headerPartnerID:        c.partnerID,
	}

	if _, err := c.rest.PostJSON(ctx, "async-verify-address", headers, params); err != nil {
		return nil, err
	}
	return json.RawMessage(`{"success":true}`), nil
}
