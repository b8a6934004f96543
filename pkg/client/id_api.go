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

	"github.com/smileid-project/smileid-go/pkg/protocol"
	"github.com/smileid-project/smileid-go/pkg/validation"
)

// idInfoRequiredFields are the subject attributes the ID API insists on.
var idInfoRequiredFields = []string{
	protocol.FieldCountry,
	protocol.FieldIDType,
	protocol.FieldIDNumber,
}

// IDClient submits enhanced KYC lookups to the ID API. The lookup is
// synchronous by default; the async endpoint delivers the result to the
// partner callback instead.
type IDClient struct {
	core
}

// NewIDClient creates an ID API client from the given configuration.
func NewIDClient(cfg Config) *IDClient {
	return &IDClient{core: newCore(cfg)}
}

// IDOptions are the per-call options of an ID API submission.
type IDOptions struct {
	// UseAsyncEndpoint routes the job to async_id_verification; the
	// result arrives on the partner callback instead of the reply.
	UseAsyncEndpoint bool
}

// SubmitJob validates and submits one enhanced KYC lookup. The reply body
// is returned as the server sent it.
func (c *IDClient) SubmitJob(ctx context.Context, partnerParams *protocol.PartnerParams, idInfo protocol.IDInfo, opts *IDOptions) (json.RawMessage, error) {
	if err := validation.PartnerParams(partnerParams); err != nil {
		return nil, err
	}
	if err := validation.IDInfo(idInfo, idInfoRequiredFields...); err != nil {
		return nil, err
	}
	if partnerParams.JobType != protocol.JobTypeEnhancedKYC {
		return nil, protocol.NewInvalidArgument("job_type",
			"please ensure that you are setting your job_type to %d to query the ID API", protocol.JobTypeEnhancedKYC)
	}

	payload, err := c.buildPayload(partnerParams, idInfo)
	if err != nil {
		return nil, err
	}

	endpoint := "id_verification"
	if opts != nil && opts.UseAsyncEndpoint {
		endpoint = "async_id_verification"
	}

	return c.rest.PostJSON(ctx, endpoint, nil, payload)
}

func (c *IDClient) buildPayload(partnerParams *protocol.PartnerParams, idInfo protocol.IDInfo) (map[string]interface{}, error) {
	env, err := c.envelope()
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{}
	env.Apply(payload)
	for k, v := range idInfo {
		payload[k] = v
	}
	c.addPartnerInfo(payload)
	payload["partner_params"] = partnerParams
	addSDKInfo(payload)
	return payload, nil
}
