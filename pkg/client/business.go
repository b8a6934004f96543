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

// Business verification types accepted in the id_info business_type field.
const (
	BasicBusinessRegistration = "BASIC_BUSINESS_REGISTRATION"
	BusinessRegistration      = "BUSINESS_REGISTRATION"
	TaxInformation            = "TAX_INFORMATION"
)

// BusinessClient searches the business registration or tax information of a
// business in one of the supported countries.
type BusinessClient struct {
	core
}

// NewBusinessClient creates a business verification client from the given
// configuration.
func NewBusinessClient(cfg Config) *BusinessClient {
	return &BusinessClient{core: newCore(cfg)}
}

// SubmitJob validates and submits one business verification job. The reply
// body is returned as the server sent it.
func (c *BusinessClient) SubmitJob(ctx context.Context, partnerParams *protocol.PartnerParams, idInfo protocol.IDInfo) (json.RawMessage, error) {
	if err := validation.PartnerParams(partnerParams); err != nil {
		return nil, err
	}
	if err := validation.IDInfo(idInfo, idInfoRequiredFields...); err != nil {
		return nil, err
	}
	if partnerParams.JobType != protocol.JobTypeBusinessVerification {
		return nil, protocol.NewInvalidArgument("job_type",
			"please ensure that you are setting your job_type to %d to query business verification", protocol.JobTypeBusinessVerification)
	}

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

	return c.rest.PostJSON(ctx, "business_verification", nil, payload)
}
