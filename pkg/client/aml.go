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
)

// AMLClient screens customers against global watchlists, politically
// exposed persons lists and adverse media publications.
type AMLClient struct {
	core
}

// NewAMLClient creates an AML screening client from the given
// configuration.
func NewAMLClient(cfg Config) *AMLClient {
	return &AMLClient{core: newCore(cfg)}
}

// SubmitJob submits one AML screening job. A zero JobType defaults to the
// AML code; any other value is rejected. The reply body is returned as the
// server sent it.
func (c *AMLClient) SubmitJob(ctx context.Context, params *protocol.AMLParams) (json.RawMessage, error) {
	if params == nil {
		return nil, &protocol.InvalidArgumentError{Message: "please ensure that you send through aml params"}
	}
	if params.JobType != 0 && params.JobType != protocol.JobTypeAMLCheck {
		return nil, protocol.NewInvalidArgument("job_type",
			"please ensure that you are setting your job_type to %d to query AML", protocol.JobTypeAMLCheck)
	}

	env, err := c.envelope()
	if err != nil {
		return nil, err
	}

	countries := params.Countries
	if countries == nil {
		countries = []string{}
	}

	payload := map[string]interface{}{}
	env.Apply(payload)
	payload["user_id"] = params.UserID
	payload["job_id"] = params.JobID
	payload["full_name"] = params.FullName
	payload["birth_year"] = params.BirthYear
	payload["countries"] = countries
	payload["search_existing_user"] = params.SearchExistingUser
	c.addPartnerInfo(payload)
	payload["job_type"] = protocol.JobTypeAMLCheck
	if params.OptionalInfo != nil {
		payload["partner_params"] = params.OptionalInfo
	}
	addSDKInfo(payload)

	return c.rest.PostJSON(ctx, "aml", nil, payload)
}
