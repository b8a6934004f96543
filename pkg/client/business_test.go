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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smileid-project/smileid-go/pkg/protocol"
)

func businessParams() *protocol.PartnerParams {
	return &protocol.PartnerParams{
		UserID:  "user-1",
		JobID:   "job-1",
		JobType: protocol.JobTypeBusinessVerification,
	}
}

func businessIDInfo() protocol.IDInfo {
	return protocol.IDInfo{
		"country":       "NG",
		"id_type":       "BUSINESS_REGISTRATION",
		"id_number":     "0000000",
		"business_type": BusinessRegistration,
	}
}

func TestBusinessClient_SubmitJob(t *testing.T) {
	server := newTestServer(t)
	server.reply("/business_verification", `{"company_information":{"company_type":"PRIVATE_COMPANY_LIMITED_BY_SHARES"}}`)

	c := NewBusinessClient(testConfig(server.URL))
	body, err := c.SubmitJob(context.Background(), businessParams(), businessIDInfo())
	require.NoError(t, err)
	assert.Contains(t, string(body), "company_information")

	requests := server.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "/business_verification", requests[0].Path)

	payload := requests[0].JSON(t)
	requireSignedPayload(t, payload)
	assert.Equal(t, "NG", payload["country"])
	assert.Equal(t, BusinessRegistration, payload["business_type"])
	assert.Equal(t, testPartnerID, payload["partner_id"])
}

func TestBusinessClient_SubmitJob_RejectsWrongJobType(t *testing.T) {
	server := newTestServer(t)

	params := businessParams()
	params.JobType = protocol.JobTypeBasicKYC

	c := NewBusinessClient(testConfig(server.URL))
	_, err := c.SubmitJob(context.Background(), params, businessIDInfo())
	require.Error(t, err)

	var invalidArg *protocol.InvalidArgumentError
	require.True(t, errors.As(err, &invalidArg))
	assert.EqualError(t, err, "please ensure that you are setting your job_type to 7 to query business verification")
	assert.Empty(t, server.recorded())
}

func TestBusinessClient_SubmitJob_RejectsIncompleteInput(t *testing.T) {
	server := newTestServer(t)
	c := NewBusinessClient(testConfig(server.URL))

	_, err := c.SubmitJob(context.Background(), nil, businessIDInfo())
	assert.EqualError(t, err, "please ensure that you send through partner params")

	idInfo := businessIDInfo()
	delete(idInfo, "country")
	_, err = c.SubmitJob(context.Background(), businessParams(), idInfo)
	assert.EqualError(t, err, "please make sure that country is included in the id_info")

	assert.Empty(t, server.recorded())
}
