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

	smileid "github.com/smileid-project/smileid-go"
	"github.com/smileid-project/smileid-go/pkg/protocol"
)

func enhancedKYCParams() *protocol.PartnerParams {
	return &protocol.PartnerParams{
		UserID:  "user-1",
		JobID:   "job-1",
		JobType: protocol.JobTypeEnhancedKYC,
	}
}

func enhancedKYCIDInfo() protocol.IDInfo {
	return protocol.IDInfo{
		"country":   "NG",
		"id_type":   "BVN",
		"id_number": "00000000000",
	}
}

func TestIDClient_SubmitJob(t *testing.T) {
	server := newTestServer(t)
	server.reply("/id_verification", `{"ResultCode":"1012","ResultText":"ID Number Validated"}`)

	c := NewIDClient(testConfig(server.URL))
	body, err := c.SubmitJob(context.Background(), enhancedKYCParams(), enhancedKYCIDInfo(), nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ResultCode":"1012","ResultText":"ID Number Validated"}`, string(body))

	requests := server.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "/id_verification", requests[0].Path)

	payload := requests[0].JSON(t)
	requireSignedPayload(t, payload)

	// Subject attributes are flattened to the top level
	assert.Equal(t, "NG", payload["country"])
	assert.Equal(t, "BVN", payload["id_type"])
	assert.Equal(t, "00000000000", payload["id_number"])

	assert.Equal(t, testPartnerID, payload["partner_id"])
	assert.Equal(t, smileid.SourceSDK, payload["source_sdk"])
	assert.Equal(t, smileid.Version, payload["source_sdk_version"])

	partnerParams, ok := payload["partner_params"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "user-1", partnerParams["user_id"])
	assert.Equal(t, "job-1", partnerParams["job_id"])
	assert.Equal(t, float64(protocol.JobTypeEnhancedKYC), partnerParams["job_type"])
}

func TestIDClient_SubmitJob_AsyncEndpoint(t *testing.T) {
	server := newTestServer(t)
	server.reply("/async_id_verification", `{"success":true}`)

	c := NewIDClient(testConfig(server.URL))
	body, err := c.SubmitJob(context.Background(), enhancedKYCParams(), enhancedKYCIDInfo(), &IDOptions{UseAsyncEndpoint: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true}`, string(body))

	requests := server.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "/async_id_verification", requests[0].Path)
}

func TestIDClient_SubmitJob_ExtraIDInfoKeysPassThrough(t *testing.T) {
	server := newTestServer(t)

	idInfo := enhancedKYCIDInfo()
	idInfo["first_name"] = "Jane"
	idInfo["custom_field"] = "custom_value"

	c := NewIDClient(testConfig(server.URL))
	_, err := c.SubmitJob(context.Background(), enhancedKYCParams(), idInfo, nil)
	require.NoError(t, err)

	payload := server.recorded()[0].JSON(t)
	assert.Equal(t, "Jane", payload["first_name"])
	assert.Equal(t, "custom_value", payload["custom_field"])
}

func TestIDClient_SubmitJob_RejectsWrongJobType(t *testing.T) {
	server := newTestServer(t)

	params := enhancedKYCParams()
	params.JobType = protocol.JobTypeBiometricKYC

	c := NewIDClient(testConfig(server.URL))
	_, err := c.SubmitJob(context.Background(), params, enhancedKYCIDInfo(), nil)
	require.Error(t, err)

	var invalidArg *protocol.InvalidArgumentError
	require.True(t, errors.As(err, &invalidArg))
	assert.EqualError(t, err, "please ensure that you are setting your job_type to 5 to query the ID API")

	// Rejected before any network call
	assert.Empty(t, server.recorded())
}

func TestIDClient_SubmitJob_RejectsIncompleteInput(t *testing.T) {
	server := newTestServer(t)
	c := NewIDClient(testConfig(server.URL))

	_, err := c.SubmitJob(context.Background(), nil, enhancedKYCIDInfo(), nil)
	assert.EqualError(t, err, "please ensure that you send through partner params")

	_, err = c.SubmitJob(context.Background(), enhancedKYCParams(), nil, nil)
	assert.EqualError(t, err, "please make sure that id_info is not empty or nil")

	idInfo := enhancedKYCIDInfo()
	delete(idInfo, "id_number")
	_, err = c.SubmitJob(context.Background(), enhancedKYCParams(), idInfo, nil)
	assert.EqualError(t, err, "please make sure that id_number is included in the id_info")

	assert.Empty(t, server.recorded())
}
