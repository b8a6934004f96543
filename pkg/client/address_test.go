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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smileid "github.com/smileid-project/smileid-go"
	"github.com/smileid-project/smileid-go/pkg/protocol"
)

func ngAddressParams() *protocol.AddressParams {
	return &protocol.AddressParams{
		Country:         "NG",
		Address:         "1 Some Street, Lagos",
		UtilityNumber:   "12345678",
		UtilityProvider: "IkejaElectric",
		CallbackURL:     "https://example.com/callback",
	}
}

func TestAddressClient_SubmitJob(t *testing.T) {
	server := newTestServer(t)
	server.reply("/async-verify-address", `{"success":true}`)

	c := NewAddressClient(testConfig(server.URL))
	body, err := c.SubmitJob(context.Background(), ngAddressParams())
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true}`, string(body))

	requests := server.recorded()
	require.Len(t, requests, 1)
	req := requests[0]
	assert.Equal(t, "/async-verify-address", req.Path)

	// The signature travels in headers, not in the body
	assert.Equal(t, smileid.SourceSDK, req.Headers.Get("smileid-source-sdk"))
	assert.Equal(t, smileid.Version, req.Headers.Get("smileid-source-sdk-version"))
	assert.Equal(t, testPartnerID, req.Headers.Get("smileid-partner-id"))

	timestamp := req.Headers.Get("smileid-timestamp")
	sig := req.Headers.Get("smileid-request-signature")
	require.NotEmpty(t, timestamp)
	require.NotEmpty(t, sig)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`, timestamp)
	assert.True(t, testSigner().Confirm(timestamp, sig))

	payload := req.JSON(t)
	assert.Equal(t, "NG", payload["country"])
	assert.Equal(t, "1 Some Street, Lagos", payload["address"])
	assert.Equal(t, "12345678", payload["utility_number"])
	assert.Equal(t, "IkejaElectric", payload["utility_provider"])
	assert.Equal(t, "https://example.com/callback", payload["callback_url"])
	assert.NotContains(t, payload, "signature")
	assert.NotContains(t, payload, "id_number")
}

func TestAddressClient_SubmitJob_RejectsInvalidParams(t *testing.T) {
	server := newTestServer(t)
	c := NewAddressClient(testConfig(server.URL))

	params := ngAddressParams()
	params.UtilityNumber = ""
	_, err := c.SubmitJob(context.Background(), params)
	require.Error(t, err)

	var invalidArg *protocol.InvalidArgumentError
	require.True(t, errors.As(err, &invalidArg))
	assert.Equal(t, "utility_number", invalidArg.Field)
	assert.Empty(t, server.recorded())
}

func TestAddressClient_SubmitJob_RemoteError(t *testing.T) {
	server := newTestServer(t)
	server.handle("/async-verify-address", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid signature"}`))
	})

	c := NewAddressClient(testConfig(server.URL))
	_, err := c.SubmitJob(context.Background(), ngAddressParams())
	require.Error(t, err)

	var remoteErr *protocol.RemoteRequestError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusUnauthorized, remoteErr.StatusCode)
}
