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
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smileid-project/smileid-go/pkg/signature"
)

const (
	testPartnerID = "001"
	testAPIKey    = "test-api-key"
)

func testConfig(serverURL string) Config {
	return Config{
		PartnerID: testPartnerID,
		APIKey:    testAPIKey,
		SIDServer: serverURL,
	}
}

func testSigner() *signature.Signer {
	return signature.NewSigner(testPartnerID, testAPIKey)
}

// recordedRequest is one request captured by the test server.
type recordedRequest struct {
	Method  string
	Path    string
	Headers http.Header
	Body    []byte
}

// JSON decodes the captured body as a JSON object.
func (r *recordedRequest) JSON(t *testing.T) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(r.Body, &payload))
	return payload
}

// testServer records every request and serves canned replies per path.
type testServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
	handlers map[string]http.HandlerFunc
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	s := &testServer{handlers: map[string]http.HandlerFunc{}}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		s.mu.Lock()
		s.requests = append(s.requests, recordedRequest{
			Method:  r.Method,
			Path:    r.URL.Path,
			Headers: r.Header.Clone(),
			Body:    body,
		})
		handler := s.handlers[r.URL.Path]
		s.mu.Unlock()

		r.Body = io.NopCloser(bytes.NewReader(body))

		if handler == nil {
			w.Write([]byte(`{}`))
			return
		}
		handler(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

// handle installs a reply handler for one request path.
func (s *testServer) handle(path string, handler http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[path] = handler
}

// reply installs a fixed JSON reply for one request path.
func (s *testServer) reply(path, body string) {
	s.handle(path, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})
}

// recorded returns a snapshot of the captured requests.
func (s *testServer) recorded() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedRequest(nil), s.requests...)
}

// requireSignedPayload verifies the envelope of a captured JSON payload
// against the test credentials.
func requireSignedPayload(t *testing.T, payload map[string]interface{}) {
	t.Helper()
	timestamp, ok := payload["timestamp"].(string)
	require.True(t, ok, "payload carries no timestamp")
	sig, ok := payload["signature"].(string)
	require.True(t, ok, "payload carries no signature")
	require.True(t, testSigner().Confirm(timestamp, sig), "payload signature does not verify")
}

// signedStatusBody builds a job_status reply body signed with the test
// credentials.
func signedStatusBody(t *testing.T, jobComplete bool, extra map[string]interface{}) []byte {
	t.Helper()
	env := testSigner().GenerateNow()
	body := map[string]interface{}{
		"job_complete": jobComplete,
		"job_success":  jobComplete,
		"timestamp":    env.Timestamp,
		"signature":    env.Signature,
	}
	for k, v := range extra {
		body[k] = v
	}
	data, err := json.Marshal(body)
	require.NoError(t, err)
	return data
}
