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

package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smileid-project/smileid-go/pkg/protocol"
)

func TestREST_PostJSON(t *testing.T) {
	var gotPath, gotContentType, gotExtra string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotExtra = r.Header.Get("smileid-partner-id")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	rest := NewREST(server.URL, nil, nil)
	body, err := rest.PostJSON(context.Background(), "upload",
		map[string]string{"smileid-partner-id": "001"},
		map[string]interface{}{"file_name": "selfie.zip"},
	)
	require.NoError(t, err)

	assert.Equal(t, "/upload", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "001", gotExtra)
	assert.JSONEq(t, `{"file_name":"selfie.zip"}`, string(gotBody))
	assert.JSONEq(t, `{"ok":true}`, string(body))
}

func TestREST_PostJSON_TrimsTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	rest := NewREST(server.URL+"/v1/", nil, nil)
	_, err := rest.PostJSON(context.Background(), "job_status", nil, map[string]interface{}{})
	require.NoError(t, err)

	assert.Equal(t, "/v1/job_status", gotPath)
}

func TestREST_PostJSON_RemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Invalid product."}`))
	}))
	defer server.Close()

	rest := NewREST(server.URL, nil, nil)
	_, err := rest.PostJSON(context.Background(), "token", nil, map[string]interface{}{})
	require.Error(t, err)

	var remoteErr *protocol.RemoteRequestError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusBadRequest, remoteErr.StatusCode)
	assert.EqualError(t, err, `400: {"error":"Invalid product."}`)
}

func TestREST_PutZip(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer server.Close()

	rest := NewREST("https://unused.example.com", nil, nil)
	archive := []byte("PK\x03\x04fake-zip-bytes")

	err := rest.PutZip(context.Background(), server.URL+"/upload/one-time", archive)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "application/zip", gotContentType)
	assert.Equal(t, archive, gotBody)
}

func TestREST_PutZip_RemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	rest := NewREST(server.URL, nil, nil)
	err := rest.PutZip(context.Background(), server.URL+"/upload", []byte("zip"))

	var remoteErr *protocol.RemoteRequestError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusForbidden, remoteErr.StatusCode)
}

func TestREST_PostJSON_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rest := NewREST(server.URL, nil, nil)
	_, err := rest.PostJSON(ctx, "upload", nil, map[string]interface{}{})
	assert.ErrorIs(t, err, context.Canceled)
}
