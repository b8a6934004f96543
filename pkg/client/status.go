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

	"github.com/smileid-project/smileid-go/pkg/protocol"
	"github.com/smileid-project/smileid-go/pkg/signature"
)

// StatusClient queries the status of previously submitted jobs and
// authenticates every reply before returning it.
type StatusClient struct {
	core
}

// NewStatusClient creates a job-status client from the given configuration.
func NewStatusClient(cfg Config) *StatusClient {
	return &StatusClient{core: newCore(cfg)}
}

// GetJobStatus queries job_status for one job. The server echoes back the
// timestamp it signed with; the reply signature is verified against it and
// an *IntegrityError is returned on any mismatch. Unverified data is never
// handed to the caller.
func (c *StatusClient) GetJobStatus(ctx context.Context, userID, jobID string, opts *protocol.StatusOptions) (*protocol.JobStatusResponse, error) {
	if opts == nil {
		opts = &protocol.StatusOptions{}
	}

	env, err := c.envelope()
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"user_id":     userID,
		"job_id":      jobID,
		"partner_id":  c.partnerID,
		"image_links": opts.ReturnImageLinks,
		"history":     opts.ReturnHistory,
	}
	env.Apply(payload)
	addSDKInfo(payload)

	body, err := c.rest.PostJSON(ctx, "job_status", nil, payload)
	if err != nil {
		return nil, err
	}

	resp, err := protocol.ParseJobStatusResponse(body)
	if err != nil {
		return nil, err
	}
	if err := c.confirmResponse(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// confirmResponse checks the reply envelope under the scheme the request
// was signed with. The server returns the matching envelope kind, so the
// scheme we started with decides which verification to run.
func (c *StatusClient) confirmResponse(resp *protocol.JobStatusResponse) error {
	if c.scheme == signature.SchemeSecKey {
		ts, err := resp.TimestampInt()
		if err != nil {
			return &protocol.IntegrityError{Message: "unable to confirm validity of the job_status response"}
		}
		ok, err := c.signer.ConfirmSecKey(ts, resp.SecKey)
		if err != nil || !ok {
			return &protocol.IntegrityError{Message: "unable to confirm validity of the job_status response"}
		}
		return nil
	}

	if !c.signer.Confirm(resp.Timestamp, resp.Signature) {
		return &protocol.IntegrityError{Message: "unable to confirm validity of the job_status response"}
	}
	return nil
}
