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

package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// JobStatusResponse is a parsed job_status reply. The envelope fields are
// lifted out for verification; everything the server returned, including
// job-type-specific result fields, stays available in Raw.
type JobStatusResponse struct {
	JobComplete bool
	Timestamp   string
	Signature   string
	SecKey      string
	Raw         map[string]interface{}
}

// ParseJobStatusResponse decodes a job_status reply body. The timestamp is
// preserved exactly as the server sent it: signature verification must run
// over the server's own representation, whether string or integer.
func ParseJobStatusResponse(body []byte) (*JobStatusResponse, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode job status response: %w", err)
	}

	resp := &JobStatusResponse{Raw: raw}
	if v, ok := raw["job_complete"].(bool); ok {
		resp.JobComplete = v
	}
	switch ts := raw["timestamp"].(type) {
	case string:
		resp.Timestamp = ts
	case json.Number:
		resp.Timestamp = ts.String()
	}
	if v, ok := raw["signature"].(string); ok {
		resp.Signature = v
	}
	if v, ok := raw["sec_key"].(string); ok {
		resp.SecKey = v
	}
	return resp, nil
}

// TimestampInt returns the echoed timestamp as integer seconds, as required
// by legacy sec_key verification.
func (r *JobStatusResponse) TimestampInt() (int64, error) {
	n, err := strconv.ParseInt(r.Timestamp, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("job status timestamp %q is not an integer: %w", r.Timestamp, err)
	}
	return n, nil
}
