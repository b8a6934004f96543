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
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/smileid-project/smileid-go/pkg/protocol"
)

const (
	// maxPollAttempts bounds the status poll loop. Reaching it is not an
	// error: the last reply is returned and the caller inspects its
	// completion flag.
	maxPollAttempts = 20

	// The first few polls come quickly while the job is likely still in
	// fast processing, then back off to reduce load on long-running jobs.
	earlyPollWaits    = 4
	earlyPollInterval = 2 * time.Second
	latePollInterval  = 6 * time.Second
)

// pollSchedule is the two-stage wait schedule of the status poller.
// Implements backoff.BackOff.
type pollSchedule struct {
	waits int
}

func (s *pollSchedule) NextBackOff() time.Duration {
	s.waits++
	if s.waits <= earlyPollWaits {
		return earlyPollInterval
	}
	return latePollInterval
}

func (s *pollSchedule) Reset() {
	s.waits = 0
}

// StatusPoller repeatedly queries job status until the job completes or the
// attempt budget is exhausted. Each reply is signature-verified by the
// underlying StatusClient; a verification failure aborts polling
// immediately.
type StatusPoller struct {
	status   *StatusClient
	schedule backoff.BackOff
	sleep    func(ctx context.Context, d time.Duration) error
	attempts int
}

// NewStatusPoller creates a poller over the given status client.
func NewStatusPoller(status *StatusClient) *StatusPoller {
	return &StatusPoller{
		status:   status,
		schedule: &pollSchedule{},
		sleep:    sleepContext,
		attempts: maxPollAttempts,
	}
}

// Poll blocks until the job reports completion or the attempt budget runs
// out, sleeping before every attempt per the poll schedule. The last reply
// is returned either way; callers must check JobComplete themselves. Any
// query or verification error aborts the loop and is returned as-is.
func (p *StatusPoller) Poll(ctx context.Context, userID, jobID string, opts *protocol.StatusOptions) (*protocol.JobStatusResponse, error) {
	p.schedule.Reset()

	var last *protocol.JobStatusResponse
	for attempt := 1; attempt <= p.attempts; attempt++ {
		wait := p.schedule.NextBackOff()
		if wait == backoff.Stop {
			break
		}
		if err := p.sleep(ctx, wait); err != nil {
			return nil, err
		}

		resp, err := p.status.GetJobStatus(ctx, userID, jobID, opts)
		if err != nil {
			return nil, err
		}

		last = resp
		if resp.JobComplete {
			return resp, nil
		}
		p.status.logger.WithField("attempt", attempt).Debug("job not complete yet")
	}
	return last, nil
}

// sleepContext sleeps for d or until the context is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
