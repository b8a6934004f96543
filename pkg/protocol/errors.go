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

import "fmt"

// InvalidArgumentError reports malformed or missing caller input. It is
// raised before any network call. Field names the offending input when one
// specific field is at fault.
type InvalidArgumentError struct {
	Field   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// NewInvalidArgument builds an InvalidArgumentError for a specific field.
func NewInvalidArgument(field, format string, args ...interface{}) *InvalidArgumentError {
	return &InvalidArgumentError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// RemoteRequestError reports a non-success HTTP outcome. The transport
// succeeded but the server rejected the request; the SDK never retries
// these.
type RemoteRequestError struct {
	StatusCode int
	Body       []byte
}

func (e *RemoteRequestError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Body)
}

// IntegrityError reports a server reply whose signature failed
// verification. The reply is never returned to the caller.
type IntegrityError struct {
	Message string
}

func (e *IntegrityError) Error() string {
	return e.Message
}

// CryptoError reports malformed key material or a failed cryptographic
// operation.
type CryptoError struct {
	Op  string
	Err error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}
