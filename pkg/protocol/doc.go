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

// Package protocol defines the wire-level vocabulary of the Smile ID REST API.
//
// The package contains the request and response shapes shared by every
// verification product, the job-type and image-type enumerations, the
// environment-to-server mapping, and the error taxonomy surfaced by the SDK.
//
// # Types
//
//   - PartnerParams: the user_id/job_id/job_type triple identifying one job
//   - IDInfo: verification-subject attributes, unknown keys pass through
//   - Image: one selfie/liveness/ID-card descriptor, file-backed or inline
//   - JobOptions / StatusOptions: per-call flags
//   - JobStatusResponse: parsed job_status reply with opaque remainder
//
// # Errors
//
// All SDK failures are typed and usable with errors.As:
//
//   - *InvalidArgumentError: malformed caller input, names the field
//   - *RemoteRequestError: non-2xx server reply, carries status and body
//   - *IntegrityError: a server reply failed signature verification
//   - *CryptoError: key material or cryptographic operation failure
package protocol
