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

// PartnerParams identifies one verification job. The user and job ids are
// caller-supplied correlation identifiers; the SDK never generates them.
type PartnerParams struct {
	UserID  string  `json:"user_id"`
	JobID   string  `json:"job_id"`
	JobType JobType `json:"job_type"`
}

// IDInfo holds verification-subject attributes such as name, country and id
// number. Which keys are required depends on the job type; unknown keys are
// passed through to the server untouched.
type IDInfo map[string]string

// Well-known IDInfo keys.
const (
	FieldCountry      = "country"
	FieldIDType       = "id_type"
	FieldIDNumber     = "id_number"
	FieldEntered      = "entered"
	FieldBusinessType = "business_type"
)

// Entered reports whether the id information was declared as user-entered.
// The wire value is the string "true", not a boolean.
func (i IDInfo) Entered() bool {
	return i[FieldEntered] == "true"
}

// ImageType distinguishes the image kind and whether the value is a file
// path or an inline base64 string. The numeric values are wire protocol.
type ImageType int

const (
	ImageTypeSelfieFile       ImageType = 0
	ImageTypeIDCardFile       ImageType = 1
	ImageTypeSelfieBase64     ImageType = 2
	ImageTypeIDCardBase64     ImageType = 3
	ImageTypeLivenessFile     ImageType = 4
	ImageTypeIDCardRearFile   ImageType = 5
	ImageTypeLivenessBase64   ImageType = 6
	ImageTypeIDCardRearBase64 ImageType = 7
)

// IsFile reports whether the image value is a path to be bundled into the
// upload archive rather than an inline base64 string.
func (t ImageType) IsFile() bool {
	return t == ImageTypeSelfieFile || t == ImageTypeIDCardFile
}

// IsSelfie reports whether the image is a selfie, regardless of source.
func (t ImageType) IsSelfie() bool {
	return t == ImageTypeSelfieFile || t == ImageTypeSelfieBase64
}

// IsIDCard reports whether the image is an ID card front, regardless of
// source.
func (t ImageType) IsIDCard() bool {
	return t == ImageTypeIDCardFile || t == ImageTypeIDCardBase64
}

// Image describes one submitted image. Image is either a file path or a
// base64 payload depending on ImageTypeID.
type Image struct {
	ImageTypeID ImageType `json:"image_type_id"`
	Image       string    `json:"image"`
}

// JobOptions carries the per-submission flags of the web API.
type JobOptions struct {
	// OptionalCallback overrides the client's default callback URL for
	// this job only.
	OptionalCallback string

	// ReturnJobStatus makes the submission block until the job completes
	// or the poll budget is exhausted.
	ReturnJobStatus bool

	// ReturnHistory includes the job history in status replies.
	ReturnHistory bool

	// ReturnImageLinks includes links to the submitted images in status
	// replies.
	ReturnImageLinks bool
}

// StatusOptions carries the flags of a standalone job_status query.
type StatusOptions struct {
	ReturnHistory    bool
	ReturnImageLinks bool
}

// WebTokenRequest is the body of a hosted-web token request.
type WebTokenRequest struct {
	UserID      string `json:"user_id"`
	JobID       string `json:"job_id"`
	Product     string `json:"product"`
	CallbackURL string `json:"callback_url"`
}

// AMLParams are the subject parameters of an AML screening job.
type AMLParams struct {
	UserID             string   `json:"user_id"`
	JobID              string   `json:"job_id"`
	JobType            JobType  `json:"job_type"`
	SearchExistingUser bool     `json:"search_existing_user"`
	FullName           string   `json:"full_name"`
	BirthYear          string   `json:"birth_year"`
	Countries          []string `json:"countries"`

	// OptionalInfo is echoed back by the server inside partner_params.
	OptionalInfo map[string]interface{} `json:"-"`
}

// AddressParams are the parameters of an address verification job. Which
// fields are required depends on Country; see validation.AddressParams.
type AddressParams struct {
	Country         string `json:"country"`
	Address         string `json:"address"`
	UtilityNumber   string `json:"utility_number,omitempty"`
	UtilityProvider string `json:"utility_provider,omitempty"`
	IDNumber        string `json:"id_number,omitempty"`
	FullName        string `json:"full_name,omitempty"`
	CallbackURL     string `json:"callback_url"`
}
