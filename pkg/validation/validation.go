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

package validation

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/smileid-project/smileid-go/pkg/protocol"
)

// PartnerParams checks that the job-identifying triple is complete.
func PartnerParams(p *protocol.PartnerParams) error {
	if p == nil {
		return &protocol.InvalidArgumentError{Message: "please ensure that you send through partner params"}
	}

	if err := validation.Validate(p.UserID, validation.Required); err != nil {
		return missingPartnerParam("user_id")
	}
	if err := validation.Validate(p.JobID, validation.Required); err != nil {
		return missingPartnerParam("job_id")
	}
	if err := validation.Validate(int(p.JobType), validation.Required); err != nil {
		return missingPartnerParam("job_type")
	}
	return nil
}

func missingPartnerParam(field string) *protocol.InvalidArgumentError {
	return protocol.NewInvalidArgument(field, "please make sure that %s is included in the partner params", field)
}

// IDInfo checks that the subject attributes carry every required field.
// Unknown extra keys are allowed and ignored.
func IDInfo(info protocol.IDInfo, required ...string) error {
	if len(info) == 0 {
		return &protocol.InvalidArgumentError{Message: "please make sure that id_info is not empty or nil"}
	}

	for _, key := range required {
		if err := validation.Validate(info[key], validation.Required); err != nil {
			return protocol.NewInvalidArgument(key, "please make sure that %s is included in the id_info", key)
		}
	}
	return nil
}

// Images checks that an image set was supplied and contains at least one
// selfie, which every image-carrying job type requires.
func Images(images []protocol.Image) error {
	if images == nil {
		return &protocol.InvalidArgumentError{Message: "please ensure that you send through image details"}
	}

	for _, img := range images {
		if img.ImageTypeID.IsSelfie() {
			return nil
		}
	}
	return protocol.NewInvalidArgument("images", "you need to send through at least one selfie image")
}

// AddressParams checks an address verification request. The country
// determines which identifier fields are required: NG verifies against a
// utility account, ZA against the national id number.
func AddressParams(p *protocol.AddressParams) error {
	if p == nil {
		return &protocol.InvalidArgumentError{Message: "please ensure that you send through address params"}
	}

	if err := validation.Validate(p.Country, validation.Required); err != nil {
		return protocol.NewInvalidArgument("country", "please make sure that country is included in the address params")
	}
	if err := validation.Validate(p.Country, validation.In("NG", "ZA")); err != nil {
		return protocol.NewInvalidArgument("country", "country must be one of NG, ZA")
	}
	if err := validation.Validate(p.Address, validation.Required); err != nil {
		return protocol.NewInvalidArgument("address", "please make sure that address is included in the address params")
	}
	if err := validation.Validate(p.CallbackURL, validation.Required); err != nil {
		return protocol.NewInvalidArgument("callback_url", "please make sure that callback_url is included in the address params")
	}

	switch p.Country {
	case "NG":
		if err := validation.Validate(p.UtilityNumber, validation.Required); err != nil {
			return protocol.NewInvalidArgument("utility_number", "utility_number is required for NG address verification")
		}
		if err := validation.Validate(p.UtilityProvider, validation.Required); err != nil {
			return protocol.NewInvalidArgument("utility_provider", "utility_provider is required for NG address verification")
		}
	case "ZA":
		if err := validation.Validate(p.IDNumber, validation.Required); err != nil {
			return protocol.NewInvalidArgument("id_number", "id_number is required for ZA address verification")
		}
	}
	return nil
}

// WebTokenRequest checks a hosted-web token request and reports every blank
// field in one message, in declaration order.
func WebTokenRequest(r *protocol.WebTokenRequest) error {
	if r == nil {
		return &protocol.InvalidArgumentError{Message: "please ensure that you send through request params"}
	}

	fields := []struct {
		name  string
		value string
	}{
		{"user_id", r.UserID},
		{"job_id", r.JobID},
		{"product", r.Product},
		{"callback_url", r.CallbackURL},
	}

	var blank []string
	for _, f := range fields {
		if err := validation.Validate(f.value, validation.Required); err != nil {
			blank = append(blank, f.name)
		}
	}
	if len(blank) == 0 {
		return nil
	}

	verb := "is"
	if len(blank) > 1 {
		verb = "are"
	}
	return protocol.NewInvalidArgument(blank[0], "%s %s required to get a web token", strings.Join(blank, ", "), verb)
}
