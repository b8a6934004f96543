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

// JobType selects which verification product a job targets. The numeric
// values are part of the wire protocol and must not change.
type JobType int

const (
	// JobTypeBiometricKYC compares a selfie against an ID document photo.
	JobTypeBiometricKYC JobType = 1

	// JobTypeSmartSelfieAuthentication compares a selfie against a
	// previously enrolled user.
	JobTypeSmartSelfieAuthentication JobType = 2

	// JobTypeSmartSelfieRegistration enrolls a user's selfie.
	JobTypeSmartSelfieRegistration JobType = 4

	// JobTypeBasicKYC verifies id information against official databases.
	JobTypeBasicKYC JobType = 5

	// JobTypeEnhancedKYC is the ID API lookup. It shares the wire code of
	// basic KYC; the server distinguishes the products by endpoint.
	JobTypeEnhancedKYC JobType = 5

	// JobTypeDocumentVerification verifies a photo of an ID document.
	JobTypeDocumentVerification JobType = 6

	// JobTypeBusinessVerification searches business registration or tax
	// information.
	JobTypeBusinessVerification JobType = 7

	// JobTypeUpdatePhoto updates the enrolled photo of a user.
	JobTypeUpdatePhoto JobType = 8

	// JobTypeCompareUserInfo compares submitted user info with enrolled data.
	JobTypeCompareUserInfo JobType = 9

	// JobTypeAMLCheck screens a user against watchlists, PEP lists and
	// adverse media.
	JobTypeAMLCheck JobType = 10
)
