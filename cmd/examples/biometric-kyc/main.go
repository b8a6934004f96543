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

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/smileid-project/smileid-go/pkg/client"
	"github.com/smileid-project/smileid-go/pkg/protocol"
)

func main() {
	fmt.Println("Smile ID Go - Biometric KYC Example")
	fmt.Println("===================================")

	ctx := context.Background()

	partnerID := os.Getenv("SMILE_PARTNER_ID")
	apiKey := os.Getenv("SMILE_API_KEY")
	selfiePath := os.Getenv("SMILE_SELFIE_PATH")
	idCardPath := os.Getenv("SMILE_ID_CARD_PATH")
	if partnerID == "" || apiKey == "" {
		log.Fatal("SMILE_PARTNER_ID and SMILE_API_KEY must be set")
	}
	if selfiePath == "" || idCardPath == "" {
		log.Fatal("SMILE_SELFIE_PATH and SMILE_ID_CARD_PATH must point to image files")
	}

	fmt.Println("\n1. Creating web API client (sandbox)...")
	c := client.NewWebClient(client.Config{
		PartnerID: partnerID,
		APIKey:    apiKey,
		SIDServer: protocol.EnvironmentSandbox,
	})

	fmt.Println("\n2. Building job inputs...")
	partnerParams := &protocol.PartnerParams{
		UserID:  uuid.NewString(),
		JobID:   uuid.NewString(),
		JobType: protocol.JobTypeBiometricKYC,
	}
	images := []protocol.Image{
		{ImageTypeID: protocol.ImageTypeSelfieFile, Image: selfiePath},
		{ImageTypeID: protocol.ImageTypeIDCardFile, Image: idCardPath},
	}
	fmt.Printf("   user_id: %s\n", partnerParams.UserID)
	fmt.Printf("   job_id:  %s\n", partnerParams.JobID)

	fmt.Println("\n3. Submitting job and waiting for the result...")
	result, err := c.SubmitJob(ctx, partnerParams, images, nil, &protocol.JobOptions{
		ReturnJobStatus: true,
	})
	if err != nil {
		log.Fatalf("Failed to submit job: %v", err)
	}

	fmt.Printf("\nResult: %s\n", result)
}
