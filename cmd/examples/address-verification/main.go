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

	"github.com/smileid-project/smileid-go/pkg/client"
	"github.com/smileid-project/smileid-go/pkg/protocol"
)

func main() {
	fmt.Println("Smile ID Go - Address Verification Example")
	fmt.Println("==========================================")

	ctx := context.Background()

	partnerID := os.Getenv("SMILE_PARTNER_ID")
	apiKey := os.Getenv("SMILE_API_KEY")
	callbackURL := os.Getenv("SMILE_CALLBACK_URL")
	if partnerID == "" || apiKey == "" || callbackURL == "" {
		log.Fatal("SMILE_PARTNER_ID, SMILE_API_KEY and SMILE_CALLBACK_URL must be set")
	}

	fmt.Println("\n1. Creating address verification client (sandbox)...")
	c := client.NewAddressClient(client.Config{
		PartnerID: partnerID,
		APIKey:    apiKey,
		SIDServer: protocol.EnvironmentSandbox,
	})

	fmt.Println("\n2. Submitting NG address verification...")
	fmt.Println("   (The result arrives asynchronously on the callback URL)")
	ack, err := c.SubmitJob(ctx, &protocol.AddressParams{
		Country:         "NG",
		Address:         "1 Some Street, Lagos",
		UtilityNumber:   "12345678",
		UtilityProvider: "IkejaElectric",
		FullName:        "Jane Doe",
		CallbackURL:     callbackURL,
	})
	if err != nil {
		log.Fatalf("Failed to submit job: %v", err)
	}

	fmt.Printf("\nAcknowledged: %s\n", ack)
}
