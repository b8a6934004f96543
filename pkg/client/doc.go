// Package client provides the product clients of the Smile ID API.
//
// Every client is configured once with partner credentials and a server
// selection, signs each outgoing request, and surfaces the typed errors of
// the protocol package. Clients are immutable after construction and safe
// for concurrent use; all per-call state is local to the call.
//
// # Clients
//
//   - WebClient: image-carrying jobs (biometric KYC, SmartSelfie, document
//     verification) via the two-phase upload flow, job-status queries,
//     synchronous completion polling, and hosted-web tokens
//   - IDClient: enhanced KYC / ID API lookups
//   - BusinessClient: business registration and tax information searches
//   - AMLClient: AML watchlist screening
//   - AddressClient: asynchronous address verification
//   - StatusClient: standalone job_status queries with reply verification
//
// # Basic Usage
//
//	cfg := client.Config{
//	    PartnerID: "2213",
//	    APIKey:    apiKey,
//	    SIDServer: protocol.EnvironmentSandbox,
//	}
//
//	idAPI := client.NewIDClient(cfg)
//	resp, err := idAPI.SubmitJob(ctx, &protocol.PartnerParams{
//	    UserID:  "user-1",
//	    JobID:   "job-1",
//	    JobType: protocol.JobTypeEnhancedKYC,
//	}, protocol.IDInfo{
//	    "country":   "NG",
//	    "id_type":   "BVN",
//	    "id_number": "00000000000",
//	}, nil)
//
// # Signing schemes
//
// New integrations authenticate with the HMAC signature scheme, the zero
// value of Config.Scheme. Partners still on the legacy RSA sec_key scheme
// set Config.Scheme to signature.SchemeSecKey; every client and the status
// poller then generate and verify sec_key envelopes instead.
package client
