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
	"encoding/json"
	"fmt"
	"path/filepath"

	smileid "github.com/smileid-project/smileid-go"
	"github.com/smileid-project/smileid-go/pkg/archive"
	"github.com/smileid-project/smileid-go/pkg/protocol"
	"github.com/smileid-project/smileid-go/pkg/validation"
)

// uploadFileName is the fixed archive name announced in the prep-upload
// request and the manifest.
const uploadFileName = "selfie.zip"

// WebClient submits image-carrying verification jobs through the two-phase
// upload flow: a signed prep request obtains a one-time upload URL and a
// server-assigned job id, then the image bundle is PUT to that URL. The
// split keeps large binary payloads out of the signed control-plane
// request.
type WebClient struct {
	core
	callbackURL string
	archiver    archive.Builder
	idAPI       *IDClient
	business    *BusinessClient
	status      *StatusClient
	poller      *StatusPoller
}

// NewWebClient creates a web API client from the given configuration.
func NewWebClient(cfg Config) *WebClient {
	c := &WebClient{
		core:        newCore(cfg),
		callbackURL: cfg.DefaultCallback,
		archiver:    archive.NewZipBuilder(),
		idAPI:       NewIDClient(cfg),
		business:    NewBusinessClient(cfg),
		status:      NewStatusClient(cfg),
	}
	c.poller = NewStatusPoller(c.status)
	return c
}

// SubmitJob validates and submits one verification job.
//
// Jobs whose type is enhanced KYC or business verification never carry
// images and are transparently routed to the dedicated endpoint with the
// same credentials. All other types go through the upload flow; when
// opts.ReturnJobStatus is set the call blocks on the status poller and
// returns the final job status merged with the submission acknowledgment.
func (c *WebClient) SubmitJob(ctx context.Context, partnerParams *protocol.PartnerParams, images []protocol.Image, idInfo protocol.IDInfo, opts *protocol.JobOptions) (json.RawMessage, error) {
	if err := validation.PartnerParams(partnerParams); err != nil {
		return nil, err
	}

	switch partnerParams.JobType {
	case protocol.JobTypeEnhancedKYC:
		return c.idAPI.SubmitJob(ctx, partnerParams, idInfo, nil)
	case protocol.JobTypeBusinessVerification:
		return c.business.SubmitJob(ctx, partnerParams, idInfo)
	}

	if opts == nil {
		opts = &protocol.JobOptions{}
	}
	callback := c.callbackURL
	if opts.OptionalCallback != "" {
		callback = opts.OptionalCallback
	}

	if err := validation.Images(images); err != nil {
		return nil, err
	}
	idInfo = normalizeIDInfo(idInfo)
	if idInfo.Entered() {
		if err := validation.IDInfo(idInfo, idInfoRequiredFields...); err != nil {
			return nil, err
		}
	}
	if partnerParams.JobType == protocol.JobTypeBiometricKYC {
		if err := validateEnrollWithID(images, idInfo); err != nil {
			return nil, err
		}
	}
	if callback == "" && !opts.ReturnJobStatus {
		return nil, &protocol.InvalidArgumentError{
			Message: "please choose to either get your response via the callback or job status query",
		}
	}

	prep, serverInfo, err := c.prepUpload(ctx, partnerParams, callback)
	if err != nil {
		return nil, err
	}

	manifest, err := c.buildManifest(partnerParams, images, idInfo, callback, serverInfo)
	if err != nil {
		return nil, err
	}
	bundle, err := c.archiver.Build(bundleEntries(manifest, images))
	if err != nil {
		return nil, err
	}
	if err := c.rest.PutZip(ctx, prep.UploadURL, bundle); err != nil {
		return nil, err
	}

	if !opts.ReturnJobStatus {
		return json.Marshal(map[string]interface{}{
			"success":      true,
			"smile_job_id": prep.SmileJobID,
		})
	}

	status, err := c.poller.Poll(ctx, partnerParams.UserID, partnerParams.JobID, &protocol.StatusOptions{
		ReturnHistory:    opts.ReturnHistory,
		ReturnImageLinks: opts.ReturnImageLinks,
	})
	if err != nil {
		return nil, err
	}
	status.Raw["success"] = true
	status.Raw["smile_job_id"] = prep.SmileJobID
	return json.Marshal(status.Raw)
}

// GetJobStatus queries the current status of a previously submitted job.
func (c *WebClient) GetJobStatus(ctx context.Context, partnerParams *protocol.PartnerParams, opts *protocol.StatusOptions) (*protocol.JobStatusResponse, error) {
	if err := validation.PartnerParams(partnerParams); err != nil {
		return nil, err
	}
	return c.status.GetJobStatus(ctx, partnerParams.UserID, partnerParams.JobID, opts)
}

// GetWebToken requests a token for a hosted web integration session. The
// client's default callback is used when the request carries none.
func (c *WebClient) GetWebToken(ctx context.Context, req *protocol.WebTokenRequest) (json.RawMessage, error) {
	if req == nil {
		return nil, &protocol.InvalidArgumentError{Message: "please ensure that you send through request params"}
	}

	request := *req
	if request.CallbackURL == "" {
		request.CallbackURL = c.callbackURL
	}
	if err := validation.WebTokenRequest(&request); err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"user_id":      request.UserID,
		"job_id":       request.JobID,
		"product":      request.Product,
		"callback_url": request.CallbackURL,
	}
	c.signer.GenerateNow().Apply(payload)
	c.addPartnerInfo(payload)
	addSDKInfo(payload)

	return c.rest.PostJSON(ctx, "token", nil, payload)
}

// prepUploadResponse is the subset of the prep reply the flow needs; the
// full reply is echoed back inside the manifest.
type prepUploadResponse struct {
	UploadURL  string `json:"upload_url"`
	SmileJobID string `json:"smile_job_id"`
}

func (c *WebClient) prepUpload(ctx context.Context, partnerParams *protocol.PartnerParams, callback string) (*prepUploadResponse, map[string]interface{}, error) {
	env, err := c.envelope()
	if err != nil {
		return nil, nil, err
	}

	payload := map[string]interface{}{
		"file_name":        uploadFileName,
		"smile_client_id":  c.partnerID,
		"partner_params":   partnerParams,
		"model_parameters": map[string]interface{}{},
		"callback_url":     callback,
	}
	env.Apply(payload)
	addSDKInfo(payload)

	body, err := c.rest.PostJSON(ctx, "upload", nil, payload)
	if err != nil {
		return nil, nil, err
	}

	var prep prepUploadResponse
	if err := json.Unmarshal(body, &prep); err != nil {
		return nil, nil, fmt.Errorf("failed to decode prep upload response: %w", err)
	}
	var serverInfo map[string]interface{}
	if err := json.Unmarshal(body, &serverInfo); err != nil {
		return nil, nil, fmt.Errorf("failed to decode prep upload response: %w", err)
	}
	return &prep, serverInfo, nil
}

// buildManifest assembles the info.json manifest for the upload bundle.
func (c *WebClient) buildManifest(partnerParams *protocol.PartnerParams, images []protocol.Image, idInfo protocol.IDInfo, callback string, serverInfo map[string]interface{}) (map[string]interface{}, error) {
	env, err := c.envelope()
	if err != nil {
		return nil, err
	}

	misc := map[string]interface{}{
		"retry":           "false",
		"partner_params":  partnerParams,
		"file_name":       uploadFileName,
		"smile_client_id": c.partnerID,
		"callback_url":    callback,
		"userData":        defaultUserData(),
	}
	env.Apply(misc)

	return map[string]interface{}{
		"package_information": map[string]interface{}{
			"apiVersion": smileid.APIVersion{MajorVersion: 2, MinorVersion: 0, BuildNumber: 0},
			"language":   smileid.SourceSDK,
		},
		"misc_information":   misc,
		"id_info":            idInfo,
		"images":             imagePayload(images),
		"server_information": serverInfo,
	}, nil
}

// defaultUserData is the fixed profile sub-object the upload pipeline
// expects in every manifest.
func defaultUserData() map[string]interface{} {
	return map[string]interface{}{
		"isVerifiedProcess": false,
		"name":              "",
		"fbUserID":          "",
		"firstName":         "Bill",
		"lastName":          "",
		"gender":            "",
		"email":             "",
		"phone":             "",
		"countryCode":       "+",
		"countryName":       "",
	}
}

// imagePayload describes the submitted images inside the manifest:
// file-backed entries reference their archive member by name, inline
// entries carry the base64 payload directly.
func imagePayload(images []protocol.Image) []map[string]interface{} {
	descriptors := make([]map[string]interface{}, 0, len(images))
	for _, img := range images {
		if img.ImageTypeID.IsFile() {
			descriptors = append(descriptors, map[string]interface{}{
				"image_type_id": img.ImageTypeID,
				"image":         "",
				"file_name":     filepath.Base(img.Image),
			})
		} else {
			descriptors = append(descriptors, map[string]interface{}{
				"image_type_id": img.ImageTypeID,
				"image":         img.Image,
				"file_name":     "",
			})
		}
	}
	return descriptors
}

// bundleEntries lists the archive members: the manifest plus every
// file-backed image.
func bundleEntries(manifest map[string]interface{}, images []protocol.Image) []archive.Entry {
	data, _ := json.MarshalIndent(manifest, "", "  ")
	entries := []archive.Entry{{Name: "info.json", Data: data}}
	for _, img := range images {
		if img.ImageTypeID.IsFile() {
			entries = append(entries, archive.Entry{
				Name: filepath.Base(img.Image),
				Path: img.Image,
			})
		}
	}
	return entries
}

// normalizeIDInfo defaults the entered flag without mutating the caller's
// map. A nil map normalizes to {"entered": "false"}.
func normalizeIDInfo(idInfo protocol.IDInfo) protocol.IDInfo {
	normalized := protocol.IDInfo{}
	for k, v := range idInfo {
		normalized[k] = v
	}
	if normalized[protocol.FieldEntered] == "" {
		normalized[protocol.FieldEntered] = "false"
	}
	return normalized
}

// validateEnrollWithID guards the biometric KYC flow: the job needs either
// an ID card image or entered id information to compare the selfie
// against.
func validateEnrollWithID(images []protocol.Image, idInfo protocol.IDInfo) error {
	for _, img := range images {
		if img.ImageTypeID.IsIDCard() {
			return nil
		}
	}
	if idInfo.Entered() {
		return nil
	}
	return &protocol.InvalidArgumentError{
		Message: fmt.Sprintf("you are attempting to complete a job type %d without providing an id card image or id info", protocol.JobTypeBiometricKYC),
	}
}
