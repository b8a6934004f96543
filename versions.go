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

// Package smileid provides version information for smileid-go.
package smileid

import (
	"strconv"
	"strings"
)

const (
	// Version is the current version of smileid-go
	Version = "1.1.0"

	// SourceSDK identifies this SDK to the Smile ID servers. It is sent as
	// the source_sdk field on every signed request.
	SourceSDK = "go"
)

// APIVersion is the version triple embedded in upload manifests.
type APIVersion struct {
	MajorVersion int `json:"majorVersion"`
	MinorVersion int `json:"minorVersion"`
	BuildNumber  int `json:"buildNumber"`
}

// VersionAsStruct splits Version into its major/minor/build components.
func VersionAsStruct() APIVersion {
	parts := strings.SplitN(Version, ".", 3)
	triple := [3]int{}
	for i := 0; i < len(parts) && i < 3; i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			continue
		}
		triple[i] = n
	}
	return APIVersion{
		MajorVersion: triple[0],
		MinorVersion: triple[1],
		BuildNumber:  triple[2],
	}
}
