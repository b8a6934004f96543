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

import "net/url"

// Environment selects which Smile ID server a client talks to.
type Environment = string

const (
	// EnvironmentSandbox is the test server alias.
	EnvironmentSandbox Environment = "0"

	// EnvironmentProduction is the live server alias.
	EnvironmentProduction Environment = "1"
)

var serverMapping = map[string]string{
	EnvironmentSandbox:    "https://testapi.smileidentity.com/v1",
	EnvironmentProduction: "https://api.smileidentity.com/v1",
}

// ResolveServerURL maps an environment alias to its server base URL.
// A value that is already an absolute URL is used verbatim, which allows
// pointing a client at a mock or staging server. Unknown non-URL values
// are returned unchanged, matching the server-side contract.
func ResolveServerURL(sidServer string) string {
	if u, err := url.Parse(sidServer); err == nil && u.Scheme != "" && u.Host != "" {
		return sidServer
	}
	if mapped, ok := serverMapping[sidServer]; ok {
		return mapped
	}
	return sidServer
}
