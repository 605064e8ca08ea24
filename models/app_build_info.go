// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// AppBuildInfo carries build-time metadata injected with -ldflags. The
// server reports it on GET /api/version and the client shows it in its
// about window.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values are reported as
// "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNA(buildVersion),
		buildDate:    orNA(buildDate),
		buildCommit:  orNA(buildCommit),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// BuildVersion returns the release version.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the commit hash of the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

type buildInfoJSON struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// MarshalJSON implements [json.Marshaler].
func (a AppBuildInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(buildInfoJSON{Version: a.buildVersion, Date: a.buildDate, Commit: a.buildCommit})
}

// UnmarshalJSON implements [json.Unmarshaler].
func (a *AppBuildInfo) UnmarshalJSON(data []byte) error {
	var v buildInfoJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = NewAppBuildInfo(v.Version, v.Date, v.Commit)
	return nil
}
