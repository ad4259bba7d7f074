// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const unknownBuildValue = "N/A"

// AppBuildInfo is the build metadata injected by linker flags and reported by
// the version endpoint and the CLI.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo fills every empty value with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	orUnknown := func(v string) string {
		if v == "" {
			return unknownBuildValue
		}
		return v
	}
	return AppBuildInfo{Version: orUnknown(version), Date: orUnknown(date), Commit: orUnknown(commit)}
}

// Known reports whether a version was injected at build time.
func (a AppBuildInfo) Known() bool {
	return a.Version != "" && a.Version != unknownBuildValue
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.Version, a.Date, a.Commit)
}
