// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package version

import "fmt"

// Major, Minor, Patch and Meta identify the current release of this module.
const (
	Major = 0
	Minor = 1
	Patch = 0
	Meta  = "unstable"
)

// gitCommit is set by the build system via -ldflags; empty in dev builds.
var gitCommit string

// String renders the full version string, e.g. "0.1.0-unstable-abcdef12".
func String() string {
	v := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
	if Meta != "" {
		v += "-" + Meta
	}
	if gitCommit != "" && len(gitCommit) >= 8 {
		v += "-" + gitCommit[:8]
	}
	return v
}
