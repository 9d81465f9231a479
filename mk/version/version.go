// Package version records ndnwire version information.
package version

import (
	"fmt"
	"runtime/debug"
	"strconv"
	"time"
)

// Variables replaced via -ldflags -X.
var (
	commit string
	date   string
	dirty  string
)

// Version records ndnwire version information.
type Version struct {
	Version string    `json:"version"`
	Commit  string    `json:"commit"`
	Date    time.Time `json:"date"`
	Dirty   bool      `json:"dirty"`
}

func (v Version) String() string {
	return v.Version
}

// Get returns version information.
// Without ldflags, it falls back to the module version recorded by "go install".
func Get() Version {
	return parse(commit, date, dirty, debug.ReadBuildInfo)
}

func parse(commit, date, dirty string, readBuildInfo func() (*debug.BuildInfo, bool)) (v Version) {
	dt, e := strconv.ParseInt(date, 10, 64)
	if e != nil || len(commit) != 40 {
		v.Version, v.Commit, v.Dirty = "development", "unknown", true
		if bi, ok := readBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			v.Version, v.Dirty = bi.Main.Version, false
		}
		return
	}

	v.Commit, v.Date, v.Dirty = commit, time.Unix(dt, 0).UTC(), dirty != ""
	dirtySuffix := ""
	if v.Dirty {
		dirtySuffix = "-dirty"
	}
	v.Version = fmt.Sprintf("v0.0.0-%s-%s%s", v.Date.Format("20060102150405"), commit[:12], dirtySuffix)
	return
}
