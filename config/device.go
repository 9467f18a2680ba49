package config

import "regexp"

var compactUserAgent = regexp.MustCompile(`(?i)Mobi|Android|iPhone|iPad`)

// CompactUserAgent reports whether a browser user agent belongs to a
// touch-first device.
func CompactUserAgent(ua string) bool {
	return compactUserAgent.MatchString(ua)
}

// CompactDevice resolves the compact-device classification, consulting the
// host platform when the mode is auto.
func (r Runtime) CompactDevice() bool {
	switch r.Compact {
	case CompactOn:
		return true
	case CompactOff:
		return false
	}
	return detectCompact()
}
