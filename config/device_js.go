//go:build js

package config

import "syscall/js"

func detectCompact() bool {
	nav := js.Global().Get("navigator")
	if nav.IsUndefined() {
		return false
	}
	return CompactUserAgent(nav.Get("userAgent").String())
}
