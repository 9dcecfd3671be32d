// Package synth turns a certified engine installation and a packaging
// request into an ordered BuildCookRun invocation and a launcher script.
package synth

import (
	"strings"

	"github.com/Aman-CERP/uecheck/internal/errors"
)

// Platform is a packaging target.
type Platform string

const (
	Android Platform = "Android"
	Linux   Platform = "Linux"
)

// Platforms lists every supported target.
var Platforms = []Platform{Android, Linux}

// ParsePlatform resolves a platform name case-insensitively. An empty name
// selects Android.
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "android":
		return Android, nil
	case "linux":
		return Linux, nil
	default:
		return "", errors.UnsupportedPlatform(name)
	}
}

func (p Platform) String() string {
	return string(p)
}
