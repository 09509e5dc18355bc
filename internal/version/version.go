package version

import "github.com/fatih/color"

// Version information for the phpfmt CLI.
// These variables can be overridden at build time via -ldflags.

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders v with each numeric component in its own colour. Anything
// that is not a MAJOR.MINOR.PATCH[-suffix] triple is returned unchanged.
// Colouring follows color.NoColor.
func Colored(v string) string {
	core, suffix := v, ""
	for i := 0; i < len(v); i++ {
		if v[i] == '-' || v[i] == '+' {
			core, suffix = v[:i], v[i:]
			break
		}
	}
	parts := splitDots(core)
	if len(parts) != 3 {
		return v
	}
	return versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2]) + suffix
}

func splitDots(s string) []string {
	var parts []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '.' {
			if i == start {
				return nil
			}
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return parts
}
