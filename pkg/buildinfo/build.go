package buildinfo

import (
	"runtime"
	"runtime/debug"
)

// Unknown replaces values the binary does not carry.
const Unknown = "unknown"

// Build describes the running binary.
type Build struct {
	Module    string `json:"module"`
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
	Revision  string `json:"revision"`
	Time      string `json:"time"`
	Modified  bool   `json:"modified"`
}

// Read returns the build information embedded by the Go toolchain. Missing
// values are reported as Unknown.
func Read() Build {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Build{
			Module:    Unknown,
			Version:   Unknown,
			GoVersion: runtime.Version(),
			Revision:  Unknown,
			Time:      Unknown,
		}
	}
	return fromDebug(info)
}

func fromDebug(info *debug.BuildInfo) Build {
	b := Build{
		Module:    orUnknown(info.Main.Path),
		Version:   Unknown,
		GoVersion: orUnknown(info.GoVersion),
		Revision:  Unknown,
		Time:      Unknown,
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		b.Version = v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			b.Revision = orUnknown(s.Value)
		case "vcs.time":
			b.Time = orUnknown(s.Value)
		case "vcs.modified":
			b.Modified = s.Value == "true"
		}
	}
	return b
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
