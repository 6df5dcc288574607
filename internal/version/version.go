package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Заполняются через -ldflags "-X railsim/internal/version.Version=..."
var (
	Version     string
	BuildCommit string
	BuildDate   string // RFC 3339 или YYYY-MM-DD
)

// Info - сведения о сборке.
type Info struct {
	Version  string
	Commit   string
	Date     string
	Modified bool   // собрано из грязного дерева
	Source   string // "ldflags", "buildinfo" или "unknown"
}

// readBuildInfo подменяется в тестах.
var readBuildInfo = debug.ReadBuildInfo

// Get собирает сведения о сборке: сначала из ldflags, недостающее - из VCS-меток
// в debug.BuildInfo (go build из git-дерева кладет их туда сам).
func Get() Info {
	info := Info{
		Version: Version,
		Commit:  BuildCommit,
		Date:    BuildDate,
		Source:  "ldflags",
	}
	if info.Version != "" && info.Commit != "" {
		return info
	}

	bi, ok := readBuildInfo()
	if !ok {
		if info.Version == "" && info.Commit == "" {
			info.Source = "unknown"
		}
		return info
	}

	info.Source = "buildinfo"
	if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// ShortCommit - первые 12 символов хеша.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 12 {
		return i.Commit[:12]
	}
	return i.Commit
}

// String returns a human-readable build string.
func (i Info) String() string {
	var sb strings.Builder
	sb.WriteString("railsim ")
	sb.WriteString(coalesce(i.Version, "dev"))
	fmt.Fprintf(&sb, " commit[%s]", coalesce(i.ShortCommit(), "unknown"))
	if i.Modified {
		sb.WriteString("+dirty")
	}
	fmt.Fprintf(&sb, " date[%s]", coalesce(i.Date, "unknown"))
	return sb.String()
}

// String - короткая форма для лога при старте.
func String() string {
	return Get().String()
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
