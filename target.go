package platform

import (
	"runtime"
	"strings"
)

// OS and Arch are the compilation target, fixed at build time.
const (
	OS   = runtime.GOOS
	Arch = runtime.GOARCH
)

// Operating systems. Each is an exact GOOS match, so IsMacOS is false for
// ios builds even though the darwin build tag is satisfied there.
const (
	IsIOS       = OS == "ios"
	IsAndroid   = OS == "android"
	IsWindows   = OS == "windows"
	IsMacOS     = OS == "darwin"
	IsLinux     = OS == "linux"
	IsFreeBSD   = OS == "freebsd"
	IsOpenBSD   = OS == "openbsd"
	IsDragonFly = OS == "dragonfly"
	IsNetBSD    = OS == "netbsd"
	IsJS        = OS == "js"
	IsWASIP1    = OS == "wasip1"
	IsSolaris   = OS == "solaris"
	IsIllumos   = OS == "illumos"
	IsAIX       = OS == "aix"
	IsPlan9     = OS == "plan9"
)

// IsUnix mirrors the toolchain's "unix" build constraint.
const IsUnix = IsAIX || IsAndroid || IsMacOS || IsDragonFly || IsFreeBSD ||
	OS == "hurd" || IsIllumos || IsIOS || IsLinux || IsNetBSD || IsOpenBSD || IsSolaris

// Architectures.
const (
	IsWasm    = Arch == "wasm"
	IsAMD64   = Arch == "amd64"
	IsARM64   = Arch == "arm64"
	IsI386    = Arch == "386"
	IsARM     = Arch == "arm"
	IsRISCV64 = Arch == "riscv64"
)

// Kind tells which axis of the build a Target describes.
type Kind int

const (
	KindOS Kind = iota
	KindFamily
	KindArch
)

func (k Kind) String() string {
	switch k {
	case KindOS:
		return "os"
	case KindFamily:
		return "family"
	case KindArch:
		return "arch"
	default:
		return "unknown"
	}
}

// Target is a recognized compilation target. Active reports whether this
// build was compiled for it.
type Target struct {
	Name   string
	Kind   Kind
	Active bool
}

var targets = [...]Target{
	{"ios", KindOS, IsIOS},
	{"android", KindOS, IsAndroid},
	{"windows", KindOS, IsWindows},
	{"macos", KindOS, IsMacOS},
	{"linux", KindOS, IsLinux},
	{"freebsd", KindOS, IsFreeBSD},
	{"openbsd", KindOS, IsOpenBSD},
	{"dragonfly", KindOS, IsDragonFly},
	{"netbsd", KindOS, IsNetBSD},
	{"js", KindOS, IsJS},
	{"wasip1", KindOS, IsWASIP1},
	{"solaris", KindOS, IsSolaris},
	{"illumos", KindOS, IsIllumos},
	{"aix", KindOS, IsAIX},
	{"plan9", KindOS, IsPlan9},
	{"unix", KindFamily, IsUnix},
	{"wasm", KindArch, IsWasm},
	{"amd64", KindArch, IsAMD64},
	{"arm64", KindArch, IsARM64},
	{"386", KindArch, IsI386},
	{"arm", KindArch, IsARM},
	{"riscv64", KindArch, IsRISCV64},
}

// aliases maps alternate spellings onto canonical target names.
var aliases = map[string]string{
	"darwin": "macos",
	"wasm32": "wasm",
	"x86_64": "amd64",
	"x86":    "386",
	"i386":   "386",
}

// Targets returns every recognized target in canonical order: operating
// systems, then the unix family, then architectures.
func Targets() []Target {
	out := make([]Target, len(targets))
	copy(out, targets[:])
	return out
}

// Current returns the targets this build was compiled for.
func Current() []Target {
	var out []Target
	for _, t := range targets {
		if t.Active {
			out = append(out, t)
		}
	}
	return out
}

// Lookup finds a target by name, ignoring case and accepting common aliases
// such as "darwin" and "wasm32".
func Lookup(name string) (Target, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	for _, t := range targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

// Info describes the compiled target.
func Info() map[string]string {
	return map[string]string{
		"os":           OS,
		"architecture": Arch,
		"go_version":   runtime.Version(),
		"compiler":     runtime.Compiler,
	}
}
