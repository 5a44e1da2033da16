package platform

// IOS returns alt on ios builds and v otherwise.
func IOS[T any](v, alt T) T { return pick(IsIOS, v, alt) }

// Android returns alt on android builds and v otherwise.
func Android[T any](v, alt T) T { return pick(IsAndroid, v, alt) }

// Windows returns alt on windows builds and v otherwise.
func Windows[T any](v, alt T) T { return pick(IsWindows, v, alt) }

// MacOS returns alt on darwin builds and v otherwise.
func MacOS[T any](v, alt T) T { return pick(IsMacOS, v, alt) }

// Linux returns alt on linux builds and v otherwise.
func Linux[T any](v, alt T) T { return pick(IsLinux, v, alt) }

// FreeBSD returns alt on freebsd builds and v otherwise.
func FreeBSD[T any](v, alt T) T { return pick(IsFreeBSD, v, alt) }

// OpenBSD returns alt on openbsd builds and v otherwise.
func OpenBSD[T any](v, alt T) T { return pick(IsOpenBSD, v, alt) }

// DragonFly returns alt on dragonfly builds and v otherwise.
func DragonFly[T any](v, alt T) T { return pick(IsDragonFly, v, alt) }

// NetBSD returns alt on netbsd builds and v otherwise.
func NetBSD[T any](v, alt T) T { return pick(IsNetBSD, v, alt) }

// JS returns alt on js builds and v otherwise.
func JS[T any](v, alt T) T { return pick(IsJS, v, alt) }

// WASIP1 returns alt on wasip1 builds and v otherwise.
func WASIP1[T any](v, alt T) T { return pick(IsWASIP1, v, alt) }

// Solaris returns alt on solaris builds and v otherwise.
func Solaris[T any](v, alt T) T { return pick(IsSolaris, v, alt) }

// Illumos returns alt on illumos builds and v otherwise.
func Illumos[T any](v, alt T) T { return pick(IsIllumos, v, alt) }

// AIX returns alt on aix builds and v otherwise.
func AIX[T any](v, alt T) T { return pick(IsAIX, v, alt) }

// Plan9 returns alt on plan9 builds and v otherwise.
func Plan9[T any](v, alt T) T { return pick(IsPlan9, v, alt) }

// Unix returns alt on any build satisfying the unix constraint.
func Unix[T any](v, alt T) T { return pick(IsUnix, v, alt) }

// Wasm returns alt on GOARCH=wasm builds and v otherwise.
func Wasm[T any](v, alt T) T { return pick(IsWasm, v, alt) }

// AMD64 returns alt on amd64 builds and v otherwise.
func AMD64[T any](v, alt T) T { return pick(IsAMD64, v, alt) }

// ARM64 returns alt on arm64 builds and v otherwise.
func ARM64[T any](v, alt T) T { return pick(IsARM64, v, alt) }

// I386 returns alt on 386 builds and v otherwise.
func I386[T any](v, alt T) T { return pick(IsI386, v, alt) }

// ARM returns alt on arm builds and v otherwise.
func ARM[T any](v, alt T) T { return pick(IsARM, v, alt) }

// RISCV64 returns alt on riscv64 builds and v otherwise.
func RISCV64[T any](v, alt T) T { return pick(IsRISCV64, v, alt) }

// SelectByOS returns windows on Windows builds and unix everywhere else.
func SelectByOS[T any](unix, windows T) T {
	return pick(IsWindows, unix, windows)
}
