// Package platform selects between platform-specific alternatives inline,
// based on the operating system or architecture the program is compiled for.
//
//	greeting := platform.Select("unknown").
//		IOS("ios").
//		Android("android").
//		Windows("windows").
//		MacOS("macos").
//		Linux("linux").
//		Wasm("wasm").
//		Get()
//
// Every selector tests a constant derived from runtime.GOOS or
// runtime.GOARCH. Once inlined, the compiler folds the test and drops the
// branch that does not apply, so a chain costs nothing at run time.
//
// Arguments are still evaluated. When an alternative is expensive, select
// between functions instead and call the result:
//
//	load := platform.Select(loadDefault).Windows(loadRegistry).Get()
//	cfg := load()
package platform

// Value carries a value through a chain of selectors.
type Value[T any] struct {
	v T
}

// Select starts a chain with v as the value used when no selector matches.
func Select[T any](v T) Value[T] {
	return Value[T]{v: v}
}

// Get returns the selected value.
func (p Value[T]) Get() T {
	return p.v
}

// On replaces the value with alt if the build targets t.
func (p Value[T]) On(t Target, alt T) Value[T] {
	return Value[T]{v: pick(t.Active, p.v, alt)}
}

func pick[T any](match bool, v, alt T) T {
	if match {
		return alt
	}
	return v
}

// IOS selects alt for GOOS=ios.
func (p Value[T]) IOS(alt T) Value[T] { return Value[T]{pick(IsIOS, p.v, alt)} }

// Android selects alt for GOOS=android.
func (p Value[T]) Android(alt T) Value[T] { return Value[T]{pick(IsAndroid, p.v, alt)} }

// Windows selects alt for GOOS=windows.
func (p Value[T]) Windows(alt T) Value[T] { return Value[T]{pick(IsWindows, p.v, alt)} }

// MacOS selects alt for GOOS=darwin. iOS builds do not match.
func (p Value[T]) MacOS(alt T) Value[T] { return Value[T]{pick(IsMacOS, p.v, alt)} }

// Linux selects alt for GOOS=linux. Android builds do not match.
func (p Value[T]) Linux(alt T) Value[T] { return Value[T]{pick(IsLinux, p.v, alt)} }

// FreeBSD selects alt for GOOS=freebsd.
func (p Value[T]) FreeBSD(alt T) Value[T] { return Value[T]{pick(IsFreeBSD, p.v, alt)} }

// OpenBSD selects alt for GOOS=openbsd.
func (p Value[T]) OpenBSD(alt T) Value[T] { return Value[T]{pick(IsOpenBSD, p.v, alt)} }

// DragonFly selects alt for GOOS=dragonfly.
func (p Value[T]) DragonFly(alt T) Value[T] { return Value[T]{pick(IsDragonFly, p.v, alt)} }

// NetBSD selects alt for GOOS=netbsd.
func (p Value[T]) NetBSD(alt T) Value[T] { return Value[T]{pick(IsNetBSD, p.v, alt)} }

// Solaris selects alt for GOOS=solaris.
func (p Value[T]) Solaris(alt T) Value[T] { return Value[T]{pick(IsSolaris, p.v, alt)} }

// Illumos selects alt for GOOS=illumos.
func (p Value[T]) Illumos(alt T) Value[T] { return Value[T]{pick(IsIllumos, p.v, alt)} }

// AIX selects alt for GOOS=aix.
func (p Value[T]) AIX(alt T) Value[T] { return Value[T]{pick(IsAIX, p.v, alt)} }

// Plan9 selects alt for GOOS=plan9.
func (p Value[T]) Plan9(alt T) Value[T] { return Value[T]{pick(IsPlan9, p.v, alt)} }

// JS selects alt for GOOS=js, the browser WebAssembly target.
func (p Value[T]) JS(alt T) Value[T] { return Value[T]{pick(IsJS, p.v, alt)} }

// WASIP1 selects alt for GOOS=wasip1.
func (p Value[T]) WASIP1(alt T) Value[T] { return Value[T]{pick(IsWASIP1, p.v, alt)} }

// Unix selects alt for any system satisfying the "unix" build constraint.
func (p Value[T]) Unix(alt T) Value[T] { return Value[T]{pick(IsUnix, p.v, alt)} }

// Wasm selects alt for GOARCH=wasm, whatever the operating system.
func (p Value[T]) Wasm(alt T) Value[T] { return Value[T]{pick(IsWasm, p.v, alt)} }

// AMD64 selects alt for GOARCH=amd64.
func (p Value[T]) AMD64(alt T) Value[T] { return Value[T]{pick(IsAMD64, p.v, alt)} }

// ARM64 selects alt for GOARCH=arm64.
func (p Value[T]) ARM64(alt T) Value[T] { return Value[T]{pick(IsARM64, p.v, alt)} }

// I386 selects alt for GOARCH=386.
func (p Value[T]) I386(alt T) Value[T] { return Value[T]{pick(IsI386, p.v, alt)} }

// ARM selects alt for GOARCH=arm.
func (p Value[T]) ARM(alt T) Value[T] { return Value[T]{pick(IsARM, p.v, alt)} }

// RISCV64 selects alt for GOARCH=riscv64.
func (p Value[T]) RISCV64(alt T) Value[T] { return Value[T]{pick(IsRISCV64, p.v, alt)} }
