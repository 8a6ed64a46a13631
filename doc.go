// Package glass attaches translucent glass-effect surfaces to native
// windows and manages their lifecycle.
//
// # Overview
//
// glass is a thin lifecycle manager: it decides which native effect surface
// to create, configures it, and tracks it by an opaque id. It never renders
// anything itself; the native UI toolkit does all drawing.
//
// # Quick Start
//
//	import "github.com/glasskit/glass"
//
//	mgr := glass.New()
//	if !mgr.IsSupported() {
//	    // older OS: surfaces still work, via the fallback material
//	}
//
//	// view is the host window's content view (NSView* on macOS)
//	id, err := mgr.AddSurface(view, glass.Options{
//	    CornerRadius: 16,
//	    TintColor:    "#FF0000AA",
//	})
//
//	mgr.SetVariant(id, glass.VariantSidebar)
//	mgr.RemoveSurface(id)
//
// # Platform Support
//
//   - macOS 15+ (Sequoia): the preferred NSGlassEffectView material
//   - earlier macOS: falls back to NSVisualEffectView
//   - other platforms: every operation reports ErrUnsupportedPlatform
//
// # Architecture
//
// The library is organized into:
//   - Public API: Manager, Options, Variant, RGBA, Presets
//   - toolkit: the native-toolkit interface and its registry
//   - toolkit/cocoa: the darwin implementation (cgo)
//
// # Threading
//
// Native toolkits are not reentrant; all surface-tree mutation must happen
// on the UI thread. AddSurface verifies this at call time. See Manager for
// the exact contract.
package glass

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
