// Copyright 2026 The glasskit Authors
// SPDX-License-Identifier: MIT

// Package toolkit defines the native UI toolkit interface that glass
// surfaces are built on, plus a registry for toolkit implementations.
//
// The manager in the root package never talks to a native toolkit directly;
// it issues every class lookup, surface construction, view-tree mutation,
// and dynamic setter call through the Toolkit interface. Implementations
// register themselves from init() (see toolkit/cocoa).
package toolkit

// Handle is an opaque reference to a native object (a view, layer, or
// color). The zero Handle means "no object" and is never a valid reference.
type Handle uintptr

// Frame is a rectangle in the toolkit's view coordinates.
type Frame struct {
	X, Y, Width, Height float64
}

// Toolkit is the set of native operations glass requires from a UI toolkit.
//
// Toolkits are NOT thread-safe and are not reentrant. Callers must confine
// all calls that mutate the view tree to the toolkit's UI thread; see
// CurrentThreadIsUIThread.
type Toolkit interface {
	// Name returns the toolkit identifier (e.g., "cocoa").
	Name() string

	// ClassExists reports whether the named native class is present in the
	// running process. Absence is a normal false, never an error.
	ClassExists(name string) bool

	// CreateSurface constructs an instance of the named view class sized to
	// frame. It returns 0 if the class is missing or construction fails.
	CreateSurface(className string, frame Frame) Handle

	// Bounds returns the bounds of the given view.
	Bounds(view Handle) Frame

	// AttachChild attaches child to parent. If below is non-zero, the child
	// is inserted directly above that sibling; otherwise the child is
	// placed at the bottom of the sibling z-order.
	AttachChild(parent, child, below Handle)

	// DetachFromParent removes the view from its parent. Detaching a view
	// whose parent is already gone is a no-op.
	DetachFromParent(view Handle)

	// AutoresizeWithParent makes the view track its parent's size.
	AutoresizeWithParent(view Handle)

	// EnableLayer gives the view a backing layer.
	EnableLayer(view Handle)

	// SetLayerCornerRadius sets the corner radius of the view's backing
	// layer. The view must be layer-backed.
	SetLayerCornerRadius(view Handle, radius float64)

	// SetLayerClip sets whether the view's backing layer clips sublayers
	// to its bounds.
	SetLayerClip(view Handle, clip bool)

	// SetLayerBackgroundColor sets the background color of the view's
	// backing layer. Components are in [0, 1].
	SetLayerBackgroundColor(view Handle, r, g, b, a float64)

	// RespondsTo reports whether the object recognizes the named selector.
	RespondsTo(obj Handle, selector string) bool

	// InvokeIntSetter invokes a single-argument integer setter selector,
	// e.g. "setMaterial:". The caller must have checked RespondsTo, or know
	// the selector is part of the class's documented interface.
	InvokeIntSetter(obj Handle, selector string, value int64)

	// InvokeColorSetter invokes a single-argument color setter selector,
	// e.g. "setTintColor:".
	InvokeColorSetter(obj Handle, selector string, color Handle)

	// MakeColor creates a toolkit color object. Components are in [0, 1].
	MakeColor(r, g, b, a float64) Handle

	// WindowBackgroundColor returns the toolkit's default window
	// background color.
	WindowBackgroundColor() Handle

	// CurrentThreadIsUIThread reports whether the calling goroutine is
	// running on the toolkit's designated UI thread.
	CurrentThreadIsUIThread() bool
}
