// Copyright 2026 The glasskit Authors
// SPDX-License-Identifier: MIT

//go:build darwin && cgo

package cocoa

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework QuartzCore -lobjc

#import <AppKit/AppKit.h>
#import <QuartzCore/QuartzCore.h>
#import <objc/message.h>
#import <objc/runtime.h>
#include <stdbool.h>
#include <stdlib.h>

static bool glasskit_class_exists(const char *name) {
	return objc_getClass(name) != NULL;
}

static void *glasskit_create_surface(const char *name, double x, double y, double w, double h) {
	Class cls = objc_getClass(name);
	if (cls == Nil) {
		return NULL;
	}
	NSView *view = [[cls alloc] initWithFrame:NSMakeRect(x, y, w, h)];
	return (void *)view;
}

static void glasskit_bounds(void *view, double *x, double *y, double *w, double *h) {
	NSRect b = [(NSView *)view bounds];
	*x = b.origin.x;
	*y = b.origin.y;
	*w = b.size.width;
	*h = b.size.height;
}

static void glasskit_attach_child(void *parent, void *child, void *below) {
	if (below != NULL) {
		[(NSView *)parent addSubview:(NSView *)child
		                  positioned:NSWindowAbove
		                  relativeTo:(NSView *)below];
	} else {
		[(NSView *)parent addSubview:(NSView *)child
		                  positioned:NSWindowBelow
		                  relativeTo:nil];
	}
}

static void glasskit_detach(void *view) {
	// removeFromSuperview is a no-op when the view has no superview.
	[(NSView *)view removeFromSuperview];
}

static void glasskit_autoresize(void *view) {
	[(NSView *)view setAutoresizingMask:(NSViewWidthSizable | NSViewHeightSizable)];
}

static void glasskit_enable_layer(void *view) {
	[(NSView *)view setWantsLayer:YES];
}

static void glasskit_set_corner_radius(void *view, double radius) {
	CALayer *layer = [(NSView *)view layer];
	if (layer != nil) {
		[layer setCornerRadius:radius];
	}
}

static void glasskit_set_layer_clip(void *view, bool clip) {
	CALayer *layer = [(NSView *)view layer];
	if (layer != nil) {
		[layer setMasksToBounds:(clip ? YES : NO)];
	}
}

static void glasskit_set_layer_background(void *view, double r, double g, double b, double a) {
	CALayer *layer = [(NSView *)view layer];
	if (layer != nil) {
		NSColor *color = [NSColor colorWithSRGBRed:r green:g blue:b alpha:a];
		[layer setBackgroundColor:[color CGColor]];
	}
}

static bool glasskit_responds_to(void *obj, const char *sel) {
	return [(id)obj respondsToSelector:sel_registerName(sel)];
}

static void glasskit_invoke_int_setter(void *obj, const char *sel, long long value) {
	((void (*)(id, SEL, long long))objc_msgSend)((id)obj, sel_registerName(sel), value);
}

static void glasskit_invoke_color_setter(void *obj, const char *sel, void *color) {
	((void (*)(id, SEL, id))objc_msgSend)((id)obj, sel_registerName(sel), (id)color);
}

static void *glasskit_make_color(double r, double g, double b, double a) {
	NSColor *color = [NSColor colorWithSRGBRed:r green:g blue:b alpha:a];
	return (void *)[color retain];
}

static void *glasskit_window_background_color(void) {
	return (void *)[[NSColor windowBackgroundColor] retain];
}

static bool glasskit_is_main_thread(void) {
	return [NSThread isMainThread];
}

static void *glasskit_content_view(void *window) {
	return (void *)[(NSWindow *)window contentView];
}
*/
import "C"

import (
	"unsafe"

	"github.com/glasskit/glass/toolkit"
)

func init() {
	toolkit.Register("cocoa", 100, func() toolkit.Toolkit { return Toolkit{} }, nil)
}

// Toolkit is the AppKit-backed toolkit. The zero value is ready to use; all
// state lives in the Objective-C runtime.
type Toolkit struct{}

// Name implements toolkit.Toolkit.
func (Toolkit) Name() string { return "cocoa" }

// ClassExists implements toolkit.Toolkit.
func (Toolkit) ClassExists(name string) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return bool(C.glasskit_class_exists(cname))
}

// CreateSurface implements toolkit.Toolkit. The view is created with an
// initWithFrame: constructor; ownership passes to the view tree on attach.
func (Toolkit) CreateSurface(className string, frame toolkit.Frame) toolkit.Handle {
	cname := C.CString(className)
	defer C.free(unsafe.Pointer(cname))
	v := C.glasskit_create_surface(cname,
		C.double(frame.X), C.double(frame.Y),
		C.double(frame.Width), C.double(frame.Height))
	return toolkit.Handle(uintptr(v))
}

// Bounds implements toolkit.Toolkit.
func (Toolkit) Bounds(view toolkit.Handle) toolkit.Frame {
	var x, y, w, h C.double
	C.glasskit_bounds(unsafe.Pointer(uintptr(view)), &x, &y, &w, &h)
	return toolkit.Frame{X: float64(x), Y: float64(y), Width: float64(w), Height: float64(h)}
}

// AttachChild implements toolkit.Toolkit.
func (Toolkit) AttachChild(parent, child, below toolkit.Handle) {
	C.glasskit_attach_child(unsafe.Pointer(uintptr(parent)), unsafe.Pointer(uintptr(child)), unsafe.Pointer(uintptr(below)))
}

// DetachFromParent implements toolkit.Toolkit.
func (Toolkit) DetachFromParent(view toolkit.Handle) {
	C.glasskit_detach(unsafe.Pointer(uintptr(view)))
}

// AutoresizeWithParent implements toolkit.Toolkit.
func (Toolkit) AutoresizeWithParent(view toolkit.Handle) {
	C.glasskit_autoresize(unsafe.Pointer(uintptr(view)))
}

// EnableLayer implements toolkit.Toolkit.
func (Toolkit) EnableLayer(view toolkit.Handle) {
	C.glasskit_enable_layer(unsafe.Pointer(uintptr(view)))
}

// SetLayerCornerRadius implements toolkit.Toolkit.
func (Toolkit) SetLayerCornerRadius(view toolkit.Handle, radius float64) {
	C.glasskit_set_corner_radius(unsafe.Pointer(uintptr(view)), C.double(radius))
}

// SetLayerClip implements toolkit.Toolkit.
func (Toolkit) SetLayerClip(view toolkit.Handle, clip bool) {
	C.glasskit_set_layer_clip(unsafe.Pointer(uintptr(view)), C.bool(clip))
}

// SetLayerBackgroundColor implements toolkit.Toolkit.
func (Toolkit) SetLayerBackgroundColor(view toolkit.Handle, r, g, b, a float64) {
	C.glasskit_set_layer_background(unsafe.Pointer(uintptr(view)),
		C.double(r), C.double(g), C.double(b), C.double(a))
}

// RespondsTo implements toolkit.Toolkit.
func (Toolkit) RespondsTo(obj toolkit.Handle, selector string) bool {
	csel := C.CString(selector)
	defer C.free(unsafe.Pointer(csel))
	return bool(C.glasskit_responds_to(unsafe.Pointer(uintptr(obj)), csel))
}

// InvokeIntSetter implements toolkit.Toolkit.
func (Toolkit) InvokeIntSetter(obj toolkit.Handle, selector string, value int64) {
	csel := C.CString(selector)
	defer C.free(unsafe.Pointer(csel))
	C.glasskit_invoke_int_setter(unsafe.Pointer(uintptr(obj)), csel, C.longlong(value))
}

// InvokeColorSetter implements toolkit.Toolkit.
func (Toolkit) InvokeColorSetter(obj toolkit.Handle, selector string, color toolkit.Handle) {
	csel := C.CString(selector)
	defer C.free(unsafe.Pointer(csel))
	C.glasskit_invoke_color_setter(unsafe.Pointer(uintptr(obj)), csel, unsafe.Pointer(uintptr(color)))
}

// MakeColor implements toolkit.Toolkit. Components are interpreted in the
// sRGB color space.
func (Toolkit) MakeColor(r, g, b, a float64) toolkit.Handle {
	return toolkit.Handle(uintptr(C.glasskit_make_color(
		C.double(r), C.double(g), C.double(b), C.double(a))))
}

// WindowBackgroundColor implements toolkit.Toolkit.
func (Toolkit) WindowBackgroundColor() toolkit.Handle {
	return toolkit.Handle(uintptr(C.glasskit_window_background_color()))
}

// CurrentThreadIsUIThread implements toolkit.Toolkit. AppKit requires all
// view-tree mutation on the main thread.
func (Toolkit) CurrentThreadIsUIThread() bool {
	return bool(C.glasskit_is_main_thread())
}

// ContentView returns the content view of an NSWindow. Hosts that hold an
// NSWindow pointer (e.g. from glfw's GetCocoaWindow) use this to obtain the
// view AddSurface expects.
func ContentView(nsWindow unsafe.Pointer) unsafe.Pointer {
	if nsWindow == nil {
		return nil
	}
	return C.glasskit_content_view(nsWindow)
}
