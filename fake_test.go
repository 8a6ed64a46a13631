// Copyright 2026 The glasskit Authors
// SPDX-License-Identifier: MIT

package glass

import (
	"github.com/glasskit/glass/toolkit"
)

// fakeToolkit is an in-memory toolkit.Toolkit that records every call.
// Handles are allocated from a counter; handle 0 stays invalid.
type fakeToolkit struct {
	classes    map[string]bool // native classes present in the "process"
	selectors  map[string]bool // selectors surfaces respond to
	failCreate map[string]bool // classes whose constructor returns 0
	uiThread   bool

	nextHandle toolkit.Handle

	created     []createCall
	attached    []attachCall
	detached    []toolkit.Handle
	autoresized []toolkit.Handle
	intCalls    []intCall
	colorCalls  []colorCall
	layers      map[toolkit.Handle]*layerState
	colors      map[toolkit.Handle][4]float64
}

type createCall struct {
	class  string
	handle toolkit.Handle
}

type attachCall struct {
	parent, child, below toolkit.Handle
}

type intCall struct {
	obj      toolkit.Handle
	selector string
	value    int64
}

type colorCall struct {
	obj      toolkit.Handle
	selector string
	color    toolkit.Handle
}

type layerState struct {
	enabled bool
	radius  float64
	clip    bool
	bg      [4]float64
	bgSet   bool
}

const fakeWindowBackground toolkit.Handle = 0xB6

func newFakeToolkit() *fakeToolkit {
	return &fakeToolkit{
		classes: map[string]bool{
			classGlassEffect:  true,
			classVisualEffect: true,
			classBox:          true,
		},
		selectors:  make(map[string]bool),
		failCreate: make(map[string]bool),
		uiThread:   true,
		nextHandle: 0x100,
		layers:     make(map[toolkit.Handle]*layerState),
		colors:     make(map[toolkit.Handle][4]float64),
	}
}

func (f *fakeToolkit) alloc() toolkit.Handle {
	f.nextHandle++
	return f.nextHandle
}

func (f *fakeToolkit) layer(view toolkit.Handle) *layerState {
	l, ok := f.layers[view]
	if !ok {
		l = &layerState{}
		f.layers[view] = l
	}
	return l
}

// createdOf returns the handles created for the given class, in order.
func (f *fakeToolkit) createdOf(class string) []toolkit.Handle {
	var out []toolkit.Handle
	for _, c := range f.created {
		if c.class == class {
			out = append(out, c.handle)
		}
	}
	return out
}

func (f *fakeToolkit) intCallsOn(obj toolkit.Handle) map[string]int64 {
	out := make(map[string]int64)
	for _, c := range f.intCalls {
		if c.obj == obj {
			out[c.selector] = c.value
		}
	}
	return out
}

func (f *fakeToolkit) Name() string { return "fake" }

func (f *fakeToolkit) ClassExists(name string) bool { return f.classes[name] }

func (f *fakeToolkit) CreateSurface(className string, frame toolkit.Frame) toolkit.Handle {
	if !f.classes[className] || f.failCreate[className] {
		return 0
	}
	h := f.alloc()
	f.created = append(f.created, createCall{class: className, handle: h})
	return h
}

func (f *fakeToolkit) Bounds(view toolkit.Handle) toolkit.Frame {
	return toolkit.Frame{Width: 800, Height: 600}
}

func (f *fakeToolkit) AttachChild(parent, child, below toolkit.Handle) {
	f.attached = append(f.attached, attachCall{parent: parent, child: child, below: below})
}

func (f *fakeToolkit) DetachFromParent(view toolkit.Handle) {
	f.detached = append(f.detached, view)
}

func (f *fakeToolkit) AutoresizeWithParent(view toolkit.Handle) {
	f.autoresized = append(f.autoresized, view)
}

func (f *fakeToolkit) EnableLayer(view toolkit.Handle) {
	f.layer(view).enabled = true
}

func (f *fakeToolkit) SetLayerCornerRadius(view toolkit.Handle, radius float64) {
	f.layer(view).radius = radius
}

func (f *fakeToolkit) SetLayerClip(view toolkit.Handle, clip bool) {
	f.layer(view).clip = clip
}

func (f *fakeToolkit) SetLayerBackgroundColor(view toolkit.Handle, r, g, b, a float64) {
	l := f.layer(view)
	l.bg = [4]float64{r, g, b, a}
	l.bgSet = true
}

func (f *fakeToolkit) RespondsTo(obj toolkit.Handle, selector string) bool {
	return f.selectors[selector]
}

func (f *fakeToolkit) InvokeIntSetter(obj toolkit.Handle, selector string, value int64) {
	f.intCalls = append(f.intCalls, intCall{obj: obj, selector: selector, value: value})
}

func (f *fakeToolkit) InvokeColorSetter(obj toolkit.Handle, selector string, color toolkit.Handle) {
	f.colorCalls = append(f.colorCalls, colorCall{obj: obj, selector: selector, color: color})
}

func (f *fakeToolkit) MakeColor(r, g, b, a float64) toolkit.Handle {
	h := f.alloc()
	f.colors[h] = [4]float64{r, g, b, a}
	return h
}

func (f *fakeToolkit) WindowBackgroundColor() toolkit.Handle { return fakeWindowBackground }

func (f *fakeToolkit) CurrentThreadIsUIThread() bool { return f.uiThread }

// Verify at compile time that the fake implements the interface.
var _ toolkit.Toolkit = (*fakeToolkit)(nil)
