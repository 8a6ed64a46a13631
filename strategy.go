// Copyright 2026 The glasskit Authors
// SPDX-License-Identifier: MIT

package glass

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/glasskit/glass/toolkit"
)

// Native view classes the manager instantiates. The preferred material is
// probed at every AddSurface call; when it is missing, or its constructor
// returns nothing, the fallback material is used instead.
const (
	classGlassEffect  = "NSGlassEffectView"
	classVisualEffect = "NSVisualEffectView"
	classBox          = "NSBox"
)

// Fallback material defaults: behind-window blending, default material,
// active state.
const (
	fallbackBlendingBehindWindow = 0
	fallbackMaterialDefault      = 0
	fallbackStateActive          = 1
)

// NSBox configuration codes.
const (
	boxTypeCustom  = 4
	borderTypeNone = 0
)

// attachSurfaces builds and attaches the surface stack for one AddSurface
// call: an optional opaque backing surface, then the effect surface
// directly above it. On any creation failure it returns ErrCreationFailed
// and attaches nothing, so a failed call never leaves an orphaned backing
// surface in the host view.
func (m *Manager) attachSurfaces(root toolkit.Handle, opts Options) (toolkit.Handle, error) {
	frame := m.tk.Bounds(root)

	var backing toolkit.Handle
	if opts.Opaque {
		backing = m.createBackingSurface(frame)
		if backing == 0 {
			return 0, ErrCreationFailed
		}
	}

	surface := m.createEffectSurface(frame)
	if surface == 0 {
		return 0, ErrCreationFailed
	}

	if backing != 0 {
		m.tk.AttachChild(root, backing, 0)
	}
	m.tk.AttachChild(root, surface, backing)

	return surface, nil
}

// createEffectSurface constructs the effect surface: the preferred glass
// material when its class exists and constructs, the fallback material
// otherwise. Returns 0 only when the fallback constructor itself fails.
func (m *Manager) createEffectSurface(frame toolkit.Frame) toolkit.Handle {
	if m.tk.ClassExists(classGlassEffect) {
		if v := m.tk.CreateSurface(classGlassEffect, frame); v != 0 {
			m.tk.AutoresizeWithParent(v)
			Logger().Debug("glass: using preferred material", "class", classGlassEffect)
			return v
		}
		Logger().Warn("glass: preferred material failed to construct, falling back",
			"class", classGlassEffect)
	}

	v := m.tk.CreateSurface(classVisualEffect, frame)
	if v == 0 {
		return 0
	}
	m.tk.InvokeIntSetter(v, "setBlendingMode:", fallbackBlendingBehindWindow)
	m.tk.InvokeIntSetter(v, "setMaterial:", fallbackMaterialDefault)
	m.tk.InvokeIntSetter(v, "setState:", fallbackStateActive)
	m.tk.AutoresizeWithParent(v)
	Logger().Debug("glass: using fallback material", "class", classVisualEffect)
	return v
}

// createBackingSurface constructs the opaque backing surface: a borderless
// custom box filled with the toolkit's window-background color. Returns 0
// on construction failure.
func (m *Manager) createBackingSurface(frame toolkit.Frame) toolkit.Handle {
	v := m.tk.CreateSurface(classBox, frame)
	if v == 0 {
		return 0
	}
	m.tk.InvokeIntSetter(v, "setBoxType:", boxTypeCustom)
	m.tk.InvokeIntSetter(v, "setBorderType:", borderTypeNone)
	m.tk.InvokeColorSetter(v, "setFillColor:", m.tk.WindowBackgroundColor())
	m.tk.EnableLayer(v)
	m.tk.AutoresizeWithParent(v)
	return v
}

// applyConfig applies the shared configuration to an already-attached
// effect surface. Corner rounding and tint are best-effort: a missing
// setter degrades to the layer fallback, and only a malformed tint string
// produces an error. The surface stays attached either way.
func (m *Manager) applyConfig(surface toolkit.Handle, opts Options) error {
	if opts.CornerRadius > 0 {
		m.tk.EnableLayer(surface)
		m.tk.SetLayerCornerRadius(surface, opts.CornerRadius)
		m.tk.SetLayerClip(surface, true)
	}

	if opts.TintColor != "" {
		c, err := ParseHex(opts.TintColor)
		if err != nil {
			Logger().Warn("glass: tint skipped", "tint", opts.TintColor, "err", err)
			return err
		}
		if m.tk.RespondsTo(surface, "setTintColor:") {
			m.tk.InvokeColorSetter(surface, "setTintColor:", m.tk.MakeColor(c.R, c.G, c.B, c.A))
		} else {
			m.tk.SetLayerBackgroundColor(surface, c.R, c.G, c.B, c.A)
		}
	}

	return nil
}

// setIntProperty resolves and invokes an integer setter for key, trying the
// private form before the public form.
func (m *Manager) setIntProperty(view toolkit.Handle, key string, value int64) error {
	private := "set_" + key + ":"
	if m.tk.RespondsTo(view, private) {
		m.tk.InvokeIntSetter(view, private, value)
		Logger().Debug("glass: property set", "key", key, "selector", private, "value", value)
		return nil
	}

	public := "set" + upperFirst(key) + ":"
	if m.tk.RespondsTo(view, public) {
		m.tk.InvokeIntSetter(view, public, value)
		Logger().Debug("glass: property set", "key", key, "selector", public, "value", value)
		return nil
	}

	return &RuntimeError{Detail: fmt.Sprintf("property %q not found or not accessible", key)}
}

// upperFirst uppercases the first rune of s.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
