// Copyright 2026 The glasskit Authors
// SPDX-License-Identifier: MIT

package glass

import (
	"sync"
	"unsafe"

	"github.com/glasskit/glass/toolkit"
)

// ViewID identifies an attached glass surface. IDs are unique for the
// lifetime of a Manager, issued in increasing order starting at 0, and
// never reused, not even after RemoveSurface.
type ViewID int32

// Manager creates, configures, and tracks glass-effect surfaces on native
// windows.
//
// A Manager owns the surfaces it attaches; it is the single source of truth
// for whether a surface is alive. It does not own the host window: if the
// host destroys the window while surfaces are still registered, behavior is
// undefined. Remove all surfaces before tearing down the window.
//
// All methods serialize on one internal lock. AddSurface additionally
// verifies it runs on the toolkit's UI thread; the mutation and removal
// methods inherit that requirement from the toolkit but do not re-check it.
type Manager struct {
	mu     sync.Mutex
	tk     toolkit.Toolkit
	nextID ViewID
	views  map[ViewID]toolkit.Handle
}

// New creates a Manager backed by the best available toolkit.
// On platforms with no registered toolkit the Manager still works, but
// every operation reports ErrUnsupportedPlatform and IsSupported returns
// false.
func New() *Manager {
	return NewWithToolkit(toolkit.Default())
}

// NewWithToolkit creates a Manager backed by an explicit toolkit.
// A nil toolkit yields the same unsupported-platform behavior as New on a
// platform without one.
func NewWithToolkit(tk toolkit.Toolkit) *Manager {
	if tk != nil {
		Logger().Info("glass: toolkit selected", "toolkit", tk.Name())
	}
	return &Manager{
		tk:    tk,
		views: make(map[ViewID]toolkit.Handle),
	}
}

// IsSupported reports whether the preferred glass material is available in
// this process. It returns false both on platforms without a toolkit and on
// toolkit versions that only offer the fallback material; AddSurface still
// succeeds in the latter case.
func (m *Manager) IsSupported() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tk == nil {
		return false
	}
	return m.tk.ClassExists(classGlassEffect)
}

// AddSurface attaches a glass-effect surface to the given native window
// view (NSView* on macOS) and returns its id.
//
// It fails with ErrInvalidHandle for a nil window, ErrUnsupportedPlatform
// when no toolkit is available, a *RuntimeError when called off the UI
// thread, and ErrCreationFailed when the toolkit cannot construct a
// surface; in all those cases nothing is attached and no id is consumed.
//
// A malformed Options.TintColor is not fatal: the surface is attached and
// registered, the returned id is valid, and the *InvalidColorError is
// returned alongside it so the caller knows the tint was skipped.
func (m *Manager) AddSurface(window unsafe.Pointer, opts Options) (ViewID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if window == nil {
		return 0, ErrInvalidHandle
	}
	if m.tk == nil {
		return 0, ErrUnsupportedPlatform
	}
	if !m.tk.CurrentThreadIsUIThread() {
		return 0, &RuntimeError{Detail: "AddSurface must be called from the UI thread"}
	}

	root := toolkit.Handle(uintptr(window))
	surface, err := m.attachSurfaces(root, opts)
	if err != nil {
		return 0, err
	}

	cfgErr := m.applyConfig(surface, opts)

	id := m.nextID
	m.nextID++
	m.views[id] = surface

	Logger().Debug("glass: surface attached", "id", id, "opaque", opts.Opaque)
	return id, cfgErr
}

// SetVariant sets the material variant of an attached surface.
// The variant code is passed through to the native surface unchecked.
func (m *Manager) SetVariant(id ViewID, variant Variant) error {
	return m.SetProperty(id, "variant", int64(variant))
}

// SetScrimState sets the scrim state of an attached surface
// (0 = none, 1 = light, 2 = dark on current toolkits). The value is not
// range-checked; the native surface is the authority on valid states.
func (m *Manager) SetScrimState(id ViewID, state int64) error {
	return m.SetProperty(id, "scrimState", state)
}

// SetSubduedState sets the subdued state of an attached surface.
// The value is not range-checked.
func (m *Manager) SetSubduedState(id ViewID, state int64) error {
	return m.SetProperty(id, "subduedState", state)
}

// SetProperty sets a named integer property on an attached surface.
//
// The property is resolved dynamically: the private setter form
// ("set_<key>:") is tried first, then the public form ("set<Key>:"). If the
// surface recognizes neither, SetProperty fails with a *RuntimeError. The
// private-first order is deliberate: internal setters are assumed more
// specific than generic public ones when both exist.
func (m *Manager) SetProperty(id ViewID, key string, value int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tk == nil {
		return ErrUnsupportedPlatform
	}
	view, ok := m.views[id]
	if !ok {
		return &InvalidViewIDError{ID: id}
	}
	return m.setIntProperty(view, key, value)
}

// RemoveSurface detaches the surface from its parent and forgets its id.
// Removal is not idempotent: a second call with the same id fails with
// *InvalidViewIDError. Detaching tolerates a parent that is already gone.
func (m *Manager) RemoveSurface(id ViewID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tk == nil {
		return ErrUnsupportedPlatform
	}
	view, ok := m.views[id]
	if !ok {
		return &InvalidViewIDError{ID: id}
	}

	m.tk.DetachFromParent(view)
	delete(m.views, id)

	Logger().Debug("glass: surface removed", "id", id)
	return nil
}
