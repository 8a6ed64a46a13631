// Copyright 2026 The glasskit Authors
// SPDX-License-Identifier: MIT

//go:build darwin

// Command glassdemo opens a host window and attaches a glass-effect
// surface to it.
//
// Usage:
//
//	glassdemo -radius 16 -tint "#00000080" -variant Sidebar
//	glassdemo -presets presets.yaml -preset hud
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glasskit/glass"
	"github.com/glasskit/glass/toolkit/cocoa"
)

func init() {
	// GLFW event handling and AppKit view-tree mutation must both happen
	// on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "glassdemo:", err)
		os.Exit(1)
	}
}

func run() error {
	radius := flag.Float64("radius", 16, "corner radius in points")
	tint := flag.String("tint", "", `tint color ("#RRGGBBAA" or a color name)`)
	opaque := flag.Bool("opaque", false, "insert an opaque backing surface")
	variantName := flag.String("variant", "", "material variant name (e.g. Sidebar)")
	presetsPath := flag.String("presets", "", "YAML presets file")
	presetName := flag.String("preset", "", "preset name from -presets")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		glass.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := glass.Options{CornerRadius: *radius, Opaque: *opaque}
	var variant glass.Variant
	haveVariant := false

	if *tint != "" {
		c, err := glass.ParseColor(*tint)
		if err != nil {
			return err
		}
		opts.TintColor = c.Hex()
	}
	if *variantName != "" {
		v, ok := glass.ParseVariant(*variantName)
		if !ok {
			return fmt.Errorf("unknown variant %q", *variantName)
		}
		variant, haveVariant = v, true
	}

	if *presetsPath != "" {
		presets, err := glass.LoadPresets(*presetsPath)
		if err != nil {
			return err
		}
		p, ok := presets[*presetName]
		if !ok {
			return fmt.Errorf("preset %q not found in %s", *presetName, *presetsPath)
		}
		opts = p.Options()
		if v, ok := p.MaterialVariant(); ok {
			variant, haveVariant = v, true
		}
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initializing GLFW: %w", err)
	}
	defer glfw.Terminate()

	// The demo draws nothing itself; the glass surface is the content.
	// Reference: https://www.glfw.org/docs/latest/window_guide.html#window_hints
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.TransparentFramebuffer, glfw.True)

	win, err := glfw.CreateWindow(800, 600, "glass demo", nil, nil)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}

	mgr := glass.New()
	if !mgr.IsSupported() {
		fmt.Fprintln(os.Stderr, "glassdemo: preferred material unavailable, using fallback")
	}

	id, err := mgr.AddSurface(cocoa.ContentView(win.GetCocoaWindow()), opts)
	if err != nil {
		var colorErr *glass.InvalidColorError
		if !errors.As(err, &colorErr) {
			return err
		}
		// Surface attached, tint degraded.
		fmt.Fprintln(os.Stderr, "glassdemo:", err)
	}
	if haveVariant {
		if err := mgr.SetVariant(id, variant); err != nil {
			fmt.Fprintln(os.Stderr, "glassdemo:", err)
		}
	}

	for !win.ShouldClose() {
		glfw.WaitEvents()
	}

	return mgr.RemoveSurface(id)
}
