// Copyright 2026 The glasskit Authors
// SPDX-License-Identifier: MIT

// Package cocoa implements the glass toolkit interface on macOS over the
// Objective-C runtime (AppKit).
//
// Importing the package registers the "cocoa" toolkit:
//
//	import _ "github.com/glasskit/glass/toolkit/cocoa"
//
// On non-darwin builds the package is empty and registers nothing, so
// toolkit.Default() returns nil and the manager reports every operation as
// unsupported.
package cocoa
