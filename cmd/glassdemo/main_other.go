// Copyright 2026 The glasskit Authors
// SPDX-License-Identifier: MIT

//go:build !darwin

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "glassdemo: glass effects are only supported on macOS")
	os.Exit(1)
}
