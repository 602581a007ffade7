// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package main

import _ "github.com/gogpu/gg/gpu" // GPU acceleration with CPU fallback
