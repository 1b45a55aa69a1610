// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pkg exposes National Weather Service alerts and forecasts, a BMI
// calculator and a few demo resources and prompts as MCP tools.
package pkg

//go:generate go run -mod=mod github.com/maxbrunsfeld/counterfeiter/v6 -generate

// BlockSeparator joins formatted alert and forecast blocks.
const BlockSeparator = "\n---\n"
