// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the monitor's application runtime.
//
// It wires the API adapter, the status service, and the terminal UI into a
// single process lifecycle and selects between the single-shot and live run
// modes.
package client
