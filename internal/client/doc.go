// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It opens the initial user scope of the entry session and hands the process
// over to the terminal UI.
package client
