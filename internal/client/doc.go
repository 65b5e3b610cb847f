// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vocabulary client runtime.
//
// It wires the local card store, the remote adapter, client services and
// background synchronisation into a single process lifecycle.
package client
