// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// Every command runs one operation of the client services against the local
// cache and the remote API and prints its result as JSON. The watch command
// keeps the background workers running until the process is interrupted.
package client
