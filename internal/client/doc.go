// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// An [App] runs one sub-command against a MediaVault server:
//
//	info <url>               print title, duration and formats
//	download <url> [itag]    save a muxed video into the output directory
//	audio <url> [quality]    save the audio track into the output directory
//	health                   print the server health status
package client
