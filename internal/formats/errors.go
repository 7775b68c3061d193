// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package formats

import "errors"

var (
	ErrNoFormats     = errors.New("no formats available")
	ErrNoSuchFormat  = errors.New("no such format found")
	ErrUnknownFilter = errors.New("unknown format filter")
)
