// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingURL     = errors.New("missing video url")
	ErrTooManyArgs    = errors.New("too many arguments")
)
