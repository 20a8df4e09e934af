// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

// Errors returned by [New] and [App.Run].
var (
	ErrNilStartup           = errors.New("startup config is nil")
	ErrNilValidator         = errors.New("schema validator is nil")
	ErrInvalidConfiguration = errors.New("configuration does not match the schema")
	ErrNotStarted           = errors.New("application has not been run")
)
