// Copyright 2026 Aleksandr Shukletcov. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/aleksandr-shukletcov/stencil-router/blob/master/LICENSE.txt.

package router

import (
	"errors"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)
