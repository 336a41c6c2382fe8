// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package device

import (
	"github.com/born-ml/mlutil/internal/tensor"
)

// Device identifies one device.
type Device = tensor.Device
