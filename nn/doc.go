// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides activation modules and the activation resolver.
//
// # Overview
//
// This package contains:
//   - Activations: ReLU, Sigmoid, Tanh, Softmax, PReLU, LeakyReLU, GELU, SiLU, ELU,
//     Softplus, LogSoftmax, Identity
//   - Resolution: GetActivation with Name, Names and Prebuilt specs
//   - Utilities: Module interface, Parameter, Sequential, Registry
//
// # Basic Usage
//
//	act, err := nn.GetActivation(nn.Name("relu"))
//	if err != nil {
//	    return err
//	}
//	out, err := act.Module().Forward(x)
//
// Per-layer activations take one width per name; nn.Units{} means none:
//
//	acts, err := nn.GetActivation(nn.Names("relu", "prelu"), nn.Units{}, nn.Width(64))
//
// Unknown names fail with an error matching nn.ErrUnsupportedActivation.
package nn
