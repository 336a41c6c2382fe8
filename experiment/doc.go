// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package experiment collects the helpers a training run leans on.
//
// # Overview
//
//   - Seeding: InitSeed builds the run's random context and installs it globally
//   - Data: LoadCSV, EvalListColumns, ToDict and BatchToDevice turn tables into tensors on a device
//   - Logging: Check prints tensors, FormatMetric and FormatArgs render results and settings
//   - Files and time: CheckDir, Now
//   - Early stopping: NonIncreasing and Stopper
//   - Configuration: LoadConfig reads a YAML run file with environment overrides
//
// # Basic Usage
//
//	cfg, err := experiment.LoadConfig("run.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rng := experiment.InitSeed(cfg.Seed)
//	logrus.Info(experiment.FormatArgs(cfg.Values(), nil, 0))
//
//	f, _ := experiment.LoadCSV("train.csv")
//	f, _ = experiment.EvalListColumns(f)
//	cols, _ := f.ToDict()
//	...
//	line, _ := experiment.FormatMetric(results)
//	logrus.Infof("Test: %s", line)
package experiment
