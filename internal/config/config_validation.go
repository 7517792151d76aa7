// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. Defaults have already been
// applied, so the only thing that can still be missing is the credential.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.APIKey) == "" {
		return ErrMissingAPIKey
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PollInterval <= 0 || cfg.Workers.DeployLookback <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
