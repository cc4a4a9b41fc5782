package ports

import "go.trai.ch/autobahn/internal/core/domain"

// ScannerFactory builds the Scanner for a run from its merged configuration.
type ScannerFactory func(cfg domain.Config) Scanner

// LocatorFactory builds the Locator for a run from its merged configuration.
type LocatorFactory func(cfg domain.Config) Locator
