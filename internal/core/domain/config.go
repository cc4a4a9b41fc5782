package domain

// Strategy identifiers accepted on the command line and in config files.
const (
	StrategyAll         = "all"
	StrategyInteractive = "interactive"
)

// Config is the merged configuration for one run.
type Config struct {
	// Strategy names the selection strategy used for ambiguous libraries.
	Strategy string `validate:"omitempty,oneof=all interactive"`

	// Libraries are resolved even when the scanner does not report them.
	Libraries []string `validate:"dive,required"`

	// Packages are always included, ahead of resolved ones.
	Packages []string `validate:"dive,required"`

	// Output is the launcher file name, relative to the binary's directory
	// unless absolute.
	Output string

	// Concurrency bounds parallel lookups. Zero means one per CPU.
	Concurrency int `validate:"gte=0"`

	// Overrides pin a provider for a library and skip the index lookup.
	Overrides map[string]string `validate:"dive,keys,required,endkeys,required"`

	// ScannerCommand is the link-dependency scanner executable.
	ScannerCommand string

	// LocatorCommand is the package index query executable.
	LocatorCommand string
}

// DefaultConfig returns the configuration used when no file or flag overrides it.
func DefaultConfig() Config {
	return Config{
		Strategy:       StrategyInteractive,
		Output:         DefaultLauncherName,
		ScannerCommand: DefaultScannerCommand,
		LocatorCommand: DefaultLocatorCommand,
	}
}
