package domain

const (
	// AppName is used for the user config directory and tracer names.
	AppName = "autobahn"

	// ProjectConfigFileName is the per-binary configuration file looked up next to the binary.
	ProjectConfigFileName = "autobahn.yaml"

	// UserConfigFileName is the configuration file inside the user config directory.
	UserConfigFileName = "config.yaml"

	// DefaultLauncherName is the file name of the launcher written next to the binary.
	DefaultLauncherName = "run-with-nix"

	// DefaultScannerCommand is the link-dependency scanner executable.
	DefaultScannerCommand = "ldd"

	// DefaultLocatorCommand is the package index query executable.
	DefaultLocatorCommand = "nix-locate"

	// DefaultBuildCommand builds the environment expression passed after -E.
	DefaultBuildCommand = "nix-build --no-out-link -E"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// ScriptPerm is the permission of the launcher script (rwxr-xr-x).
	ScriptPerm = 0o755
)
