package config

// File is the on-disk shape of both the user and the project configuration.
type File struct {
	Strategy    string            `yaml:"strategy"`
	Libraries   []string          `yaml:"libraries"`
	Packages    []string          `yaml:"packages"`
	Output      string            `yaml:"output"`
	Concurrency *int              `yaml:"concurrency"`
	Overrides   map[string]string `yaml:"overrides"`
	Locator     ToolDTO           `yaml:"locator"`
	Scanner     ToolDTO           `yaml:"scanner"`
}

// ToolDTO configures an external executable.
type ToolDTO struct {
	Command string `yaml:"command"`
}
