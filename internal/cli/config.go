package cli

// Color modes accepted by --color.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Config stores CLI options for a single generation run.
type Config struct {
	SpecPath    string
	Filename    string
	ConfigPath  string
	Strict      bool
	Verbosity   int
	Color       string
	ShowVersion bool
}

// OutputFilename returns destination file path for generator layer.
func (c *Config) OutputFilename() string {
	return c.Filename
}
