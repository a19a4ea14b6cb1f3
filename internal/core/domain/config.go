package domain

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = ".crcsum.yaml"

// DefaultWorkerFactor multiplies the CPU count to size the worker pool.
// Workers mostly block on file I/O, so the pool is larger than the CPU count.
const DefaultWorkerFactor = 4

// Config holds the persistent run settings.
type Config struct {
	// Jobs is the worker count. Zero derives it from the CPU count.
	Jobs int
	// Mode holds the default reconciliation flags.
	Mode Mode
	// Ignore lists base-name glob patterns excluded from enumeration.
	Ignore []string
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{}
}
