package config

// Overridden at build time through ldflags.
var (
	BuildVersion = "dev"
	BuildCommit  = ""
	BuildDate    = ""
)
