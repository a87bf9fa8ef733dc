package domain

// BootstrapSource reports where a symbol bootstrap took its data from.
type BootstrapSource string

const (
	BootstrapAlreadyLoaded BootstrapSource = "already_loaded"
	BootstrapCache         BootstrapSource = "cache"
	BootstrapNetwork       BootstrapSource = "network"
	BootstrapUnavailable   BootstrapSource = "unavailable"
)
