package config

// CatalogConfig holds the location of the static item catalog
type CatalogConfig struct {
	// YAML file with item definitions; empty uses the embedded catalog
	Path string `mapstructure:"path"`
}
