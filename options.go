package promreg

import "runtime/debug"

type registryConfig struct {
	baseAttributes []Attribute
	logger         Logger
}

// Option configures a Registry constructed by New.
type Option func(*registryConfig)

// WithBaseAttribute seeds a base attribute carried by every metric
// registered through this registry.
func WithBaseAttribute(key, value string) Option {
	return func(cfg *registryConfig) {
		cfg.baseAttributes = append(cfg.baseAttributes, Attribute{Key: key, Value: value})
	}
}

// WithProgramInfo seeds the program and pkg_version base attributes.
// Empty values are omitted entirely rather than rendered as empty labels.
func WithProgramInfo(name, version string) Option {
	return func(cfg *registryConfig) {
		if name != "" {
			cfg.baseAttributes = append(cfg.baseAttributes, Attribute{Key: "program", Value: name})
		}
		if version != "" {
			cfg.baseAttributes = append(cfg.baseAttributes, Attribute{Key: "pkg_version", Value: version})
		}
	}
}

// WithBuildInfo seeds program and pkg_version from the binary's embedded
// build information. When build info is unavailable, or a field is empty,
// the corresponding attribute is omitted.
func WithBuildInfo() Option {
	return func(cfg *registryConfig) {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		WithProgramInfo(info.Main.Path, info.Main.Version)(cfg)
	}
}

// WithLogger installs a diagnostics logger. The registry logs each
// registered metric at debug level; the default logger discards
// everything.
func WithLogger(l Logger) Option {
	return func(cfg *registryConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}
