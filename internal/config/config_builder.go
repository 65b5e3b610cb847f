package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects config layers in precedence order. Sources that fail
// to parse are remembered and reported together by build.
type configBuilder struct {
	configs []*StructuredConfig
	errs    []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	switch {
	case err != nil:
		b.errs = append(b.errs, err)
	case cfg != nil:
		b.configs = append(b.configs, cfg)
	}
	return b
}

// build merges the layers. mergo fills only zero fields, so a value from an
// earlier layer is never overwritten.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.configs {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	return merged, nil
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add(ParseFlags(args))
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.add(parseEnv(nil))
}

// withOverrides appends values the caller already parsed, e.g. cobra flags.
func (b *configBuilder) withOverrides(overrides *StructuredConfig) *configBuilder {
	return b.add(overrides, nil)
}

// withJSON loads the file named by the first layer that sets JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	for _, layer := range b.configs {
		if layer.JSONFilePath != "" {
			return b.add(parseJSON(layer.JSONFilePath))
		}
	}
	return b
}

func (b *configBuilder) withDefaults(defaults *StructuredConfig) *configBuilder {
	return b.add(defaults, nil)
}
