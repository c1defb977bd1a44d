package config

import (
	"encoding/json"
	"io"
)

// LoadConfig reads a JSON config document and describes it into a Config.
func LoadConfig(r io.Reader) (*Config, error) {
	rawData, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var data interface{}
	err = json.Unmarshal(rawData, &data)
	if err != nil {
		return nil, err
	}
	if _, ok := data.(map[string]interface{}); !ok {
		return nil, ErrBadConfig
	}
	var fieldErr error
	rawConfig, s, f := newDescriptor(func(err error) {
		if fieldErr == nil {
			fieldErr = err
		}
	}).Describe(data)
	if fieldErr != nil {
		return nil, fieldErr
	}
	ok := s > 0 && f < 1
	if !ok {
		return nil, ErrBadConfig
	}
	config, ok := rawConfig.(*Config)
	if !ok || config == nil {
		return nil, ErrBadConfig
	}
	switch {
	case config.Capacity == noCapacity:
		return nil, ErrMissingCapacityConfig
	case config.Capacity < 1:
		return nil, ErrInvalidCapacityConfig
	}
	return config, nil
}
