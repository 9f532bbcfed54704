/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"reflect"
	"time"

	"github.com/hyperledger/fabric-gateway-go/pkg/common/configtree"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

const (
	defaultQueryTimeout  = 30
	defaultCommitTimeout = 300
)

// defaultOptions returns a new tree holding the gateway defaults.
// Timeouts are in seconds.
func defaultOptions() configtree.Tree {
	return configtree.Tree{
		"queryHandlerOptions": configtree.Tree{
			"timeout":  defaultQueryTimeout,
			"strategy": DefaultQueryHandlers.OrgSingle,
		},
		"eventHandlerOptions": configtree.Tree{
			"commitTimeout": defaultCommitTimeout,
			"strategy":      DefaultCommitHandlers.OrgAll,
		},
		"discovery": configtree.Tree{
			"enabled": true,
		},
	}
}

type queryHandlerOptions struct {
	Timeout  time.Duration       `mapstructure:"timeout"`
	Strategy QueryHandlerFactory `mapstructure:"strategy"`
}

type eventHandlerOptions struct {
	CommitTimeout time.Duration        `mapstructure:"commitTimeout"`
	Strategy      CommitHandlerFactory `mapstructure:"strategy"`
}

type discoveryOptions struct {
	Enabled bool `mapstructure:"enabled"`
}

// handlerOptions is the typed view of the parts of the merged options used
// when transactions are evaluated and submitted
type handlerOptions struct {
	Query     queryHandlerOptions `mapstructure:"queryHandlerOptions"`
	Event     eventHandlerOptions `mapstructure:"eventHandlerOptions"`
	Discovery discoveryOptions    `mapstructure:"discovery"`
}

var (
	durationType     = reflect.TypeOf(time.Duration(0))
	queryFactoryType = reflect.TypeOf((*QueryHandlerFactory)(nil)).Elem()
	eventFactoryType = reflect.TypeOf((*CommitHandlerFactory)(nil)).Elem()
)

// optionsDecodeHook turns plain values into durations and strategies.
// Numbers are seconds and strings are Go durations or strategy names.
func optionsDecodeHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	switch to {
	case durationType:
		if from == durationType {
			return data, nil
		}
		if s, ok := data.(string); ok {
			if d, err := time.ParseDuration(s); err == nil {
				return d, nil
			}
		}
		seconds, err := cast.ToFloat64E(data)
		if err != nil {
			return nil, errors.Errorf("invalid timeout: %v", data)
		}
		return time.Duration(seconds * float64(time.Second)), nil
	case queryFactoryType:
		if name, ok := data.(string); ok {
			return QueryHandlerByName(name)
		}
	case eventFactoryType:
		if name, ok := data.(string); ok {
			return CommitHandlerByName(name)
		}
	}
	return data, nil
}

func decodeHandlerOptions(options configtree.Tree) (*handlerOptions, error) {
	result := &handlerOptions{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: optionsDecodeHook,
		Result:     result,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(map[string]interface{}(options)); err != nil {
		return nil, newConfigurationError("invalid gateway options: %s", err)
	}
	return result, nil
}
