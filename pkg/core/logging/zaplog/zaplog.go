/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package zaplog provides the default logger provider, backed by zap.
// Each module gets a named sugared logger whose level can be changed at
// runtime independently of other modules.
package zaplog

import (
	"sync"

	"github.com/hyperledger/fabric-gateway-go/pkg/core/logging/api"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Provider creates zap backed module loggers
type Provider struct {
	mu     sync.Mutex
	base   *zap.Logger
	levels map[string]zap.AtomicLevel
	def    api.Level
}

// Option configures the provider
type Option func(p *Provider)

// WithLogger uses the given zap logger as the root of all module loggers.
// The logger's own level still applies on top of the module levels.
func WithLogger(l *zap.Logger) Option {
	return func(p *Provider) {
		p.base = l
	}
}

// WithDefaultLevel sets the level for modules without an explicit level
func WithDefaultLevel(level api.Level) Option {
	return func(p *Provider) {
		p.def = level
	}
}

// New returns a provider. Without WithLogger a production encoder writing
// to stderr is used.
func New(opts ...Option) *Provider {
	p := &Provider{
		levels: make(map[string]zap.AtomicLevel),
		def:    api.INFO,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.base == nil {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		cfg.Sampling = nil
		l, err := cfg.Build()
		if err != nil {
			l = zap.NewNop()
		}
		p.base = l
	}
	return p
}

// GetLogger returns the logger for the given module
func (p *Provider) GetLogger(module string) api.Logger {
	level := p.atomicLevel(module)
	return p.base.WithOptions(
		zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return &levelCore{Core: c, level: level}
		}),
		zap.AddCallerSkip(1),
	).Named(module).Sugar()
}

// SetLevel sets the level of the given module
func (p *Provider) SetLevel(module string, level api.Level) {
	p.atomicLevel(module).SetLevel(toZapLevel(level))
}

// GetLevel returns the level of the given module
func (p *Provider) GetLevel(module string) api.Level {
	return fromZapLevel(p.atomicLevel(module).Level())
}

func (p *Provider) atomicLevel(module string) zap.AtomicLevel {
	p.mu.Lock()
	defer p.mu.Unlock()

	level, ok := p.levels[module]
	if !ok {
		level = zap.NewAtomicLevelAt(toZapLevel(p.def))
		p.levels[module] = level
	}
	return level
}

// levelCore filters entries by the module level before handing them
// to the wrapped core
type levelCore struct {
	zapcore.Core
	level zap.AtomicLevel
}

func (c *levelCore) Enabled(l zapcore.Level) bool {
	return c.level.Enabled(l) && c.Core.Enabled(l)
}

func (c *levelCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelCore{Core: c.Core.With(fields), level: c.level}
}

func (c *levelCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return ce.AddCore(entry, c)
	}
	return ce
}

func toZapLevel(level api.Level) zapcore.Level {
	switch level {
	case api.CRITICAL:
		return zapcore.DPanicLevel
	case api.ERROR:
		return zapcore.ErrorLevel
	case api.WARNING:
		return zapcore.WarnLevel
	case api.DEBUG:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

func fromZapLevel(level zapcore.Level) api.Level {
	switch {
	case level >= zapcore.DPanicLevel:
		return api.CRITICAL
	case level == zapcore.ErrorLevel:
		return api.ERROR
	case level == zapcore.WarnLevel:
		return api.WARNING
	case level == zapcore.DebugLevel:
		return api.DEBUG
	default:
		return api.INFO
	}
}
