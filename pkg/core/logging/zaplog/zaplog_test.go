/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package zaplog

import (
	"testing"

	"github.com/hyperledger/fabric-gateway-go/pkg/core/logging/api"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedProvider() (*Provider, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return New(WithLogger(zap.New(core))), logs
}

func TestDefaultLevelIsInfo(t *testing.T) {
	p, logs := newObservedProvider()
	logger := p.GetLogger("fabgateway/test")

	logger.Debug("hidden")
	logger.Info("shown")

	assert.Equal(t, api.INFO, p.GetLevel("fabgateway/test"))
	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
	assert.Equal(t, "fabgateway/test", logs.All()[0].LoggerName)
}

func TestModuleLevelsAreIndependent(t *testing.T) {
	p, logs := newObservedProvider()
	p.SetLevel("module-a", api.DEBUG)
	p.SetLevel("module-b", api.ERROR)

	a := p.GetLogger("module-a")
	b := p.GetLogger("module-b")

	a.Debugf("a %d", 1)
	b.Warnf("b %d", 2)
	b.Errorf("b %d", 3)

	msgs := []string{}
	for _, e := range logs.All() {
		msgs = append(msgs, e.Message)
	}
	assert.Equal(t, []string{"a 1", "b 3"}, msgs)
}

func TestLevelChangeAppliesToExistingLogger(t *testing.T) {
	p, logs := newObservedProvider()
	logger := p.GetLogger("module-c")

	logger.Debug("before")
	p.SetLevel("module-c", api.DEBUG)
	logger.Debug("after")

	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, "after", logs.All()[0].Message)
}

func TestWithDefaultLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := New(WithLogger(zap.New(core)), WithDefaultLevel(api.WARNING))

	p.GetLogger("any").Info("hidden")

	assert.Equal(t, api.WARNING, p.GetLevel("any"))
	assert.Equal(t, 0, logs.Len())
}

func TestParseLevel(t *testing.T) {
	level, err := api.ParseLevel("debug")
	assert.NoError(t, err)
	assert.Equal(t, api.DEBUG, level)

	_, err = api.ParseLevel("verbose")
	assert.Error(t, err)

	assert.Equal(t, "WARNING", api.WARNING.String())
}
