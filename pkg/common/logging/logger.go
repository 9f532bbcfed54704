/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package logging enables setting custom logger implementation.
//
//  Basic Flow:
//  1) Initialize logger (optional, zap backed provider otherwise)
//  2) Create new logger for specific module
//  3) Call log info
package logging

import (
	"sync"

	"github.com/hyperledger/fabric-gateway-go/pkg/core/logging/api"
	"github.com/hyperledger/fabric-gateway-go/pkg/core/logging/zaplog"
)

//Logger basic implementation of api.Logger interface
type Logger struct {
	instance api.Logger // access only via Logger.logger()
	module   string
	once     sync.Once
}

// logger factory singleton - access only via loggerProvider()
var loggerProviderInstance api.LoggerProvider
var loggerProviderOnce sync.Once

// pending levels set before the provider was bound
var levelsMutex sync.Mutex
var pendingLevels = map[string]api.Level{}

// Level defines all available log levels for log messages.
type Level = api.Level

// Log levels.
const (
	CRITICAL = api.CRITICAL
	ERROR    = api.ERROR
	WARNING  = api.WARNING
	INFO     = api.INFO
	DEBUG    = api.DEBUG
)

const (
	loggerNotInitializedMsg = "Default logger initialized (please call logging.Initialize if you wish to use a custom logger)"
	loggerModule            = "fabgateway/common"
)

// NewLogger creates and returns a Logger object based on the module name.
func NewLogger(module string) *Logger {
	// note: the underlying logger instance is lazy initialized on first use
	return &Logger{module: module}
}

func loggerProvider() api.LoggerProvider {
	loggerProviderOnce.Do(func() {
		// A custom logger must be initialized prior to the first log output
		// Otherwise the built-in logger is used
		bind(zaplog.New())
		loggerProviderInstance.GetLogger(loggerModule).Debug(loggerNotInitializedMsg)
	})
	return loggerProviderInstance
}

//Initialize sets new logger which takes over logging operations.
//It is required to call this function before making any loggings.
func Initialize(l api.LoggerProvider) {
	loggerProviderOnce.Do(func() {
		bind(l)
		loggerProviderInstance.GetLogger(loggerModule).Debug("Logger provider initialized")
	})
}

func bind(l api.LoggerProvider) {
	levelsMutex.Lock()
	defer levelsMutex.Unlock()

	loggerProviderInstance = l
	if leveler, ok := l.(api.Leveler); ok {
		for module, level := range pendingLevels {
			leveler.SetLevel(module, level)
		}
	}
}

//SetLevel - setting log level for given module
//  Parameters:
//  module is module name
//  level is logging level
//
//  The level is ignored by providers that don't implement api.Leveler.
func SetLevel(module string, level Level) {
	levelsMutex.Lock()
	pendingLevels[module] = level
	provider := loggerProviderInstance
	levelsMutex.Unlock()

	if leveler, ok := provider.(api.Leveler); ok {
		leveler.SetLevel(module, level)
	}
}

//GetLevel - getting log level for given module
func GetLevel(module string) Level {
	levelsMutex.Lock()
	provider := loggerProviderInstance
	level, ok := pendingLevels[module]
	levelsMutex.Unlock()

	if leveler, isLeveler := provider.(api.Leveler); isLeveler {
		return leveler.GetLevel(module)
	}
	if ok {
		return level
	}
	return INFO
}

// LogLevel returns the log level from a string representation.
func LogLevel(level string) (Level, error) {
	return api.ParseLevel(level)
}

//Debug calls Debug function of underlying logger
func (l *Logger) Debug(args ...interface{}) {
	l.logger().Debug(args...)
}

//Debugf calls Debugf function of underlying logger
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logger().Debugf(format, args...)
}

//Info calls Info function of underlying logger
func (l *Logger) Info(args ...interface{}) {
	l.logger().Info(args...)
}

//Infof calls Infof function of underlying logger
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logger().Infof(format, args...)
}

//Warn calls Warn function of underlying logger
func (l *Logger) Warn(args ...interface{}) {
	l.logger().Warn(args...)
}

//Warnf calls Warnf function of underlying logger
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logger().Warnf(format, args...)
}

//Error calls Error function of underlying logger
func (l *Logger) Error(args ...interface{}) {
	l.logger().Error(args...)
}

//Errorf calls Errorf function of underlying logger
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logger().Errorf(format, args...)
}

func (l *Logger) logger() api.Logger {
	l.once.Do(func() {
		l.instance = loggerProvider().GetLogger(l.module)
	})
	return l.instance
}
