package zap

import (
	"go.uber.org/zap/zapcore"
)

const callerSkip = 1

var levels = map[string]zapcore.Level{
	"error": zapcore.ErrorLevel,
	"warn":  zapcore.WarnLevel,
	"info":  zapcore.InfoLevel,
	"debug": zapcore.DebugLevel,
}
