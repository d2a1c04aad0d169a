package zap

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type St struct {
	sl *zap.SugaredLogger
}

// New builds a logger. Unknown levels fall back to "warn".
// In dev mode the level is always "debug".
func New(level string, dev bool) *St {
	var cfg zap.Config

	if dev {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()

		lvl, ok := levels[level]
		if !ok {
			lvl = zapcore.WarnLevel
		}

		cfg.Level.SetLevel(lvl)
	}

	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(callerSkip))
	if err != nil {
		log.Fatal(err)
	}

	return &St{sl: l.Sugar()}
}

func NewNop() *St {
	return &St{sl: zap.NewNop().Sugar()}
}

func (o *St) Fatalw(msg string, err interface{}, args ...interface{}) {
	args = append(args, "error", err)
	o.sl.Fatalw(msg, args...)
}

func (o *St) Errorw(msg string, err interface{}, args ...interface{}) {
	args = append(args, "error", err)
	o.sl.Errorw(msg, args...)
}

func (o *St) Warnw(msg string, args ...interface{}) {
	o.sl.Warnw(msg, args...)
}

func (o *St) Infow(msg string, args ...interface{}) {
	o.sl.Infow(msg, args...)
}

func (o *St) Debugw(msg string, args ...interface{}) {
	o.sl.Debugw(msg, args...)
}

func (o *St) Sync() {
	if err := o.sl.Sync(); err != nil {
		log.Println("Fail to sync zap-logger", err)
	}
}
