package logger

type Full interface {
	Lite

	Debugw(msg string, args ...interface{})
	Fatalw(msg string, err interface{}, args ...interface{})
}

type Lite interface {
	Infow(msg string, args ...interface{})
	WarnAndError
}

type WarnAndError interface {
	Warnw(msg string, args ...interface{})
	Errorw(msg string, err interface{}, args ...interface{})
}
