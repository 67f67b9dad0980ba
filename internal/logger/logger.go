package logger

import "go.uber.org/zap"

var l *zap.Logger

// Init はプロセス全体のロガーを初期化する
func Init(isDev bool) error {
	var err error
	if isDev {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	return err
}

func L() *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

func Sync() {
	if l != nil {
		_ = l.Sync()
	}
}
