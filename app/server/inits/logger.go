package inits

import (
	"fmt"

	"go.uber.org/zap"
)

func Logger(debugMode bool) (l *zap.Logger, err error) {
	if debugMode {
		l, err = zap.NewDevelopment()
	} else {
		// 生产环境不需要 error 级别以下的堆栈
		l, err = zap.NewProduction(zap.AddStacktrace(zap.ErrorLevel))
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return l, nil
}
