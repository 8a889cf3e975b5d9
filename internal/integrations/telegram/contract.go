package telegram

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder принимает результат вызова Bot API
type MetricsRecorder interface {
	ObserveGatewayCall(outcome string, duration time.Duration)
}
