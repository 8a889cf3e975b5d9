package telegram

import "errors"

var (
	// ErrNotConfigured возвращается, когда не заданы токен бота или chat id
	ErrNotConfigured = errors.New("telegram client: bot token or chat id is not configured")

	// ErrRejected возвращается, когда Telegram ответил не 2xx
	ErrRejected = errors.New("telegram client: message rejected")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, таймаут, сериализация)
	ErrInternal = errors.New("telegram client: internal error")
)
