package reservation

import (
	"context"
	"sync"

	"github.com/m04kA/BaccalaMarket/internal/domain"
)

// InFlight токены отправок, которые сейчас ждут ответа шлюза.
// Engine живет один запрос, поэтому защита от повторной отправки
// одной и той же формы хранится здесь и разделяется между запросами.
type InFlight struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

// NewInFlight создает пустое множество отправок
func NewInFlight() *InFlight {
	return &InFlight{tokens: make(map[string]struct{})}
}

// Acquire занимает токен на время отправки.
// Пока токен занят, повторный Acquire возвращает ErrSubmissionInFlight.
// Пустой токен не защищается.
func (f *InFlight) Acquire(token string) (release func(), err error) {
	if token == "" {
		return func() {}, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.tokens[token]; ok {
		return nil, ErrSubmissionInFlight
	}
	f.tokens[token] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.tokens, token)
			f.mu.Unlock()
		})
	}, nil
}

// Submit занимает токен и отправляет форму.
// Вторая отправка с тем же токеном, пока первая не завершилась, шлюз не вызывает.
func (f *InFlight) Submit(ctx context.Context, e *Engine, token string) (*domain.Receipt, error) {
	release, err := f.Acquire(token)
	if err != nil {
		return nil, err
	}
	defer release()

	return e.Submit(ctx)
}
