package reservation

import "github.com/m04kA/BaccalaMarket/internal/domain"

// clampPersonCount ограничивает количество человек диапазоном [MinPersonCount, MaxPersonCount]
func clampPersonCount(n int) int {
	if n < domain.MinPersonCount {
		return domain.MinPersonCount
	}
	if n > domain.MaxPersonCount {
		return domain.MaxPersonCount
	}
	return n
}

// gramsFor вычисляет вес для режима "по количеству человек"
func (e *Engine) gramsFor(personCount int) int {
	return personCount * e.settings.GramsPerPerson
}

// recomputeGramsLocked пересчитывает вес, только если активен режим ByPeople.
// В режиме Manual вес задаёт пользователь.
func (e *Engine) recomputeGramsLocked() {
	if e.mode == domain.ModeByPeople {
		e.draft.Grams = e.gramsFor(e.personCount)
	}
}

// Mode возвращает активный режим ввода количества
func (e *Engine) Mode() domain.QuantityMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// PersonCount возвращает количество человек
func (e *Engine) PersonCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.personCount
}

// Grams возвращает текущий вес в черновике
func (e *Engine) Grams() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft.Grams
}

// EstimatedGrams возвращает вес, который дал бы режим ByPeople при текущем количестве человек
func (e *Engine) EstimatedGrams() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gramsFor(e.personCount)
}

// IncrementPeople увеличивает количество человек, на верхней границе ничего не меняется
func (e *Engine) IncrementPeople() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setPersonCountLocked(e.personCount + 1)
}

// DecrementPeople уменьшает количество человек, на нижней границе ничего не меняется
func (e *Engine) DecrementPeople() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setPersonCountLocked(e.personCount - 1)
}

// SetPersonCount задает количество человек с ограничением по границам
func (e *Engine) SetPersonCount(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setPersonCountLocked(n)
}

func (e *Engine) setPersonCountLocked(n int) {
	e.personCount = clampPersonCount(n)
	e.recomputeGramsLocked()
}

// SwitchToManual включает ручной режим, вес остаётся прежним до ввода пользователя
func (e *Engine) SwitchToManual() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = domain.ModeManual
}

// SetManualGrams включает ручной режим и задает вес как есть.
// Минимум и шаг (50 г) - только подсказка интерфейса и здесь не проверяются.
func (e *Engine) SetManualGrams(grams int) error {
	if grams < 0 {
		return ErrInvalidGrams
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.mode = domain.ModeManual
	e.draft.Grams = grams
	return nil
}

// SwitchToPeople возвращает режим ByPeople и сразу перезаписывает вес,
// отбрасывая значение, введённое вручную
func (e *Engine) SwitchToPeople() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.mode = domain.ModeByPeople
	e.recomputeGramsLocked()
}
