package reservation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BaccalaMarket/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type fakeGateway struct {
	mu      sync.Mutex
	calls   []*domain.Reservation
	err     error
	started chan struct{}
	release chan struct{}
}

func (g *fakeGateway) Send(ctx context.Context, r *domain.Reservation) error {
	g.mu.Lock()
	g.calls = append(g.calls, r)
	g.mu.Unlock()

	if g.started != nil {
		g.started <- struct{}{}
	}
	if g.release != nil {
		select {
		case <-g.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return g.err
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

// 2025-06-09 is a Monday
var testToday = time.Date(2025, time.June, 9, 10, 30, 0, 0, time.UTC)

func newTestEngine(gw Gateway) *Engine {
	return NewEngine(DefaultSettings(), gw, &fixedClock{now: testToday}, nil)
}

func fillValidDraft(t *testing.T, e *Engine) {
	t.Helper()
	e.SetFirstName("Mario")
	e.SetLastName("Rossi")
	e.SetPersonCount(2)
	require.NoError(t, e.SelectDate(domain.NewDate(2025, time.June, 12)))
	e.SetTimeSlot(domain.TimeSlotAfternoon)
}

func TestNewEngine_Defaults(t *testing.T) {
	e := newTestEngine(&fakeGateway{})

	assert.Equal(t, "vicentina", e.Product().ID)
	assert.Equal(t, "Baccalà alla Vicentina", e.Draft().ProductName)
	assert.Equal(t, domain.ModeByPeople, e.Mode())
	assert.Equal(t, domain.DefaultPersonCount, e.PersonCount())
	assert.Equal(t, 400, e.Grams())
	assert.Equal(t, domain.StatusIdle, e.Status())
	assert.False(t, e.IsCalendarOpen())
	assert.Equal(t, domain.NewDate(2025, time.June, 9), e.WeekStart())
}

func TestSelectProduct(t *testing.T) {
	e := newTestEngine(&fakeGateway{})

	require.NoError(t, e.SelectProduct("mantecato"))
	assert.Equal(t, "mantecato", e.Product().ID)
	assert.Equal(t, "Baccalà Mantecato", e.Draft().ProductName)

	err := e.SelectProduct("stoccafisso")
	assert.ErrorIs(t, err, ErrUnknownProduct)
	assert.Equal(t, "mantecato", e.Product().ID)
}

func TestByPeople_GramsFollowPersonCount(t *testing.T) {
	e := newTestEngine(&fakeGateway{})

	for n := domain.MinPersonCount; n <= domain.MaxPersonCount; n++ {
		e.SetPersonCount(n)
		assert.Equal(t, n*domain.DefaultGramsPerPerson, e.Grams(), "personCount=%d", n)
	}
}

func TestPersonCount_Clamps(t *testing.T) {
	e := newTestEngine(&fakeGateway{})

	e.SetPersonCount(50)
	e.IncrementPeople()
	assert.Equal(t, 50, e.PersonCount())
	assert.Equal(t, 10000, e.Grams())

	e.SetPersonCount(1)
	e.DecrementPeople()
	assert.Equal(t, 1, e.PersonCount())
	assert.Equal(t, 200, e.Grams())

	e.SetPersonCount(0)
	assert.Equal(t, 1, e.PersonCount())
	e.SetPersonCount(120)
	assert.Equal(t, 50, e.PersonCount())
}

func TestManualMode(t *testing.T) {
	e := newTestEngine(&fakeGateway{})

	t.Run("switching keeps the last value until typed", func(t *testing.T) {
		e.SetPersonCount(3)
		e.SwitchToManual()
		assert.Equal(t, domain.ModeManual, e.Mode())
		assert.Equal(t, 600, e.Grams())
	})

	t.Run("typed value is taken verbatim", func(t *testing.T) {
		require.NoError(t, e.SetManualGrams(730))
		assert.Equal(t, 730, e.Grams())
	})

	t.Run("person count is ignored in manual mode", func(t *testing.T) {
		e.IncrementPeople()
		assert.Equal(t, 4, e.PersonCount())
		assert.Equal(t, 730, e.Grams())
	})

	t.Run("negative grams rejected", func(t *testing.T) {
		assert.ErrorIs(t, e.SetManualGrams(-50), ErrInvalidGrams)
		assert.Equal(t, 730, e.Grams())
	})

	t.Run("back to people overwrites manual value", func(t *testing.T) {
		e.SwitchToPeople()
		assert.Equal(t, domain.ModeByPeople, e.Mode())
		assert.Equal(t, 800, e.Grams())
	})
}

func TestSetManualGrams_EntersManualMode(t *testing.T) {
	e := newTestEngine(&fakeGateway{})

	require.NoError(t, e.SetManualGrams(30))
	assert.Equal(t, domain.ModeManual, e.Mode())
	assert.Equal(t, 30, e.Grams())
}

func TestCalendar_OpenClose(t *testing.T) {
	e := newTestEngine(&fakeGateway{})

	e.ClickOutside()
	assert.False(t, e.IsCalendarOpen())

	e.ToggleCalendar()
	assert.True(t, e.IsCalendarOpen())

	e.ClickOutside()
	assert.False(t, e.IsCalendarOpen())

	e.ToggleCalendar()
	e.ToggleCalendar()
	assert.False(t, e.IsCalendarOpen())
}

func TestCalendar_ChangeWeek(t *testing.T) {
	e := newTestEngine(&fakeGateway{})
	start := e.WeekStart()

	require.NoError(t, e.ChangeWeek(DirectionNext))
	assert.Equal(t, start.AddDays(7), e.WeekStart())

	require.NoError(t, e.ChangeWeek(DirectionPrev))
	require.NoError(t, e.ChangeWeek(DirectionPrev))
	assert.Equal(t, start.AddDays(-7), e.WeekStart())

	assert.ErrorIs(t, e.ChangeWeek(Direction("up")), ErrInvalidDirection)
	assert.Equal(t, start.AddDays(-7), e.WeekStart())
}

func TestCalendar_WeekDays(t *testing.T) {
	e := newTestEngine(&fakeGateway{})

	for week := -3; week <= 3; week++ {
		days := e.WeekDays()
		require.Len(t, days, 6)
		assert.Equal(t, time.Monday, days[0].Date.Weekday())
		assert.Equal(t, time.Saturday, days[5].Date.Weekday())
		for _, d := range days {
			assert.NotEqual(t, time.Sunday, d.Date.Weekday())
		}
		require.NoError(t, e.ChangeWeek(DirectionNext))
	}
}

func TestCalendar_DisabledAndSelected(t *testing.T) {
	clock := &fixedClock{now: time.Date(2025, time.June, 11, 8, 0, 0, 0, time.UTC)} // Wednesday
	e := NewEngine(DefaultSettings(), &fakeGateway{}, clock, nil)

	require.NoError(t, e.SelectDate(domain.NewDate(2025, time.June, 13)))
	days := e.WeekDays()

	assert.True(t, days[0].Disabled)  // Monday
	assert.True(t, days[1].Disabled)  // Tuesday
	assert.False(t, days[2].Disabled) // today
	assert.True(t, days[2].Today)
	assert.True(t, days[4].Selected)
	assert.False(t, days[3].Selected)
}

func TestSelectDate(t *testing.T) {
	e := newTestEngine(&fakeGateway{})

	t.Run("past date is a no-op", func(t *testing.T) {
		e.ToggleCalendar()
		err := e.SelectDate(domain.NewDate(2025, time.June, 8))
		assert.ErrorIs(t, err, ErrDateInPast)
		assert.True(t, e.Draft().PickupDate.IsZero())
		assert.True(t, e.IsCalendarOpen())
	})

	t.Run("today is selectable and closes the calendar", func(t *testing.T) {
		require.NoError(t, e.SelectDate(domain.NewDate(2025, time.June, 9)))
		assert.Equal(t, "2025-06-09", e.Draft().PickupDate.String())
		assert.False(t, e.IsCalendarOpen())
	})

	t.Run("far future date", func(t *testing.T) {
		require.NoError(t, e.SelectDate(domain.NewDate(2026, time.March, 2)))
		assert.Equal(t, "2026-03-02", e.Draft().PickupDate.String())
	})
}

func TestFreshnessAdvisory(t *testing.T) {
	e := newTestEngine(&fakeGateway{})
	assert.False(t, e.FreshnessAdvisory())

	require.NoError(t, e.SelectDate(domain.NewDate(2025, time.June, 16))) // Monday
	e.SetTimeSlot(domain.TimeSlotAfternoon)
	assert.True(t, e.FreshnessAdvisory())

	require.NoError(t, e.SelectDate(domain.NewDate(2025, time.June, 11))) // Wednesday
	assert.False(t, e.FreshnessAdvisory())
	e.SetTimeSlot(domain.TimeSlotMorning)
	assert.True(t, e.FreshnessAdvisory())
}

func TestSubmit_ValidationKeepsIdle(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(e *Engine)
		field   string
	}{
		{"missing first name", func(e *Engine) { e.SetFirstName("") }, FieldFirstName},
		{"missing last name", func(e *Engine) { e.SetLastName("  ") }, FieldLastName},
		{"zero grams", func(e *Engine) { _ = e.SetManualGrams(0) }, FieldGrams},
		{"missing date", func(e *Engine) { e.Restore(withoutDate(e.State())) }, FieldPickupDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{}
			e := newTestEngine(gw)
			fillValidDraft(t, e)
			tt.prepare(e)

			receipt, err := e.Submit(context.Background())
			assert.Nil(t, receipt)
			require.ErrorIs(t, err, ErrValidation)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.True(t, vErr.Has(tt.field))

			assert.Equal(t, domain.StatusIdle, e.Status())
			assert.Equal(t, 0, gw.callCount())
		})
	}
}

func withoutDate(s State) State {
	s.Draft.PickupDate = domain.Date{}
	return s
}

func TestSubmit_SuccessScenario(t *testing.T) {
	gw := &fakeGateway{}
	e := newTestEngine(gw)

	require.NoError(t, e.SelectProduct("insalata"))
	fillValidDraft(t, e)
	assert.Equal(t, 400, e.Grams())
	assert.False(t, e.FreshnessAdvisory())

	receipt, err := e.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, receipt)

	require.Equal(t, 1, gw.callCount())
	sent := gw.calls[0]
	assert.Equal(t, 400, sent.Draft.Grams)
	assert.Equal(t, "2025-06-12", sent.Draft.PickupDate.String())
	assert.Equal(t, "Baccalà in Insalata", sent.Draft.ProductName)
	assert.Equal(t, domain.TimeSlotAfternoon, sent.Draft.PickupTimeSlot)
	assert.Equal(t, sent.Reference, receipt.Reference)

	assert.Equal(t, domain.StatusSuccess, e.Status())
	assert.Equal(t, "vicentina", e.Product().ID)
	assert.Equal(t, 2, e.PersonCount())
	assert.Equal(t, domain.ModeByPeople, e.Mode())
	draft := e.Draft()
	assert.Empty(t, draft.FirstName)
	assert.Empty(t, draft.LastName)
	assert.True(t, draft.PickupDate.IsZero())
	assert.False(t, draft.PickupTimeSlot.IsSet())
	assert.Equal(t, "Baccalà alla Vicentina", draft.ProductName)

	require.NoError(t, e.Dismiss())
	assert.Equal(t, domain.StatusIdle, e.Status())
	assert.Nil(t, e.Receipt())
}

func TestSubmit_GatewayErrorPreservesDraft(t *testing.T) {
	gw := &fakeGateway{err: errors.New("telegram: 401 Unauthorized")}
	e := newTestEngine(gw)

	require.NoError(t, e.SelectProduct("mantecato"))
	fillValidDraft(t, e)
	e.SetPhone("+39 041 000000")
	e.SetNotes("anche due limoni")
	require.NoError(t, e.SetManualGrams(350))
	before := e.State()

	receipt, err := e.Submit(context.Background())
	assert.Nil(t, receipt)
	require.ErrorIs(t, err, ErrGateway)
	assert.Equal(t, domain.StatusError, e.Status())
	assert.Error(t, e.LastError())

	after := e.State()
	after.Status = before.Status
	assert.Equal(t, before, after)

	t.Run("resubmit from error", func(t *testing.T) {
		gw.err = nil
		_, err := e.Submit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.StatusSuccess, e.Status())
		assert.Equal(t, 2, gw.callCount())
	})
}

func TestSubmit_NoGatewayIsAnError(t *testing.T) {
	e := newTestEngine(nil)
	fillValidDraft(t, e)

	_, err := e.Submit(context.Background())
	require.ErrorIs(t, err, ErrGateway)
	assert.ErrorIs(t, e.LastError(), ErrGatewayNotConfigured)
	assert.Equal(t, domain.StatusError, e.Status())
	assert.Equal(t, "Mario", e.Draft().FirstName)
}

func TestSubmit_RejectsSecondSubmitWhilePending(t *testing.T) {
	gw := &fakeGateway{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	e := newTestEngine(gw)
	fillValidDraft(t, e)

	done := make(chan error, 1)
	go func() {
		_, err := e.Submit(context.Background())
		done <- err
	}()

	<-gw.started
	assert.Equal(t, domain.StatusPending, e.Status())

	_, err := e.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(gw.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, gw.callCount())
	assert.Equal(t, domain.StatusSuccess, e.Status())
}

func TestSubmit_TimeoutEndsInError(t *testing.T) {
	gw := &fakeGateway{release: make(chan struct{})}
	settings := DefaultSettings()
	settings.SubmitTimeout = 20 * time.Millisecond
	e := NewEngine(settings, gw, &fixedClock{now: testToday}, nil)
	fillValidDraft(t, e)

	_, err := e.Submit(context.Background())
	require.ErrorIs(t, err, ErrGateway)
	assert.ErrorIs(t, e.LastError(), context.DeadlineExceeded)
	assert.Equal(t, domain.StatusError, e.Status())
}

func TestDismiss_OnlyFromSuccess(t *testing.T) {
	e := newTestEngine(&fakeGateway{})
	assert.ErrorIs(t, e.Dismiss(), ErrInvalidTransition)
}

func TestSubmit_RejectedFromSuccess(t *testing.T) {
	gw := &fakeGateway{}
	e := newTestEngine(gw)
	fillValidDraft(t, e)

	_, err := e.Submit(context.Background())
	require.NoError(t, err)

	// поля заполнены заново без Dismiss
	fillValidDraft(t, e)
	receipt, err := e.Submit(context.Background())
	assert.Nil(t, receipt)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, OutcomeInvalid, Outcome(err))
	assert.Equal(t, domain.StatusSuccess, e.Status())
	assert.Equal(t, 1, gw.callCount())

	require.NoError(t, e.Dismiss())
	fillValidDraft(t, e)
	_, err = e.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, gw.callCount())
}

func TestInFlight_AcquireRelease(t *testing.T) {
	f := NewInFlight()

	release, err := f.Acquire("form-1")
	require.NoError(t, err)

	_, err = f.Acquire("form-1")
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	other, err := f.Acquire("form-2")
	require.NoError(t, err)
	other()

	release()
	release()

	again, err := f.Acquire("form-1")
	require.NoError(t, err)
	again()

	_, err = f.Acquire("")
	assert.NoError(t, err)
	_, err = f.Acquire("")
	assert.NoError(t, err)
}

func TestInFlight_SubmitAcrossEngines(t *testing.T) {
	gw := &fakeGateway{
		started: make(chan struct{}, 2),
		release: make(chan struct{}),
	}
	f := NewInFlight()

	first := newTestEngine(gw)
	fillValidDraft(t, first)
	second := newTestEngine(gw)
	fillValidDraft(t, second)

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background(), first, "form-1")
		done <- err
	}()
	<-gw.started

	_, err := f.Submit(context.Background(), second, "form-1")
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.Equal(t, OutcomeInFlight, Outcome(err))
	assert.Equal(t, domain.StatusIdle, second.Status())

	close(gw.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, gw.callCount())

	// после завершения тот же токен снова свободен
	_, err = f.Submit(context.Background(), second, "form-1")
	require.NoError(t, err)
	assert.Equal(t, 2, gw.callCount())
}

func TestRestore_Normalizes(t *testing.T) {
	e := newTestEngine(&fakeGateway{})

	err := e.Restore(State{
		ProductID:    "mantecato",
		Mode:         domain.ModeByPeople,
		PersonCount:  75,
		Draft:        domain.ReservationDraft{ProductName: "forged", FirstName: "Anna", Grams: 1},
		WeekStart:    domain.NewDate(2025, time.June, 19),
		CalendarOpen: true,
		Status:       domain.StatusPending,
	})
	require.NoError(t, err)

	assert.Equal(t, "Baccalà Mantecato", e.Draft().ProductName)
	assert.Equal(t, 50, e.PersonCount())
	assert.Equal(t, 10000, e.Grams())
	assert.Equal(t, domain.NewDate(2025, time.June, 16), e.WeekStart())
	assert.True(t, e.IsCalendarOpen())
	assert.Equal(t, domain.StatusIdle, e.Status())

	e.ClickOutside()
	assert.False(t, e.IsCalendarOpen())

	assert.ErrorIs(t, e.Restore(State{ProductID: "nope"}), ErrUnknownProduct)
	assert.Equal(t, "mantecato", e.Product().ID)
}

func TestRestore_KeepsManualGrams(t *testing.T) {
	e := newTestEngine(&fakeGateway{})

	require.NoError(t, e.Restore(State{
		Mode:        domain.ModeManual,
		PersonCount: 3,
		Draft:       domain.ReservationDraft{Grams: 1250},
	}))

	assert.Equal(t, domain.ModeManual, e.Mode())
	assert.Equal(t, 1250, e.Grams())
	assert.Equal(t, "vicentina", e.Product().ID)
	assert.Equal(t, domain.NewDate(2025, time.June, 9), e.WeekStart())
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, Outcome(nil))
	assert.Equal(t, OutcomeInvalid, Outcome(&ValidationError{Fields: []string{FieldFirstName}}))
	assert.Equal(t, OutcomeInvalid, Outcome(ErrDateInPast))
	assert.Equal(t, OutcomeInFlight, Outcome(ErrSubmissionInFlight))
	assert.Equal(t, OutcomeGatewayError, Outcome(fmt.Errorf("%w: boom", ErrGateway)))
}
