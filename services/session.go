package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yeremiapane/restaurant-site/models"
	"github.com/yeremiapane/restaurant-site/utils"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrSessionNotFound = errors.New("session not found")

	ErrBookingDateRequired = errors.New("select a date first")
	ErrBookingTimeRequired = errors.New("select a time first")
	ErrInvalidBookingDate  = errors.New("booking date is not a valid date")
	ErrUnknownTimeSlot     = errors.New("time is not an available slot for this date")
	ErrInvalidPartySize    = errors.New("party size is not one of the available options")
	ErrIncompleteBooking   = errors.New("date, time and party size are required")
	ErrBookingDateExpired  = errors.New("booking date is outside the booking window")
)

// Session menyimpan state browsing dan ordering milik satu pengunjung
type Session struct {
	ID        string
	CreatedAt time.Time

	mu               sync.Mutex
	filters          models.FilterState
	cart             models.Cart
	summary          *models.OrderSummary
	confirmationOpen bool
	booking          models.BookingForm
	lastBooking      *models.BookingConfirmation
	lastSeen         time.Time
	now              func() time.Time
}

func NewSession(id string, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	created := now()
	return &Session{
		ID:        id,
		CreatedAt: created,
		filters:   models.NewFilterState(),
		cart:      models.Cart{},
		lastSeen:  created,
		now:       now,
	}
}

// LastSeen is the last time the session was looked up through the store.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(at time.Time) {
	s.mu.Lock()
	s.lastSeen = at
	s.mu.Unlock()
}

func (s *Session) Filters() models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

func (s *Session) SetQuery(query string) models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = SetQuery(s.filters, query)
	return s.filters
}

func (s *Session) SetVeg(veg models.VegFilter) models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = SetVeg(s.filters, veg)
	return s.filters
}

func (s *Session) ToggleVeg(category models.VegFilter) models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = ToggleVeg(s.filters, category)
	return s.filters
}

// Cart returns a copy of the current cart.
func (s *Session) Cart() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

func (s *Session) AddItem(id uint) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = AddItem(s.cart, id)
	return s.cart.Clone()
}

func (s *Session) UpdateItem(id uint, qty int) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = UpdateItem(s.cart, id, qty)
	return s.cart.Clone()
}

// StepItem applies a stepper press to the quantity of id and stores the
// clamped result through UpdateItem.
func (s *Session) StepItem(id uint, delta, min, max int) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	qty := StepQuantity(s.cart[id], delta, min, max)
	s.cart = UpdateItem(s.cart, id, qty)
	return s.cart.Clone()
}

func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = ClearCart(s.cart)
}

// PlaceOrder snapshots the cart, records the snapshot, clears the cart and
// opens the confirmation, in that order. On error nothing is mutated.
func (s *Session) PlaceOrder(catalog CatalogReader) (models.OrderSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.IsEmpty() {
		return models.OrderSummary{}, ErrEmptyCart
	}

	summary := BuildOrderSummary(catalog, s.cart, s.now())
	s.summary = &summary
	s.cart = ClearCart(s.cart)
	s.confirmationOpen = true

	utils.InfoLogger.Printf("Order placed in session %s: %d items, total %s",
		s.ID, len(summary.Items), utils.FormatRupees(summary.Total))
	return summary, nil
}

// Confirmation returns the recorded summary while the confirmation is open.
func (s *Session) Confirmation() (models.OrderSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.confirmationOpen || s.summary == nil {
		return models.OrderSummary{}, false
	}
	return *s.summary, true
}

func (s *Session) CloseConfirmation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirmationOpen = false
	s.summary = nil
}

func (s *Session) Booking() models.BookingForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.booking
}

func (s *Session) SelectBookingDate(date string) models.BookingForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.booking = SelectDate(s.booking, date)
	return s.booking
}

// SelectBookingTime stores slot only if it belongs to the slot set of the
// date currently on the form. Check and write happen under one lock so a
// concurrent date change cannot leave a time from another day's slots.
func (s *Session) SelectBookingTime(slot string) (models.BookingForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.booking.Date == "" {
		return s.booking, ErrBookingDateRequired
	}
	date, err := ParseBookingDate(s.booking.Date)
	if err != nil {
		return s.booking, ErrInvalidBookingDate
	}
	if !HasSlot(TimeSlots(date), slot) {
		return s.booking, ErrUnknownTimeSlot
	}

	s.booking = SelectTime(s.booking, slot)
	return s.booking, nil
}

// SelectPartySize requires a time on the form and a size in [MinPartySize, MaxPartySize].
func (s *Session) SelectPartySize(size int) (models.BookingForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.booking.Time == "" {
		return s.booking, ErrBookingTimeRequired
	}
	if size < MinPartySize || size > MaxPartySize {
		return s.booking, ErrInvalidPartySize
	}

	s.booking = SelectPartySize(s.booking, size)
	return s.booking, nil
}

// SubmitBooking confirms a complete form whose date is still inside the
// booking window at now. Otherwise nothing changes and the assigner is not
// consulted.
func (s *Session) SubmitBooking(assigner TableAssigner, now time.Time, windowMonths int) (models.BookingConfirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.booking.Complete() {
		return models.BookingConfirmation{}, ErrIncompleteBooking
	}
	date, err := ParseBookingDate(s.booking.Date)
	if err != nil {
		return models.BookingConfirmation{}, ErrInvalidBookingDate
	}
	// form bisa dibiarkan terbuka melewati tengah malam
	if !InBookingRange(date, now, windowMonths) {
		return models.BookingConfirmation{}, ErrBookingDateExpired
	}

	confirmation, _ := SubmitBooking(s.booking, assigner, now)
	s.lastBooking = &confirmation
	return confirmation, nil
}

func (s *Session) LastBooking() (models.BookingConfirmation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastBooking == nil {
		return models.BookingConfirmation{}, false
	}
	return *s.lastBooking, true
}

// SessionStore adalah pemilik semua session in-memory. Session yang tidak
// dipakai lebih lama dari ttl dianggap selesai dan dihapus.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewSessionStore creates a store whose sessions expire after ttl without a
// lookup. A ttl <= 0 keeps sessions for the life of the store.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (st *SessionStore) Create() *Session {
	session := NewSession(uuid.NewString(), st.now)

	st.mu.Lock()
	st.sessions[session.ID] = session
	st.mu.Unlock()

	utils.InfoLogger.Printf("New session created: %s", session.ID)
	return session
}

func (st *SessionStore) expired(session *Session, now time.Time) bool {
	return st.ttl > 0 && now.Sub(session.LastSeen()) > st.ttl
}

// Get returns a live session and refreshes its idle timer. An expired
// session is removed and reported as ErrSessionNotFound.
func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	session, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	now := st.now()
	if st.expired(session, now) {
		st.mu.Lock()
		if st.sessions[id] == session {
			delete(st.sessions, id)
		}
		st.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	session.touch(now)
	return session, nil
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes every expired session and returns how many were removed.
func (st *SessionStore) Sweep() int {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, session := range st.sessions {
		if st.expired(session, now) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep on every tick until Stop is called.
func (st *SessionStore) StartSweeper(interval time.Duration) {
	go func() {
		defer close(st.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if removed := st.Sweep(); removed > 0 {
					utils.InfoLogger.Printf("Expired %d idle sessions (%d active)", removed, st.Len())
				}
			case <-st.stopChan:
				return
			}
		}
	}()
}

// Stop halts the sweeper. It is safe to call more than once, and before
// StartSweeper.
func (st *SessionStore) Stop() {
	st.stopOnce.Do(func() {
		close(st.stopChan)
	})
}

// Done is closed once the sweeper goroutine has exited.
func (st *SessionStore) Done() <-chan struct{} {
	return st.done
}
