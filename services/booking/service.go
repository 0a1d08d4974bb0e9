package booking

import (
	"context"
	"sync"
	"time"

	bookingRepo "urbanauto/database/repository/booking"
	"urbanauto/models"
	"urbanauto/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation. The cache is an
// immutable snapshot slice swapped wholesale under the mutex: no operation
// mutates a published snapshot in place, so concurrent refreshes can only
// race whole snapshots (last writer wins), never interleave fields.
//
// No operation speculatively removes or mutates a cached booking before
// remote confirmation. All removal and creation is confirm-then-reconcile:
// the cache never diverges from the remote store beyond the window of one
// in-flight mutating call.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Identity IdentitySource

	mu       sync.RWMutex
	snapshot []models.Booking
}

// NewDefaultBookingService builds the booking service.
func NewDefaultBookingService(repo bookingRepo.BookingRepository, ids IdentitySource) *DefaultBookingService {
	return &DefaultBookingService{Repo: repo, Identity: ids}
}

// Refresh replaces the entire cache with the remote set filtered to the
// current owner, newest created first. No-op when anonymous.
func (s *DefaultBookingService) Refresh(ctx context.Context) error {
	owner := s.Identity.Current()
	if owner == nil {
		return nil
	}

	list, err := s.Repo.ListByUser(ctx, owner.ID)
	if err != nil {
		return errProvider("failed to load bookings", err)
	}

	s.swap(list)
	return nil
}

// Bookings returns a copy of the cached snapshot.
func (s *DefaultBookingService) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// AddBooking persists a new Pending booking. The cache is updated from the
// server-returned canonical record when available, otherwise reconciled with
// a full refresh. On failure the cache is left unchanged.
func (s *DefaultBookingService) AddBooking(ctx context.Context, req Request) (*models.Booking, error) {
	owner := s.Identity.Current()
	if owner == nil {
		return nil, errNotLoggedIn()
	}

	b := models.Booking{
		ID:                uuid.New().String(),
		UserID:            owner.ID,
		ServiceID:         req.ServiceID,
		ServiceName:       req.ServiceName,
		VehicleType:       req.VehicleType,
		VehicleNumber:     req.VehicleNumber,
		Address:           req.Address,
		PreferredDateTime: req.PreferredDateTime,
		BookingDate:       NormalizeBookingDate(req.PreferredDateTime),
		Notes:             req.Notes,
		Status:            models.StatusPending,
		TotalAmount:       req.TotalAmount,
		CreatedAt:         time.Now(),
	}

	created, err := s.Repo.Insert(ctx, &b)
	if err != nil {
		return nil, errProvider("failed to create booking", err)
	}

	if created != nil {
		s.prepend(*created)
		return created, nil
	}

	// The insert landed but the canonical record never came back; reconcile
	// from the source of truth instead of trusting the client-submitted one.
	if err := s.Refresh(ctx); err != nil {
		utils.GetLogger().Error("AddBooking: reconcile refresh failed", zap.Error(err))
	}
	return nil, nil
}

// CancelBooking deletes the remote record, then reconciles with a full
// refresh. Nothing is removed optimistically: if the remote delete fails, the
// cache stays as of the last successful refresh. The remote store is the
// authority on ownership and status; there is no client-side re-check.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id string) error {
	owner := s.Identity.Current()
	if owner == nil {
		return errNotLoggedIn()
	}

	if err := s.Repo.Delete(ctx, id, owner.ID); err != nil {
		return errProvider("failed to cancel booking", err)
	}

	if err := s.Refresh(ctx); err != nil {
		// The delete is confirmed; a failed refresh only delays reconciliation.
		utils.GetLogger().Error("CancelBooking: reconcile refresh failed", zap.Error(err))
	}
	return nil
}

// RescheduleBooking rewrites the preferred date/time fields only, with the
// same normalization and reconcile discipline as AddBooking.
func (s *DefaultBookingService) RescheduleBooking(ctx context.Context, id, newDateTime string) error {
	owner := s.Identity.Current()
	if owner == nil {
		return errNotLoggedIn()
	}

	updated, err := s.Repo.UpdateSchedule(ctx, id, owner.ID, newDateTime, NormalizeBookingDate(newDateTime))
	if err != nil {
		return errProvider("failed to reschedule booking", err)
	}

	if updated != nil {
		s.replace(*updated)
		return nil
	}
	if err := s.Refresh(ctx); err != nil {
		utils.GetLogger().Error("RescheduleBooking: reconcile refresh failed", zap.Error(err))
	}
	return nil
}

// Clear drops the cached snapshot.
func (s *DefaultBookingService) Clear() {
	s.swap(nil)
}

// swap publishes a new snapshot wholesale.
func (s *DefaultBookingService) swap(list []models.Booking) {
	s.mu.Lock()
	s.snapshot = list
	s.mu.Unlock()
}

// prepend publishes a new snapshot with the confirmed record first.
func (s *DefaultBookingService) prepend(b models.Booking) {
	s.mu.Lock()
	next := make([]models.Booking, 0, len(s.snapshot)+1)
	next = append(next, b)
	next = append(next, s.snapshot...)
	s.snapshot = next
	s.mu.Unlock()
}

// replace publishes a new snapshot with the confirmed record swapped in.
func (s *DefaultBookingService) replace(b models.Booking) {
	s.mu.Lock()
	next := make([]models.Booking, len(s.snapshot))
	copy(next, s.snapshot)
	for i := range next {
		if next[i].ID == b.ID {
			next[i] = b
			break
		}
	}
	s.snapshot = next
	s.mu.Unlock()
}
