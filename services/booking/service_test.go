package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bookingRepo "urbanauto/database/repository/booking"
	"urbanauto/models"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Insert(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, booking)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *mockBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	if l := args.Get(0); l != nil {
		return l.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) UpdateSchedule(ctx context.Context, id, userID, preferredDateTime string, bookingDate time.Time) (*models.Booking, error) {
	args := m.Called(ctx, id, userID, preferredDateTime, bookingDate)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

type staticIdentity struct {
	user *models.User
}

func (s *staticIdentity) Current() *models.User {
	return s.user
}

func testUser() *models.User {
	return &models.User{ID: "user-1", Name: "Asha", Email: "asha@example.com"}
}

func seededBookings() []models.Booking {
	now := time.Now()
	return []models.Booking{
		{ID: "b-2", UserID: "user-1", ServiceName: "Interior Detailing", Status: models.StatusPending, CreatedAt: now},
		{ID: "b-1", UserID: "user-1", ServiceName: "Car Wash", Status: models.StatusConfirmed, CreatedAt: now.Add(-time.Hour)},
	}
}

func TestRefreshIsNoOpWhenAnonymous(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewDefaultBookingService(repo, &staticIdentity{user: nil})

	require.NoError(t, svc.Refresh(context.Background()))
	assert.Empty(t, svc.Bookings())
	repo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

func TestRefreshReplacesSnapshot(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewDefaultBookingService(repo, &staticIdentity{user: testUser()})

	repo.On("ListByUser", mock.Anything, "user-1").Return(seededBookings(), nil).Once()
	require.NoError(t, svc.Refresh(context.Background()))

	got := svc.Bookings()
	require.Len(t, got, 2)
	assert.Equal(t, "b-2", got[0].ID)
	assert.Equal(t, "b-1", got[1].ID)
}

func TestAddBookingRequiresIdentity(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewDefaultBookingService(repo, &staticIdentity{user: nil})

	_, err := svc.AddBooking(context.Background(), Request{ServiceID: "car-wash"})
	var bErr *Error
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, CodeNotLoggedIn, bErr.Code)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAddBookingCachesCanonicalRecordFirst(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewDefaultBookingService(repo, &staticIdentity{user: testUser()})

	repo.On("ListByUser", mock.Anything, "user-1").Return(seededBookings(), nil).Once()
	require.NoError(t, svc.Refresh(context.Background()))

	canonical := &models.Booking{
		ID: "b-3", UserID: "user-1", ServiceName: "Ceramic Coating",
		Status: models.StatusPending, CreatedAt: time.Now(),
	}
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
		return b.UserID == "user-1" && b.Status == models.StatusPending && b.ID != ""
	})).Return(canonical, nil).Once()

	created, err := svc.AddBooking(context.Background(), Request{
		ServiceID: "ceramic-coating", ServiceName: "Ceramic Coating",
		VehicleType: "Sedan", Address: "12 MG Road", PreferredDateTime: "2026-09-10 10:00",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "b-3", created.ID)

	got := svc.Bookings()
	require.Len(t, got, 3)
	assert.Equal(t, "b-3", got[0].ID)
}

func TestAddBookingFailureLeavesCacheUntouched(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewDefaultBookingService(repo, &staticIdentity{user: testUser()})

	repo.On("ListByUser", mock.Anything, "user-1").Return(seededBookings(), nil).Once()
	require.NoError(t, svc.Refresh(context.Background()))

	repo.On("Insert", mock.Anything, mock.Anything).Return(nil, errors.New("store unavailable")).Once()

	_, err := svc.AddBooking(context.Background(), Request{ServiceID: "car-wash", VehicleType: "SUV"})
	var bErr *Error
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, CodeProvider, bErr.Code)

	got := svc.Bookings()
	require.Len(t, got, 2)
	assert.Equal(t, "b-2", got[0].ID)
}

func TestAddBookingReconcilesWhenCanonicalMissing(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewDefaultBookingService(repo, &staticIdentity{user: testUser()})

	repo.On("Insert", mock.Anything, mock.Anything).Return(nil, nil).Once()
	refreshed := seededBookings()
	repo.On("ListByUser", mock.Anything, "user-1").Return(refreshed, nil).Once()

	created, err := svc.AddBooking(context.Background(), Request{ServiceID: "car-wash", VehicleType: "Sedan"})
	require.NoError(t, err)
	assert.Nil(t, created)
	assert.Len(t, svc.Bookings(), 2)
	repo.AssertExpectations(t)
}

func TestCancelBookingNotOwnedLeavesCacheUntouched(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewDefaultBookingService(repo, &staticIdentity{user: testUser()})

	repo.On("ListByUser", mock.Anything, "user-1").Return(seededBookings(), nil).Once()
	require.NoError(t, svc.Refresh(context.Background()))

	repo.On("Delete", mock.Anything, "b-9", "user-1").Return(bookingRepo.ErrNotFound).Once()

	err := svc.CancelBooking(context.Background(), "b-9")
	var bErr *Error
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, CodeProvider, bErr.Code)
	assert.Len(t, svc.Bookings(), 2)
}

func TestCancelBookingReconcilesCache(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewDefaultBookingService(repo, &staticIdentity{user: testUser()})

	seeded := seededBookings()
	repo.On("ListByUser", mock.Anything, "user-1").Return(seeded, nil).Once()
	require.NoError(t, svc.Refresh(context.Background()))

	repo.On("Delete", mock.Anything, "b-2", "user-1").Return(nil).Once()
	repo.On("ListByUser", mock.Anything, "user-1").Return(seeded[1:], nil).Once()

	require.NoError(t, svc.CancelBooking(context.Background(), "b-2"))

	got := svc.Bookings()
	require.Len(t, got, 1)
	assert.Equal(t, "b-1", got[0].ID)
}

func TestRescheduleReplacesCachedRecord(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewDefaultBookingService(repo, &staticIdentity{user: testUser()})

	repo.On("ListByUser", mock.Anything, "user-1").Return(seededBookings(), nil).Once()
	require.NoError(t, svc.Refresh(context.Background()))

	updated := &models.Booking{ID: "b-1", UserID: "user-1", PreferredDateTime: "2026-09-15 14:00"}
	repo.On("UpdateSchedule", mock.Anything, "b-1", "user-1", "2026-09-15 14:00", mock.Anything).
		Return(updated, nil).Once()

	require.NoError(t, svc.RescheduleBooking(context.Background(), "b-1", "2026-09-15 14:00"))

	got := svc.Bookings()
	require.Len(t, got, 2)
	assert.Equal(t, "2026-09-15 14:00", got[1].PreferredDateTime)
}

func TestClearDropsSnapshot(t *testing.T) {
	repo := new(mockBookingRepo)
	svc := NewDefaultBookingService(repo, &staticIdentity{user: testUser()})

	repo.On("ListByUser", mock.Anything, "user-1").Return(seededBookings(), nil).Once()
	require.NoError(t, svc.Refresh(context.Background()))
	require.NotEmpty(t, svc.Bookings())

	svc.Clear()
	assert.Empty(t, svc.Bookings())
}
