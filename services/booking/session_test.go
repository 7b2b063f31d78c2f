package booking

import (
	"context"
	"testing"
	"time"

	"beautyspa/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubResolver struct {
	resolution models.StaffResolution
	// hook runs before returning, letting tests interleave a competing pass.
	hook func()
}

func (s *stubResolver) Resolve(context.Context, ResolveRequest) models.StaffResolution {
	if s.hook != nil {
		s.hook()
	}
	return s.resolution
}

type stubServiceCatalog struct{ services map[string]models.Service }

func (s *stubServiceCatalog) GetByID(_ context.Context, id string) (*models.Service, error) {
	svc, ok := s.services[id]
	if !ok {
		return nil, NewValidationError("unknown service")
	}
	return &svc, nil
}

type stubSlotCatalog struct{ slots map[string]models.TimeSlot }

func (s *stubSlotCatalog) GetByID(_ context.Context, id string) (*models.TimeSlot, error) {
	slot, ok := s.slots[id]
	if !ok {
		return nil, NewValidationError("unknown slot")
	}
	return &slot, nil
}

type stubCapacity struct {
	capacity *models.SlotCapacity
	err      error
}

func (s *stubCapacity) GetSlotCapacity(context.Context, string, string, string) (*models.SlotCapacity, error) {
	return s.capacity, s.err
}

type sessionFixture struct {
	svc      *DefaultBookingSessionService
	resolver *stubResolver
	store    *stubAppointmentStore
	capacity *stubCapacity
	redis    *miniredis.Miniredis
}

func availableCandidate(id string) models.CandidateStaff {
	return models.CandidateStaff{
		Staff:     models.StaffMember{ID: id, FullName: "Staff " + id, IsActive: true},
		Eligible:  true,
		Available: true,
	}
}

func busyCandidate(id string) models.CandidateStaff {
	c := availableCandidate(id)
	c.Available = false
	return c
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	resolver := &stubResolver{resolution: models.StaffResolution{
		Status:         models.ResolutionOK,
		Candidates:     []models.CandidateStaff{availableCandidate("s1"), busyCandidate("s2")},
		AvailableCount: 1,
	}}
	store := &stubAppointmentStore{}
	capacity := &stubCapacity{capacity: &models.SlotCapacity{AvailableSlot: 3, TotalSlot: 5}}

	svc := &DefaultBookingSessionService{
		Resolver: resolver,
		Services: &stubServiceCatalog{services: map[string]models.Service{
			"svc-facial": {ID: "svc-facial", Name: "Facial Treatment", Price: 350000},
		}},
		Slots: &stubSlotCatalog{slots: map[string]models.TimeSlot{
			"slot-9": {SlotID: "slot-9", StartTime: "09:00", EndTime: "10:00", IsActive: true, Capacity: 5},
		}},
		Capacity:        capacity,
		Appointments:    store,
		Presenter:       IdentityOrder{},
		Cache:           client,
		SessionTTL:      30 * time.Minute,
		Cooldown:        3 * time.Second,
		DurationMinutes: 60,
		Logger:          zap.NewNop(),
	}
	return &sessionFixture{svc: svc, resolver: resolver, store: store, capacity: capacity, redis: mr}
}

func defaultSelection() models.BookingSelection {
	return models.BookingSelection{ServiceID: "svc-facial", Date: "2024-06-10", TimeSlotID: "slot-9"}
}

func validCustomer() models.CustomerInfo {
	return models.CustomerInfo{FullName: "Nguyen Van A", PhoneNumber: "0912345678", Email: "a@example.com"}
}

func TestCreateAndGetSession(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	session, err := f.svc.CreateSession(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, models.StageNoSelection, session.Stage)

	got, err := f.svc.GetSession(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, got.SessionID)
}

func TestGetSessionExpired(t *testing.T) {
	f := newSessionFixture(t)
	_, err := f.svc.GetSession(context.Background(), "nope")
	assert.True(t, IsBookingError(err, "sessionNotFound"))
}

func TestSetSelectionResolvesStaffList(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	session, err := f.svc.CreateSession(ctx)
	require.NoError(t, err)

	got, err := f.svc.SetSelection(ctx, session.SessionID, defaultSelection(), "")
	require.NoError(t, err)
	assert.Equal(t, models.StageStaffListReady, got.Stage)
	require.NotNil(t, got.Resolution)
	assert.Equal(t, []string{"s1", "s2"}, candidateIDs(got.Resolution.Candidates))
	assert.Equal(t, 1, got.Resolution.AvailableCount)
	assert.Equal(t, 3, got.Capacity.AvailableSlot)
	assert.Equal(t, uint64(1), got.ResolutionSeq)
}

func TestSetSelectionValidation(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	session, _ := f.svc.CreateSession(ctx)

	_, err := f.svc.SetSelection(ctx, session.SessionID, models.BookingSelection{
		ServiceID: "svc-facial", Date: "10/06/2024", TimeSlotID: "slot-9",
	}, "")
	assert.True(t, IsBookingError(err, "validation"))

	_, err = f.svc.SetSelection(ctx, session.SessionID, models.BookingSelection{
		ServiceID: "no-such", Date: "2024-06-10", TimeSlotID: "slot-9",
	}, "")
	assert.True(t, IsBookingError(err, "validation"))
}

func TestSetSelectionNoAvailableStaffStaysShort(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	session, _ := f.svc.CreateSession(ctx)

	f.resolver.resolution = models.StaffResolution{
		Status:         models.ResolutionOK,
		Candidates:     []models.CandidateStaff{busyCandidate("s1")},
		AvailableCount: 0,
	}
	got, err := f.svc.SetSelection(ctx, session.SessionID, defaultSelection(), "")
	require.NoError(t, err)
	assert.Equal(t, models.StageSelectionMade, got.Stage)
}

func TestSetSelectionCapacityGate(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	session, _ := f.svc.CreateSession(ctx)

	f.capacity.capacity = &models.SlotCapacity{AvailableSlot: 0, TotalSlot: 5}
	got, err := f.svc.SetSelection(ctx, session.SessionID, defaultSelection(), "")
	require.NoError(t, err)
	assert.Equal(t, models.StageSelectionMade, got.Stage)
}

func TestSetSelectionClearsChosenStaff(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	session, _ := f.svc.CreateSession(ctx)

	_, err := f.svc.SetSelection(ctx, session.SessionID, defaultSelection(), "")
	require.NoError(t, err)
	_, err = f.svc.ChooseStaff(ctx, session.SessionID, "s1")
	require.NoError(t, err)

	// Changing the selection invalidates the earlier staff pick.
	got, err := f.svc.SetSelection(ctx, session.SessionID, defaultSelection(), "")
	require.NoError(t, err)
	assert.Empty(t, got.SelectedStaffID)
	assert.Equal(t, uint64(2), got.ResolutionSeq)
}

func TestSetSelectionDiscardsStaleResolution(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	session, _ := f.svc.CreateSession(ctx)

	// While the first pass is resolving, bump the stored sequence the way a
	// competing, newer selection would.
	f.resolver.hook = func() {
		f.resolver.hook = nil
		stored, err := f.svc.load(ctx, session.SessionID)
		require.NoError(t, err)
		stored.ResolutionSeq++
		require.NoError(t, f.svc.save(ctx, stored))
	}

	got, err := f.svc.SetSelection(ctx, session.SessionID, defaultSelection(), "")
	require.NoError(t, err)
	// The stale pass must not publish its list.
	assert.Nil(t, got.Resolution)
	assert.Equal(t, uint64(2), got.ResolutionSeq)
}

func TestChooseStaff(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	session, _ := f.svc.CreateSession(ctx)
	_, err := f.svc.SetSelection(ctx, session.SessionID, defaultSelection(), "")
	require.NoError(t, err)

	got, err := f.svc.ChooseStaff(ctx, session.SessionID, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StageStaffChosen, got.Stage)
	assert.Equal(t, "s1", got.SelectedStaffID)
}

func TestChooseStaffRejectsBusyAndUnknown(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	session, _ := f.svc.CreateSession(ctx)
	_, err := f.svc.SetSelection(ctx, session.SessionID, defaultSelection(), "")
	require.NoError(t, err)

	_, err = f.svc.ChooseStaff(ctx, session.SessionID, "s2")
	assert.True(t, IsBookingError(err, "staffUnavailable"))

	_, err = f.svc.ChooseStaff(ctx, session.SessionID, "ghost")
	assert.True(t, IsBookingError(err, "validation"))
}

func TestChooseStaffRequiresResolvedList(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	session, _ := f.svc.CreateSession(ctx)

	_, err := f.svc.ChooseStaff(ctx, session.SessionID, "s1")
	assert.True(t, IsBookingError(err, "invalidStage"))
}

func TestSetCustomerValidates(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	session, _ := f.svc.CreateSession(ctx)
	_, err := f.svc.SetSelection(ctx, session.SessionID, defaultSelection(), "")
	require.NoError(t, err)
	_, err = f.svc.ChooseStaff(ctx, session.SessionID, "s1")
	require.NoError(t, err)

	for _, bad := range []models.CustomerInfo{
		{FullName: "", PhoneNumber: "0912345678"},
		{FullName: "A", PhoneNumber: "12"},
		{FullName: "A", PhoneNumber: "0912345678", Email: "not-an-email"},
	} {
		_, err := f.svc.SetCustomer(ctx, session.SessionID, bad)
		assert.True(t, IsBookingError(err, "validation"), "%+v", bad)
	}

	got, err := f.svc.SetCustomer(ctx, session.SessionID, validCustomer())
	require.NoError(t, err)
	assert.Equal(t, models.StageCustomerInfo, got.Stage)
}

func TestSetCustomerRequiresChosenStaff(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	session, _ := f.svc.CreateSession(ctx)

	_, err := f.svc.SetCustomer(ctx, session.SessionID, validCustomer())
	assert.True(t, IsBookingError(err, "invalidStage"))
}

func TestCancelSession(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	session, _ := f.svc.CreateSession(ctx)

	require.NoError(t, f.svc.CancelSession(ctx, session.SessionID))
	_, err := f.svc.GetSession(ctx, session.SessionID)
	assert.True(t, IsBookingError(err, "sessionNotFound"))
}

func TestSessionExpiresWithTTL(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	session, _ := f.svc.CreateSession(ctx)

	f.redis.FastForward(31 * time.Minute)
	_, err := f.svc.GetSession(ctx, session.SessionID)
	assert.True(t, IsBookingError(err, "sessionNotFound"))
}
