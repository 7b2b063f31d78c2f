package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"beautyspa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stageForConfirm(t *testing.T, f *sessionFixture) string {
	t.Helper()
	ctx := context.Background()
	session, err := f.svc.CreateSession(ctx)
	require.NoError(t, err)
	_, err = f.svc.SetSelection(ctx, session.SessionID, defaultSelection(), "")
	require.NoError(t, err)
	_, err = f.svc.ChooseStaff(ctx, session.SessionID, "s1")
	require.NoError(t, err)
	_, err = f.svc.SetCustomer(ctx, session.SessionID, validCustomer())
	require.NoError(t, err)
	return session.SessionID
}

func TestConfirmCreatesAppointment(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	sessionID := stageForConfirm(t, f)

	appt, err := f.svc.Confirm(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, f.store.created, 1)

	assert.Equal(t, "Nguyen Van A", appt.FullName)
	assert.Equal(t, "svc-facial", appt.ServiceID)
	assert.Equal(t, "Facial Treatment", appt.ServiceName)
	assert.Equal(t, "s1", appt.StaffID)
	assert.Equal(t, models.AppointmentPending, appt.Status)
	assert.True(t, appt.IsActive)
	assert.Equal(t, float64(350000), appt.Price)
	assert.Equal(t, time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local), appt.AppointmentDate)
	assert.Equal(t, time.Date(2024, 6, 10, 10, 0, 0, 0, time.Local), appt.EndTime)

	session, err := f.svc.GetSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StageConfirmed, session.Stage)
	assert.Equal(t, appt.ID, session.AppointmentID)
}

func TestConfirmRequiresCustomerInfo(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	session, _ := f.svc.CreateSession(ctx)

	_, err := f.svc.Confirm(ctx, session.SessionID)
	assert.True(t, IsBookingError(err, "invalidStage"))
	assert.Empty(t, f.store.created)
}

func TestConfirmDuplicateWithinCooldown(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	sessionID := stageForConfirm(t, f)

	_, err := f.svc.Confirm(ctx, sessionID)
	require.NoError(t, err)

	// An immediate second submit is rejected locally, before persistence.
	_, err = f.svc.Confirm(ctx, sessionID)
	assert.True(t, IsBookingError(err, "cooldown") || IsBookingError(err, "invalidStage"))
	assert.Len(t, f.store.created, 1)
}

func TestConfirmCooldownBlocksRetryAfterFailure(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	sessionID := stageForConfirm(t, f)

	f.store.createErr = errors.New("db write failed")
	_, err := f.svc.Confirm(ctx, sessionID)
	require.Error(t, err)

	// The cooldown key stays even though the create failed.
	_, err = f.svc.Confirm(ctx, sessionID)
	assert.True(t, IsBookingError(err, "cooldown"))

	// After the window the retry goes through.
	f.store.createErr = nil
	f.redis.FastForward(4 * time.Second)
	appt, err := f.svc.Confirm(ctx, sessionID)
	require.NoError(t, err)
	assert.NotEmpty(t, appt.ID)
	assert.Len(t, f.store.created, 1)
}

func TestConfirmAlreadyConfirmed(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	sessionID := stageForConfirm(t, f)

	_, err := f.svc.Confirm(ctx, sessionID)
	require.NoError(t, err)

	f.redis.FastForward(4 * time.Second)
	_, err = f.svc.Confirm(ctx, sessionID)
	assert.True(t, IsBookingError(err, "invalidStage"))
	assert.Len(t, f.store.created, 1)
}
