package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/sms-temp/internal/adapters/allocator/simulated"
	"github.com/bnema/sms-temp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreshBootReachesHomeAfterStart(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.shell.Start()

	assert.Equal(t, domain.ScreenSplash, f.shell.Screen())

	f.scheduler.Advance(DefaultSplashDuration)
	assert.Equal(t, domain.ScreenAuth, f.shell.Screen())

	require.True(t, f.shell.Controller().StartSession(context.Background()))
	assert.Equal(t, domain.ScreenMain, f.shell.Screen())
	assert.Equal(t, domain.ViewHome, f.shell.Router().Current())
	assert.True(t, f.store.stored().IsLoggedIn)
}

func TestReturningUserSkipsAuthAfterSplash(t *testing.T) {
	f := newFixture(t, loggedInStore(), nil)
	f.shell.Start()

	assert.Equal(t, domain.ScreenSplash, f.shell.Screen())
	f.scheduler.Advance(DefaultSplashDuration)
	assert.Equal(t, domain.ScreenMain, f.shell.Screen())
}

func TestAllocationScenarioSwitchesToNumbers(t *testing.T) {
	f := newFixture(t, loggedInStore(), nil)
	f.shell.Start()
	f.scheduler.Advance(DefaultSplashDuration)

	require.NoError(t, f.shell.Controller().AllocateNumber(context.Background(), usa))
	f.scheduler.Advance(simulated.DefaultLatency)

	session := f.shell.Controller().Session()
	assert.Regexp(t, `^\+1 \d{3} \d{3} \d{3}$`, session.ActiveNumber.Number)
	assert.Equal(t, "System", session.Messages[0].Sender)
	assert.Equal(t, domain.ViewNumbers, f.shell.Router().Current())
}

func TestShellCloseInvalidatesTimers(t *testing.T) {
	f := newFixture(t, loggedInStore(), nil)
	f.shell.Start()
	f.shell.Toasts().ShowSuccess("hello")

	f.shell.Close()
	assert.Zero(t, f.scheduler.Pending())

	f.scheduler.Advance(time.Minute)
	assert.Equal(t, domain.ScreenSplash, f.shell.Screen())
}

func TestShellNotifiesOnChange(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.shell.Start()
	f.scheduler.Advance(DefaultSplashDuration)
	before := f.changes

	f.shell.Controller().StartSession(context.Background())
	assert.Greater(t, f.changes, before)
}
