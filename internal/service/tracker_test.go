package service

import (
	"testing"
	"time"

	"deligo/internal/domain"
	"deligo/internal/repository/memory"
	"deligo/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerService_TickAdvancesActiveOrders(t *testing.T) {
	sessions := memory.NewSessionStore()
	_, err := sessions.Update(testChatID, func(s domain.AppState) (domain.AppState, error) {
		s.Orders = []domain.Order{
			testutil.NewTestOrder("o-active", domain.OrderStatusPlaced, 12000),
			testutil.NewTestOrder("o-done", domain.OrderStatusDelivered, 8000),
			testutil.NewTestOrder("o-gone", domain.OrderStatusCancelled, 5000),
		}
		return s, nil
	})
	require.NoError(t, err)

	tracker := NewTrackerService(sessions, time.Minute, testutil.NewTestLogger())

	require.NoError(t, tracker.Tick())

	state, err := sessions.Get(testChatID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, state.Orders[0].Status)
	assert.Equal(t, domain.OrderStatusDelivered, state.Orders[1].Status, "terminal orders stay put")
	assert.Equal(t, domain.OrderStatusCancelled, state.Orders[2].Status)
}

func TestTrackerService_TickWalksFullLifecycle(t *testing.T) {
	sessions := memory.NewSessionStore()
	_, err := sessions.Update(testChatID, func(s domain.AppState) (domain.AppState, error) {
		s.Orders = []domain.Order{testutil.NewTestOrder("o1", domain.OrderStatusPlaced, 12000)}
		return s, nil
	})
	require.NoError(t, err)

	tracker := NewTrackerService(sessions, time.Minute, testutil.NewTestLogger())

	want := []domain.OrderStatus{
		domain.OrderStatusConfirmed,
		domain.OrderStatusPreparing,
		domain.OrderStatusReady,
		domain.OrderStatusDelivered,
		domain.OrderStatusDelivered, // extra ticks change nothing
	}
	for _, expected := range want {
		require.NoError(t, tracker.Tick())
		state, err := sessions.Get(testChatID)
		require.NoError(t, err)
		assert.Equal(t, expected, state.Orders[0].Status)
	}
}

func TestTrackerService_EmptyStoreTicks(t *testing.T) {
	tracker := NewTrackerService(memory.NewSessionStore(), time.Minute, testutil.NewTestLogger())
	assert.NoError(t, tracker.Tick())
}
