package tasks

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerCompletes(t *testing.T) {
	r := NewRunner()
	var done atomic.Bool

	require.NoError(t, r.Run("res-1", 10*time.Millisecond, func() { done.Store(true) }))
	assert.True(t, r.InFlight("res-1"))

	require.Eventually(t, done.Load, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return !r.InFlight("res-1") }, time.Second, 5*time.Millisecond)
}

func TestRunnerRejectsSecondOperation(t *testing.T) {
	r := NewRunner()

	require.NoError(t, r.Run("res-1", 50*time.Millisecond, func() {}))
	err := r.Run("res-1", 50*time.Millisecond, func() {})
	assert.ErrorIs(t, err, ErrOperationInFlight)
}

func TestRunnerIndependentResources(t *testing.T) {
	r := NewRunner()

	require.NoError(t, r.Run("res-1", 50*time.Millisecond, func() {}))
	require.NoError(t, r.Run("res-2", 50*time.Millisecond, func() {}))
	assert.True(t, r.InFlight("res-1"))
	assert.True(t, r.InFlight("res-2"))
}

func TestRunnerAllowsFollowUpAfterCompletion(t *testing.T) {
	r := NewRunner()
	var count atomic.Int32

	require.NoError(t, r.Run("res-1", 5*time.Millisecond, func() { count.Add(1) }))
	require.Eventually(t, func() bool { return !r.InFlight("res-1") }, time.Second, time.Millisecond)

	require.NoError(t, r.Run("res-1", 5*time.Millisecond, func() { count.Add(1) }))
	require.Eventually(t, func() bool { return count.Load() == 2 }, time.Second, time.Millisecond)
}
