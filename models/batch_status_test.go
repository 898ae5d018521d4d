package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBatchRunStatusTransitions(t *testing.T) {
	t.Run("заявка одобряется или отклоняется", func(t *testing.T) {
		require.True(t, BatchRunStatusPendingApproval.CanTransit(BatchRunStatusApproved))
		require.True(t, BatchRunStatusPendingApproval.CanTransit(BatchRunStatusRejected))
		require.False(t, BatchRunStatusPendingApproval.CanTransit(BatchRunStatusRunning))
	})

	t.Run("запуск выполняется из pending и approved", func(t *testing.T) {
		require.True(t, BatchRunStatusPending.CanTransit(BatchRunStatusRunning))
		require.True(t, BatchRunStatusApproved.CanTransit(BatchRunStatusRunning))
	})

	t.Run("выполнение завершается успехом или ошибкой", func(t *testing.T) {
		require.True(t, BatchRunStatusRunning.CanTransit(BatchRunStatusCompleted))
		require.True(t, BatchRunStatusRunning.CanTransit(BatchRunStatusFailed))
		require.False(t, BatchRunStatusRunning.CanTransit(BatchRunStatusPending))
	})

	t.Run("отклоненный запуск терминален", func(t *testing.T) {
		require.True(t, BatchRunStatusRejected.IsTerminal())
		for _, to := range []BatchRunStatus{
			BatchRunStatusPending,
			BatchRunStatusPendingApproval,
			BatchRunStatusApproved,
			BatchRunStatusRunning,
			BatchRunStatusCompleted,
			BatchRunStatusFailed,
		} {
			require.False(t, BatchRunStatusRejected.CanTransit(to))
		}
	})

	t.Run("завершенные статусы терминальны", func(t *testing.T) {
		require.True(t, BatchRunStatusCompleted.IsTerminal())
		require.True(t, BatchRunStatusFailed.IsTerminal())
		require.False(t, BatchRunStatusPending.IsTerminal())
	})
}
