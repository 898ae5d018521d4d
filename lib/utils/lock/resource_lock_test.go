package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResourceLock(t *testing.T) {
	t.Run("повторный захват ждет освобождения", func(t *testing.T) {
		l := newResourceLock()
		require.True(t, l.Acquire(context.Background(), "first"))

		acquired := make(chan struct{})
		go func() {
			require.True(t, l.Acquire(context.Background(), "second"))
			close(acquired)
		}()

		select {
		case <-acquired:
			t.Fatal("ресурс получен до освобождения")
		case <-time.After(50 * time.Millisecond):
		}

		l.Release("first")
		select {
		case <-acquired:
		case <-time.After(time.Second):
			t.Fatal("ресурс не получен после освобождения")
		}
		l.Release("second")
		require.Equal(t, 0, l.WaitCount())
	})

	t.Run("stop завершает ожидающих", func(t *testing.T) {
		l := newResourceLock()
		require.True(t, l.Acquire(context.Background(), "holder"))

		var wg sync.WaitGroup
		results := make(chan bool, 3)
		for i := 0; i < 3; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- l.Acquire(context.Background(), "waiter")
			}()
		}

		time.Sleep(50 * time.Millisecond)
		l.Stop()
		wg.Wait()
		close(results)
		for ok := range results {
			require.False(t, ok)
		}
	})

	t.Run("после stop захват невозможен", func(t *testing.T) {
		l := newResourceLock()
		l.Stop()
		require.False(t, l.Acquire(context.Background(), "late"))
	})
}
