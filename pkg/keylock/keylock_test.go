package keylock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homework_tracker/pkg/keylock"
)

func TestMap_SerializesSameKey(t *testing.T) {
	locks := keylock.New[string]()
	counter := 0

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("a")
			defer unlock()
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, 0, locks.Len())
}

func TestMap_DistinctKeysDoNotContend(t *testing.T) {
	locks := keylock.New[int]()

	unlockA := locks.Lock(1)
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := locks.Lock(2)
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestMap_LockContextGivesUpWhenContextEnds(t *testing.T) {
	locks := keylock.New[string]()

	unlock := locks.Lock("a")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	waiterUnlock, err := locks.LockContext(ctx, "a")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, waiterUnlock)
	assert.Equal(t, 1, locks.Len())

	unlock()
	assert.Equal(t, 0, locks.Len())

	again, err := locks.LockContext(context.Background(), "a")
	require.NoError(t, err)
	again()
	assert.Equal(t, 0, locks.Len())
}

func TestMap_LockContextAcquiresAfterRelease(t *testing.T) {
	locks := keylock.New[string]()
	unlock := locks.Lock("a")

	acquired := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		u, err := locks.LockContext(ctx, "a")
		if err == nil {
			u()
		}
		acquired <- err
	}()

	time.Sleep(10 * time.Millisecond)
	unlock()

	require.NoError(t, <-acquired)
	assert.Equal(t, 0, locks.Len())
}
