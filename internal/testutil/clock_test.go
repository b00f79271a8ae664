package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock_Frozen(t *testing.T) {
	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	clock := NewFixedClock(base)

	assert.Equal(t, base, clock.Now())
	assert.Equal(t, base, clock.Now(), "repeated reads must not drift")
}

func TestFixedClock_Advance(t *testing.T) {
	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	clock := NewFixedClock(base)

	clock.Advance(48 * time.Hour)
	assert.Equal(t, base.Add(48*time.Hour), clock.Now())

	clock.Advance(-24 * time.Hour)
	assert.Equal(t, base.Add(24*time.Hour), clock.Now())
}

func TestFixedClock_Set(t *testing.T) {
	clock := NewFixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	target := time.Date(2027, 4, 1, 0, 0, 0, 0, time.UTC)
	clock.Set(target)
	assert.Equal(t, target, clock.Now())
}

func TestFixedClock_ConcurrentAccess(t *testing.T) {
	clock := NewFixedClock(time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			clock.Advance(time.Hour)
		}()
		go func() {
			defer wg.Done()
			_ = clock.Now()
		}()
	}
	wg.Wait()

	want := time.Date(2026, 8, 24, 22, 0, 0, 0, time.UTC)
	assert.Equal(t, want, clock.Now())
}
