package query

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CollapsesBurst(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var fired int32
	var last int32
	for i := 1; i <= 5; i++ {
		n := int32(i)
		d.Do(func() {
			atomic.AddInt32(&fired, 1)
			atomic.StoreInt32(&last, n)
		})
		time.Sleep(2 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&fired) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(5), atomic.LoadInt32(&last))
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)

	var fired int32
	d.Do(func() { atomic.AddInt32(&fired, 1) })
	d.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
}

func TestDebouncer_DefaultDelay(t *testing.T) {
	d := NewDebouncer(0)
	defer d.Stop()
	assert.Equal(t, DefaultSearchDelay, d.delay)
}
