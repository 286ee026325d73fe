package parallel

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEachVisitsEveryIndex(t *testing.T) {
	var out = make([]int, 100)
	err := ForEach(len(out), 7, func(i int) error {
		out[i] = i * i
		return nil
	})
	require.NoError(t, err)
	for i, v := range out {
		assert.Equal(t, i*i, v)
	}
}

func TestForEachRespectsLimit(t *testing.T) {
	var running, peak int32
	err := ForEach(50, 3, func(i int) error {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		atomic.AddInt32(&running, -1)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, atomic.LoadInt32(&peak) <= 3)
}

func TestForEachError(t *testing.T) {
	boom := errors.New("boom")
	err := ForEach(10, 1, func(i int) error {
		if i == 4 {
			return boom
		}
		return nil
	})
	assert.Equal(t, boom, err)
	assert.NoError(t, ForEach(0, 4, func(int) error { return boom }))
}

func TestWorkers(t *testing.T) {
	assert.Equal(t, 5, Workers(5))
	assert.True(t, Workers(0) >= 1)
	assert.NotEmpty(t, CPU())
}
