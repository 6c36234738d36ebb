package interpreter

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletion_FirstEventWins(t *testing.T) {
	first := errors.New("first")

	c := NewCompletion()
	assert.NoError(t, c.Err())
	assert.True(t, c.Reject(first))
	assert.False(t, c.Reject(errors.New("second")))
	assert.False(t, c.Resolve())

	<-c.Done()
	assert.Equal(t, first, c.Err())
}

func TestCompletion_ResolveThenReject(t *testing.T) {
	c := NewCompletion()
	assert.True(t, c.Resolve())
	assert.False(t, c.Reject(errors.New("late")))
	<-c.Done()
	assert.NoError(t, c.Err())
}

func TestCompletion_Concurrent(t *testing.T) {
	c := NewCompletion()
	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Reject(errors.New("x")) {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, winners)
}
