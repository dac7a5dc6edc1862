package recommend_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"movierecommender/internal/recommend"

	"github.com/stretchr/testify/assert"
)

func TestFlight(t *testing.T) {
	var f recommend.Flight
	assert.False(t, f.InFlight())

	assert.True(t, f.TryStart())
	assert.True(t, f.InFlight())
	assert.False(t, f.TryStart(), "second start is rejected while in flight")

	f.Done()
	assert.False(t, f.InFlight())
	assert.True(t, f.TryStart())
}

func TestFlightTable_KeysAreIndependent(t *testing.T) {
	table := recommend.NewFlightTable()

	a := table.For("a")
	b := table.For("b")

	assert.True(t, a.TryStart())
	assert.True(t, b.TryStart())
	assert.False(t, table.For("a").TryStart())
	assert.True(t, table.InFlight("a"))
	assert.Equal(t, 2, table.Len())

	a.Done()
	assert.False(t, table.InFlight("a"))
	assert.Equal(t, 1, table.Len())

	b.Done()
	assert.Equal(t, 0, table.Len())
}

func TestFlightTable_OnlyOneConcurrentStartWins(t *testing.T) {
	table := recommend.NewFlightTable()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if table.For("session").TryStart() {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}
