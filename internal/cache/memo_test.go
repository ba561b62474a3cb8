package cache

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoComputesOncePerKey(t *testing.T) {
	m := NewMemo[int]()
	calls := 0
	compute := func() (int, error) {
		calls++
		return calls * 10, nil
	}

	v, hit, err := m.Get("a", compute)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 10, v)

	v, hit, err = m.Get("a", compute)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 10, v)

	v, _, _ = m.Get("b", compute)
	assert.Equal(t, 20, v)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, m.Len())
}

func TestMemoDoesNotStoreErrors(t *testing.T) {
	m := NewMemo[string]()
	boom := errors.New("boom")

	_, _, err := m.Get("k", func() (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, m.Len())

	v, hit, err := m.Get("k", func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "ok", v)
}

func TestMemoConcurrentGet(t *testing.T) {
	m := NewMemo[int]()
	var mu sync.Mutex
	calls := 0

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _ = m.Get("shared", func() (int, error) {
				mu.Lock()
				calls++
				mu.Unlock()
				return 1, nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, calls)
}

func TestHasherSeparatesParts(t *testing.T) {
	a := NewHasher().AddString("ab").AddString("c").Key()
	b := NewHasher().AddString("a").AddString("bc").Key()
	c := NewHasher().AddString("ab").AddString("c").Key()

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, c)
	assert.Len(t, a, 64)
}
