package store_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formcheck/formcheck/pkg/store"
)

func TestStore(t *testing.T) {
	t.Parallel()
	t.Run("Get returns the initial value", func(t *testing.T) {
		s := store.New(42)
		assert.Equal(t, 42, s.Get())
	})

	t.Run("Set replaces the value and notifies", func(t *testing.T) {
		s := store.New("a")
		var seen []string
		s.Subscribe(func(v string) { seen = append(seen, v) })

		s.Set("b")
		s.Set("c")

		assert.Equal(t, "c", s.Get())
		assert.Equal(t, []string{"b", "c"}, seen)
	})

	t.Run("Update transforms the current value", func(t *testing.T) {
		s := store.New(10)
		s.Update(func(v int) int { return v * 2 })
		assert.Equal(t, 20, s.Get())
	})

	t.Run("cancel stops notifications and is idempotent", func(t *testing.T) {
		s := store.New(0)
		calls := 0
		cancel := s.Subscribe(func(int) { calls++ })

		s.Set(1)
		cancel()
		cancel()
		s.Set(2)

		assert.Equal(t, 1, calls)
	})

	t.Run("subscribers may call back into the store", func(t *testing.T) {
		s := store.New(1)
		var observed int
		s.Subscribe(func(int) { observed = s.Get() })
		s.Set(7)
		assert.Equal(t, 7, observed)
	})

	t.Run("concurrent updates are serialized", func(t *testing.T) {
		s := store.New(0)
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.Update(func(v int) int { return v + 1 })
			}()
		}
		wg.Wait()
		assert.Equal(t, 100, s.Get())
	})
}
