package guard_test

import (
	"errors"
	"sync"
	"testing"

	"restaurant/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("should validate with a custom error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		assert.NoError(t, g.Validate(errors.New("menu item not constructed")))
	})

	t.Run("should validate with a nil error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		assert.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("should return the given error for a zero-value guard", func(t *testing.T) {
		var g guard.ConstructorGuard
		notConstructed := errors.New("order must be created via NewOrder")

		err := g.Validate(notConstructed)

		assert.Equal(t, notConstructed, err)
	})

	t.Run("should fall back to the default error when none is given", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("should expose a meaningful default error", func(t *testing.T) {
		assert.EqualError(t, guard.ErrDefaultConstructorGuard,
			"object must be created via its constructor")
	})
}

func TestConstructorGuard_EmbeddedInDomainObject(t *testing.T) {
	errMenuItemNotConstructed := errors.New("menu item must be created via newMenuItem")

	type menuItem struct {
		name  string
		price int
		guard guard.ConstructorGuard
	}

	newMenuItem := func(name string, price int) (menuItem, error) {
		if name == "" {
			return menuItem{}, errors.New("name is required")
		}
		if price < 0 {
			return menuItem{}, errors.New("price cannot be negative")
		}

		return menuItem{
			name:  name,
			price: price,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validate := func(m menuItem) error {
		return m.guard.Validate(errMenuItemNotConstructed)
	}

	t.Run("should pass for an instance built via its constructor", func(t *testing.T) {
		item, err := newMenuItem("Margherita", 1250)

		require.NoError(t, err)
		assert.NoError(t, validate(item))
	})

	t.Run("should fail for a zero-value instance", func(t *testing.T) {
		var item menuItem

		err := validate(item)

		assert.Equal(t, errMenuItemNotConstructed, err)
	})

	t.Run("should not mask constructor validation errors", func(t *testing.T) {
		_, err := newMenuItem("", 1250)
		assert.ErrorContains(t, err, "name is required")

		_, err = newMenuItem("Margherita", -1)
		assert.ErrorContains(t, err, "price cannot be negative")
	})
}

func TestConstructorGuard_ValueSemantics(t *testing.T) {
	t.Run("should remain valid when copied", func(t *testing.T) {
		original := guard.NewConstructorGuard()
		copied := original

		assert.NoError(t, original.Validate(errors.New("not constructed")))
		assert.NoError(t, copied.Validate(errors.New("not constructed")))
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	notConstructed := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				assert.NoError(t, g.Validate(notConstructed))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	notConstructed := errors.New("not constructed")

	b.ResetTimer()
	for range b.N {
		_ = g.Validate(notConstructed)
	}
}
