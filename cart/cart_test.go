package cart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type memStorage struct {
	lines   []Line
	loadErr error
	saveErr error
	saves   int
}

func (s *memStorage) Load() ([]Line, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.lines, nil
}

func (s *memStorage) Save(lines []Line) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.lines = lines
	s.saves++
	return nil
}

func TestEngine_AddItemMergesDuplicates(t *testing.T) {
	storage := &memStorage{}
	engine := NewEngine(storage)

	engine.AddItem(Line{ID: "burger", Name: "Double Cheese Burger", Price: 12.99, Quantity: 1, RestaurantName: "Burger Palace"})
	engine.AddItem(Line{ID: "burger", Name: "renamed", Price: 99, Quantity: 3})

	items := engine.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
	// The existing line's metadata wins on merge.
	assert.Equal(t, "Double Cheese Burger", items[0].Name)
	assert.Equal(t, 12.99, items[0].Price)
	assert.Equal(t, "Burger Palace", items[0].RestaurantName)
}

func TestEngine_AddItemValidation(t *testing.T) {
	tests := []struct {
		name string
		line Line
		kept bool
	}{
		{name: "valid line", line: Line{ID: "a", Price: 1, Quantity: 1}, kept: true},
		{name: "empty id", line: Line{ID: "", Price: 1, Quantity: 1}, kept: false},
		{name: "negative price", line: Line{ID: "a", Price: -1, Quantity: 1}, kept: false},
		{name: "zero quantity", line: Line{ID: "a", Price: 1, Quantity: 0}, kept: false},
		{name: "free item", line: Line{ID: "a", Price: 0, Quantity: 2}, kept: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			engine := NewEngine(&memStorage{})
			engine.AddItem(testCase.line)
			if testCase.kept {
				assert.Len(t, engine.Items(), 1)
			} else {
				assert.Empty(t, engine.Items())
			}
		})
	}
}

func TestEngine_UpdateQuantity(t *testing.T) {
	engine := NewEngine(&memStorage{})
	engine.AddItem(Line{ID: "pizza", Price: 18.50, Quantity: 2})

	// Sets exactly, not cumulatively.
	engine.UpdateQuantity("pizza", 5)
	assert.Equal(t, 5, engine.Items()[0].Quantity)

	// Unknown id is a no-op.
	engine.UpdateQuantity("missing", 3)
	assert.Len(t, engine.Items(), 1)

	// Zero or less removes the line.
	engine.UpdateQuantity("pizza", 0)
	assert.Empty(t, engine.Items())
	assert.Equal(t, 0, engine.ItemCount())
}

func TestEngine_RemoveItem(t *testing.T) {
	engine := NewEngine(&memStorage{})
	engine.AddItem(Line{ID: "a", Price: 1, Quantity: 1})
	engine.AddItem(Line{ID: "b", Price: 2, Quantity: 1})

	engine.RemoveItem("a")
	items := engine.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)

	engine.RemoveItem("a") // already gone, no-op
	assert.Len(t, engine.Items(), 1)
}

func TestEngine_Totals(t *testing.T) {
	engine := NewEngine(&memStorage{})
	engine.AddItem(Line{ID: "a", Name: "Item A", Price: 10.00, Quantity: 2})
	engine.AddItem(Line{ID: "b", Name: "Item B", Price: 5.00, Quantity: 1})

	assert.Equal(t, 25.00, engine.TotalPrice())
	assert.Equal(t, 3, engine.ItemCount())
}

func TestEngine_Clear(t *testing.T) {
	storage := &memStorage{}
	engine := NewEngine(storage)
	engine.AddItem(Line{ID: "a", Price: 1, Quantity: 1})

	engine.Clear()
	assert.Empty(t, engine.Items())
	assert.Equal(t, 0.0, engine.TotalPrice())
	assert.Empty(t, storage.lines)
}

func TestEngine_EveryMutationPersists(t *testing.T) {
	storage := &memStorage{}
	engine := NewEngine(storage)

	engine.AddItem(Line{ID: "a", Price: 1, Quantity: 1})
	engine.UpdateQuantity("a", 2)
	engine.RemoveItem("a")
	engine.Clear()

	assert.Equal(t, 4, storage.saves)
}

func TestEngine_HydratesFromStorage(t *testing.T) {
	storage := &memStorage{lines: []Line{{ID: "a", Price: 2.5, Quantity: 2}}}
	engine := NewEngine(storage)

	assert.Equal(t, 2, engine.ItemCount())
	assert.Equal(t, 5.0, engine.TotalPrice())
}

func TestEngine_LoadFailureFallsBackToEmpty(t *testing.T) {
	storage := &memStorage{loadErr: errors.New("corrupt")}
	engine := NewEngine(storage)

	assert.Empty(t, engine.Items())

	// Engine stays usable; save failures are swallowed too.
	storage.saveErr = errors.New("disk full")
	engine.AddItem(Line{ID: "a", Price: 1, Quantity: 1})
	assert.Len(t, engine.Items(), 1)
}

func TestFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	storage := NewFileStorage(path)

	// Missing file means an empty cart, not an error.
	lines, err := storage.Load()
	assert.NoError(t, err)
	assert.Empty(t, lines)

	saved := []Line{{ID: "a", Name: "Item A", Price: 9.99, Quantity: 2, DeliveryTime: "25-30"}}
	assert.NoError(t, storage.Save(saved))

	loaded, err := storage.Load()
	assert.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestFileStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	storage := NewFileStorage(path)
	_, err := storage.Load()
	assert.Error(t, err)

	// The engine recovers by starting empty.
	engine := NewEngine(storage)
	assert.Empty(t, engine.Items())
}
