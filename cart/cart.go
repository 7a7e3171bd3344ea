package cart

import (
	"log"
)

// Line is one product entry in a cart. Price is captured at add time and is
// not re-fetched from the catalog.
type Line struct {
	ID                  string  `bson:"id" json:"id"`
	Name                string  `bson:"name" json:"name"`
	Price               float64 `bson:"price" json:"price"`
	Quantity            int     `bson:"quantity" json:"quantity"`
	Image               string  `bson:"image,omitempty" json:"image,omitempty"`
	RestaurantID        string  `bson:"restaurantId,omitempty" json:"restaurantId,omitempty"`
	RestaurantName      string  `bson:"restaurantName,omitempty" json:"restaurantName,omitempty"`
	Customization       string  `bson:"customization,omitempty" json:"customization,omitempty"`
	SpecialInstructions string  `bson:"specialInstructions,omitempty" json:"specialInstructions,omitempty"`
	DeliveryTime        string  `bson:"deliveryTime,omitempty" json:"deliveryTime,omitempty"` // "min-max" minutes
}

// Storage persists the full line collection under a single key. The engine
// is the only writer; concurrent carts for the same key are last-write-wins.
type Storage interface {
	Load() ([]Line, error)
	Save(lines []Line) error
}

// Engine holds an ordered line collection with merge-on-duplicate semantics.
// Every mutation persists the whole collection through the storage port.
type Engine struct {
	storage Storage
	lines   []Line
}

// NewEngine hydrates the cart from storage. A missing or corrupt snapshot
// degrades to an empty cart; the error is logged, never returned.
func NewEngine(storage Storage) *Engine {
	engine := &Engine{storage: storage}
	lines, err := storage.Load()
	if err != nil {
		log.Printf("cart: failed to load stored cart, starting empty: %v", err)
		return engine
	}
	engine.lines = lines
	return engine
}

func validLine(line Line) bool {
	return line.ID != "" && line.Price >= 0 && line.Quantity > 0
}

// AddItem appends the line, or merges it into an existing line with the same
// id by summing quantities. On merge the existing line's metadata wins; the
// incoming line's other fields are discarded. Invalid lines are dropped.
func (e *Engine) AddItem(line Line) {
	if !validLine(line) {
		log.Printf("cart: rejecting invalid line %+v", line)
		return
	}
	merged := false
	for i := range e.lines {
		if e.lines[i].ID == line.ID {
			e.lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		e.lines = append(e.lines, line)
	}
	e.persist()
}

// RemoveItem drops the line with the given id. Unknown ids are a no-op.
func (e *Engine) RemoveItem(id string) {
	for i := range e.lines {
		if e.lines[i].ID == id {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			e.persist()
			return
		}
	}
}

// UpdateQuantity sets the line's quantity exactly. A quantity of zero or
// less removes the line instead of retaining it.
func (e *Engine) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		e.RemoveItem(id)
		return
	}
	for i := range e.lines {
		if e.lines[i].ID == id {
			e.lines[i].Quantity = quantity
			e.persist()
			return
		}
	}
}

// Clear empties the cart.
func (e *Engine) Clear() {
	e.lines = nil
	e.persist()
}

// Items returns a copy of the current lines in insertion order.
func (e *Engine) Items() []Line {
	items := make([]Line, len(e.lines))
	copy(items, e.lines)
	return items
}

// TotalPrice is the sum of price times quantity over all lines.
func (e *Engine) TotalPrice() float64 {
	var total float64
	for _, line := range e.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities over all lines.
func (e *Engine) ItemCount() int {
	var count int
	for _, line := range e.lines {
		count += line.Quantity
	}
	return count
}

func (e *Engine) persist() {
	if err := e.storage.Save(e.lines); err != nil {
		log.Printf("cart: failed to persist cart: %v", err)
	}
}
