package store

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/DannerVelaF/VeterinariaAdelaFront/models"
)

// DefaultCartTTL is how long a cart stays valid after its last change.
const DefaultCartTTL = 24 * time.Hour

// CartSaver persists the cart snapshot. Writes are best effort: a failed
// write keeps the in-memory state and is only logged.
type CartSaver interface {
	SaveCart(models.CartSnapshot) error
}

// Cart tracks the items a user intends to purchase. It enforces the stock
// ceilings supplied by the caller and invalidates itself once it no longer
// belongs to the current user or has gone stale.
//
// At most one line exists per product id, and every line has quantity >= 1.
type Cart struct {
	mu          sync.Mutex
	lines       []models.CartLine
	ownerUserID int64
	lastUpdated time.Time

	ttl   time.Duration
	saver CartSaver
	log   *zap.Logger
	now   func() time.Time
}

// NewCart builds an empty cart. saver may be nil (no persistence); ttl <= 0
// falls back to DefaultCartTTL.
func NewCart(saver CartSaver, logger *zap.Logger, ttl time.Duration) *Cart {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	return &Cart{
		lastUpdated: time.Now(),
		ttl:         ttl,
		saver:       saver,
		log:         logger,
		now:         time.Now,
	}
}

// Restore replaces the cart contents with a previously persisted snapshot.
func (c *Cart) Restore(snap models.CartSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append([]models.CartLine(nil), snap.Lines...)
	c.ownerUserID = snap.OwnerUserID
	c.lastUpdated = snap.LastUpdated
}

// AddItem puts one unit of product into the cart for userID. If the stored
// cart fails the owner/recency check it is cleared and re-stamped first. The
// quantity on product is ignored; the line starts at 1 or increments.
func (c *Cart) AddItem(product models.CartLine, availableStock int, userID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isValidLocked(userID) {
		c.lines = nil
		c.ownerUserID = userID
		c.lastUpdated = c.now()
		c.persistLocked()
	}

	current := 0
	if i := c.indexOf(product.ID); i >= 0 {
		current = c.lines[i].Quantity
	}
	if current+1 > availableStock {
		return &StockExceededError{ProductID: product.ID, Available: availableStock}
	}

	if i := c.indexOf(product.ID); i >= 0 {
		c.lines[i].Quantity++
	} else {
		product.Quantity = 1
		c.lines = append(c.lines, product)
	}
	c.lastUpdated = c.now()
	c.persistLocked()
	return nil
}

// RemoveItem deletes the line for id. Removing an absent id is not an error.
func (c *Cart) RemoveItem(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
}

// UpdateQuantity sets the quantity for id. Zero or negative behaves like
// RemoveItem; quantities above availableStock fail without mutating.
func (c *Cart) UpdateQuantity(id int64, quantity, availableStock int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.updateQuantityLocked(id, quantity, availableStock)
}

// IncreaseQuantity bumps the line for id by one, subject to availableStock.
// No-op when the line does not exist.
func (c *Cart) IncreaseQuantity(id int64, availableStock int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	q, ok := c.quantityLocked(id)
	if !ok {
		return nil
	}
	return c.updateQuantityLocked(id, q+1, availableStock)
}

// DecreaseQuantity lowers the line for id by one; dropping below 1 removes
// the line. Decreasing never needs a stock check.
func (c *Cart) DecreaseQuantity(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	q, ok := c.quantityLocked(id)
	if !ok {
		return
	}
	if q <= 1 {
		c.removeLocked(id)
		return
	}
	_ = c.updateQuantityLocked(id, q-1, q-1)
}

// Clear empties the cart and re-stamps the timestamp.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.lastUpdated = c.now()
	c.persistLocked()
}

// Total is the sum of unit price times quantity over all lines.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, line := range c.lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities over all lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// CanAdd reports whether requestedQuantity of a product fits under the
// caller-supplied stock ceiling.
func (c *Cart) CanAdd(productID int64, requestedQuantity, availableStock int) bool {
	return requestedQuantity <= availableStock
}

// IsValid reports whether the stored cart still belongs to currentUserID and
// was touched within the TTL.
func (c *Cart) IsValid(currentUserID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isValidLocked(currentUserID)
}

// ClearExpired empties the cart when it is past its TTL and reports whether
// it did so.
func (c *Cart) ClearExpired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.now().Sub(c.lastUpdated) <= c.ttl {
		return false
	}
	c.lines = nil
	c.lastUpdated = c.now()
	c.persistLocked()
	return true
}

// SetUserID re-stamps the owner and the timestamp without touching the
// lines. The caller is expected to have validated or cleared beforehand.
func (c *Cart) SetUserID(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ownerUserID = userID
	c.lastUpdated = c.now()
	c.persistLocked()
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.CartLine(nil), c.lines...)
}

// Snapshot returns the persistable state of the cart.
func (c *Cart) Snapshot() models.CartSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Cart) isValidLocked(currentUserID int64) bool {
	if c.ownerUserID != currentUserID {
		return false
	}
	return c.now().Sub(c.lastUpdated) <= c.ttl
}

func (c *Cart) indexOf(id int64) int {
	for i, line := range c.lines {
		if line.ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) quantityLocked(id int64) (int, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.lines[i].Quantity, true
	}
	return 0, false
}

func (c *Cart) updateQuantityLocked(id int64, quantity, availableStock int) error {
	if quantity <= 0 {
		c.removeLocked(id)
		return nil
	}
	if quantity > availableStock {
		return &StockExceededError{ProductID: id, Available: availableStock}
	}
	if i := c.indexOf(id); i >= 0 {
		c.lines[i].Quantity = quantity
	}
	c.lastUpdated = c.now()
	c.persistLocked()
	return nil
}

func (c *Cart) removeLocked(id int64) {
	if i := c.indexOf(id); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
	c.lastUpdated = c.now()
	c.persistLocked()
}

func (c *Cart) snapshotLocked() models.CartSnapshot {
	return models.CartSnapshot{
		Lines:       append([]models.CartLine(nil), c.lines...),
		OwnerUserID: c.ownerUserID,
		LastUpdated: c.lastUpdated,
	}
}

func (c *Cart) persistLocked() {
	if c.saver == nil {
		return
	}
	if err := c.saver.SaveCart(c.snapshotLocked()); err != nil {
		c.log.Warn("cart snapshot write failed", zap.Error(err))
	}
}
