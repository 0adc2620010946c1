package services

import (
	"errors"
	"fmt"
	"sync"

	"sapling/internal/models"
	"sapling/internal/repositories"
)

// CartService is the single mutation entry point for a user's cart. Every
// read-for-write and write for one account goes through that account's mutex,
// so concurrent adds cannot lose updates to the read-modify-write cycle.
type CartService struct {
	userRepo  repositories.UserRepository
	plantRepo repositories.PlantRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewCartService creates a new CartService.
func NewCartService(userRepo repositories.UserRepository, plantRepo repositories.PlantRepository) *CartService {
	return &CartService{
		userRepo:  userRepo,
		plantRepo: plantRepo,
		locks:     make(map[string]*sync.Mutex),
	}
}

// userLock returns the mutex serializing cart operations for one account.
func (s *CartService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// AddToCart merges quantity into the user's existing line for plantID, or
// appends a new line if none exists. Whether the plant actually exists is
// deliberately not checked here; it is resolved when the cart is read or
// checked out.
func (s *CartService) AddToCart(userID, plantID string, quantity int) ([]models.CartLine, error) {
	if plantID == "" || quantity < 1 {
		return nil, fmt.Errorf("plant id and a quantity of at least 1 are required: %w", models.ErrValidation)
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	cart := append([]models.CartLine(nil), user.Cart...)
	merged := false
	for i := range cart {
		if cart[i].PlantID == plantID {
			cart[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart = append(cart, models.CartLine{PlantID: plantID, Quantity: quantity})
	}
	cart = pruneCart(cart)

	if err := s.userRepo.UpdateCart(userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// GetCart returns the user's cart joined with the current catalog snapshot,
// plus the total over purchasable lines in minor currency units. Lines whose
// plant has been removed from the catalog are kept and flagged as depleted,
// with no subtotal.
func (s *CartService) GetCart(userID string) ([]models.CartItem, int64, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, 0, err
	}
	return s.joinCart(user.Cart)
}

// Snapshot returns a consistent copy of the user's cart lines, taken under
// the same lock the mutations use.
func (s *CartService) Snapshot(userID string) ([]models.CartLine, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return append([]models.CartLine(nil), user.Cart...), nil
}

// Clear empties the user's cart. Clearing an already-empty cart succeeds, so
// the operation is safe to retry.
func (s *CartService) Clear(userID string) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	return s.userRepo.UpdateCart(userID, nil)
}

// joinCart resolves each line against the catalog. Prices come from the
// catalog at call time, never from the moment the line was added.
func (s *CartService) joinCart(cart []models.CartLine) ([]models.CartItem, int64, error) {
	items := make([]models.CartItem, 0, len(cart))
	var total int64

	for _, line := range cart {
		plant, err := s.plantRepo.GetByID(line.PlantID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				// The plant was removed from the catalog after the line was
				// added: surface it as depleted rather than dropping it.
				items = append(items, models.CartItem{
					PlantID:  line.PlantID,
					Quantity: line.Quantity,
					Depleted: true,
				})
				continue
			}
			return nil, 0, err
		}

		subtotal := plant.Price * int64(line.Quantity)
		items = append(items, models.CartItem{
			PlantID:   line.PlantID,
			Name:      plant.Name,
			UnitPrice: plant.Price,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		})
		total += subtotal
	}

	return items, total, nil
}

// pruneCart drops lines with a non-positive quantity; such lines are invalid
// and must never be stored.
func pruneCart(cart []models.CartLine) []models.CartLine {
	pruned := cart[:0]
	for _, line := range cart {
		if line.Quantity >= 1 {
			pruned = append(pruned, line)
		}
	}
	return pruned
}
