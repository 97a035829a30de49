package repositories

import (
	"beaute-shop/models"
)

type WishlistRepository struct {
	s *Store
}

func NewWishlistRepository(s *Store) *WishlistRepository {
	return &WishlistRepository{s: s}
}

// wishlistView resolves product ids into full records, skipping products
// that were deactivated since they were saved. Must be called with the lock
// held.
func (s *Store) wishlistView(userID int) models.Wishlist {
	wishlist := models.Wishlist{
		ID:       userID,
		Products: []models.Product{},
	}
	for _, id := range s.wishlists[userID] {
		if p := s.productByID(id); p != nil && p.IsActive {
			wishlist.Products = append(wishlist.Products, s.productView(p))
		}
	}
	return wishlist
}

func (r *WishlistRepository) For(userID int) models.Wishlist {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.wishlistView(userID)
}

// Add is idempotent: re-adding a saved product leaves the list unchanged.
func (r *WishlistRepository) Add(userID, productID int) (models.Wishlist, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p := r.s.productByID(productID)
	if p == nil || !p.IsActive {
		return models.Wishlist{}, ErrNotFound
	}

	for _, id := range r.s.wishlists[userID] {
		if id == productID {
			return r.s.wishlistView(userID), nil
		}
	}
	r.s.wishlists[userID] = append(r.s.wishlists[userID], productID)

	return r.s.wishlistView(userID), nil
}

func (r *WishlistRepository) Remove(userID, productID int) models.Wishlist {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := r.s.wishlists[userID]
	for i, id := range ids {
		if id == productID {
			r.s.wishlists[userID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return r.s.wishlistView(userID)
}
