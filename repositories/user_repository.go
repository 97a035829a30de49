package repositories

import (
	"time"

	"beaute-shop/models"
)

type UserRepository struct {
	s *Store
}

func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{s: s}
}

func (r *UserRepository) FindByUsername(username string) (*Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.accounts {
		if a.User.Username == username {
			clone := *a
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *UserRepository) FindByID(id int) (*Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if a := r.s.accountByID(id); a != nil {
		clone := *a
		return &clone, nil
	}
	return nil, ErrNotFound
}

// Create registers a new customer with an empty profile, the way the
// backend provisions one at registration time.
func (r *UserRepository) Create(username, email, firstName, lastName, passwordHash string) (*Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.accounts {
		if a.User.Username == username {
			return nil, ErrUsernameTaken
		}
	}

	now := time.Now()
	account := &Account{
		User: models.User{
			ID:        r.s.nextUserID,
			Username:  username,
			Email:     email,
			FirstName: firstName,
			LastName:  lastName,
		},
		PasswordHash: passwordHash,
	}
	account.Profile = models.Profile{
		ID:        account.User.ID,
		User:      account.User,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.s.nextUserID++
	r.s.accounts = append(r.s.accounts, account)

	clone := *account
	return &clone, nil
}

func (r *UserRepository) UpdateProfile(userID int, req models.UpdateProfileRequest) (*models.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a := r.s.accountByID(userID)
	if a == nil {
		return nil, ErrNotFound
	}

	a.Profile.Phone = req.Phone
	a.Profile.Address = req.Address
	a.Profile.Newsletter = req.Newsletter
	a.Profile.UpdatedAt = time.Now()

	profile := a.Profile
	return &profile, nil
}

// SubscribeNewsletter activates (or re-activates) a subscription.
func (r *UserRepository) SubscribeNewsletter(email string) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.newsletter[email] = true
}

// UnsubscribeNewsletter reports whether the email was subscribed.
func (r *UserRepository) UnsubscribeNewsletter(email string) bool {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	active, ok := r.s.newsletter[email]
	if !ok || !active {
		return false
	}
	r.s.newsletter[email] = false
	return true
}
