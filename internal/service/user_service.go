package service

import (
	"errors"

	"github.com/bkpsdm/portal-api/internal/constants"
	"github.com/bkpsdm/portal-api/internal/models"
	"github.com/bkpsdm/portal-api/internal/repository"
)

// UserService backoffice account business service
type UserService struct {
	repo repository.UserRepository
}

// NewUserService creates the user service
func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreateUserInput create payload
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
	IsActive *bool
}

// UpdateUserInput partial update payload; nil fields stay untouched
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	Role     *string
	IsActive *bool
}

// IsEmpty reports whether the payload carries no updatable field
func (in UpdateUserInput) IsEmpty() bool {
	return in.Username == nil && in.Email == nil && in.Password == nil &&
		in.Role == nil && in.IsActive == nil
}

// Create validates and inserts an account. Role defaults to editor, accounts
// start active, and the password is stored bcrypt-hashed only.
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	if err := validateMinLength("username", input.Username, 3); err != nil {
		return nil, err
	}
	if err := validateEmail("email", input.Email); err != nil {
		return nil, err
	}
	if err := validateMinLength("password", input.Password, 6); err != nil {
		return nil, err
	}
	role := input.Role
	if role == "" {
		role = constants.RoleEditor
	}
	if err := validateEnum("role", role, constants.UserRoles); err != nil {
		return nil, err
	}

	if err := s.checkUsernameFree(input.Username, 0); err != nil {
		return nil, err
	}
	if err := s.checkEmailFree(input.Email, 0); err != nil {
		return nil, err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     isActive,
	}
	if err := s.repo.Create(&user); err != nil {
		return nil, err
	}
	return user.Scrub(), nil
}

// List lists accounts with password hashes scrubbed
func (s *UserService) List(limit, offset int) ([]models.User, int64, error) {
	items, total, err := s.repo.List(repository.UserListFilter{Limit: limit, Offset: offset})
	if err != nil {
		return nil, 0, err
	}
	for i := range items {
		items[i].Scrub()
	}
	return items, total, nil
}

// GetByID fetches one account with the password hash scrubbed
func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user.Scrub(), nil
}

// GetByUsername fetches one account with the password hash intact. The
// authentication path needs the hash to verify credentials.
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	if err := validateRequired("username", username); err != nil {
		return nil, err
	}
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// Update applies only the provided fields. Deactivating or demoting the last
// active admin is rejected, same as deleting it.
func (s *UserService) Update(id uint, input UpdateUserInput) (*models.User, error) {
	if input.Username != nil {
		if err := validateMinLength("username", *input.Username, 3); err != nil {
			return nil, err
		}
	}
	if input.Email != nil {
		if err := validateEmail("email", *input.Email); err != nil {
			return nil, err
		}
	}
	if input.Password != nil {
		if err := validateMinLength("password", *input.Password, 6); err != nil {
			return nil, err
		}
	}
	if input.Role != nil {
		if err := validateEnum("role", *input.Role, constants.UserRoles); err != nil {
			return nil, err
		}
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if input.IsEmpty() {
		return user.Scrub(), nil
	}

	if input.Username != nil && *input.Username != user.Username {
		if err := s.checkUsernameFree(*input.Username, id); err != nil {
			return nil, err
		}
	}
	if input.Email != nil && *input.Email != user.Email {
		if err := s.checkEmailFree(*input.Email, id); err != nil {
			return nil, err
		}
	}

	losesAdmin := user.Role == constants.RoleAdmin && user.IsActive &&
		((input.Role != nil && *input.Role != constants.RoleAdmin) ||
			(input.IsActive != nil && !*input.IsActive))
	if losesAdmin {
		others, err := s.countOtherActiveAdmins(id)
		if err != nil {
			return nil, err
		}
		if others == 0 {
			return nil, ErrLastActiveAdmin
		}
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user.Scrub(), nil
}

// Delete removes an account. The last active admin cannot be deleted.
func (s *UserService) Delete(id uint) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		if errors.Is(err, repository.ErrLastActiveAdmin) {
			return ErrLastActiveAdmin
		}
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *UserService) checkUsernameFree(username string, selfID uint) error {
	existing, err := s.repo.GetByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return newConstraintError("unique_username", "username is already taken")
	}
	return nil
}

func (s *UserService) checkEmailFree(email string, selfID uint) error {
	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return newConstraintError("unique_email", "email is already taken")
	}
	return nil
}

func (s *UserService) countOtherActiveAdmins(selfID uint) (int64, error) {
	users, _, err := s.repo.List(repository.UserListFilter{})
	if err != nil {
		return 0, err
	}
	var others int64
	for _, u := range users {
		if u.ID != selfID && u.Role == constants.RoleAdmin && u.IsActive {
			others++
		}
	}
	return others, nil
}
