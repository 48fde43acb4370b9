package service

import (
	"context"
	"log/slog"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/logger"
	"itemshare-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
	itemRepo repository.ItemRepository
	log      *slog.Logger
}

func NewUserService(userRepo repository.UserRepository, itemRepo repository.ItemRepository) UserService {
	return &userService{
		userRepo: userRepo,
		itemRepo: itemRepo,
		log:      logger.WithService("user"),
	}
}

func (s *userService) CreateUser(ctx context.Context, name, email string) (*domain.User, error) {
	if err := s.checkEmailFree(ctx, email); err != nil {
		return nil, err
	}
	user := &domain.User{Name: name, Email: email}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info("user created", "user_id", user.ID)
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID int64, upd UserUpdate) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if upd.Email != nil && *upd.Email != user.Email {
		if err := s.checkEmailFree(ctx, *upd.Email); err != nil {
			return nil, err
		}
		user.Email = *upd.Email
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info("user updated", "user_id", userID)
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

// DeleteUserByID removes the user together with their items.
func (s *userService) DeleteUserByID(ctx context.Context, userID int64) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	if err := s.itemRepo.DeleteAllByOwner(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	s.log.Info("user and their items deleted", "user_id", userID)
	return nil
}

func (s *userService) DeleteAllUsers(ctx context.Context) error {
	if err := s.itemRepo.DeleteAll(ctx); err != nil {
		return err
	}
	return s.userRepo.DeleteAll(ctx)
}

func (s *userService) checkEmailFree(ctx context.Context, email string) error {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !domain.IsNotFound(err) {
		return err
	}
	if existing != nil {
		return domain.NewConflict("user with email %s already exists", email)
	}
	return nil
}
