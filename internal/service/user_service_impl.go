package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/fulfill/internal/domain"
	"github.com/alexanderramin/fulfill/internal/repository"
)

type userService struct {
	gateway *repository.Gateway
	uow     repository.UnitOfWork
}

func NewUserService(gateway *repository.Gateway, uow repository.UnitOfWork) UserService {
	return &userService{gateway: gateway, uow: uow}
}

// Add stores a user. Usernames are unique, ignoring case.
func (s *userService) Add(ctx context.Context, username, displayName string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &domain.ValidationError{Field: "username", Message: "is required"}
	}
	var user domain.User
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		users, err := tx.Gateway.LoadUsers(ctx)
		if err != nil {
			return err
		}
		for _, u := range users {
			if strings.EqualFold(u.Username, username) {
				return &domain.ValidationError{Field: "username", Message: "already exists: " + username}
			}
		}
		user = domain.User{
			ID:          domain.UniqueTimestampID(nowUTC(), idTaken(users, func(u domain.User) string { return u.ID })),
			Username:    username,
			DisplayName: strings.TrimSpace(displayName),
		}
		return tx.Gateway.SaveUsers(ctx, append(users, user))
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.gateway.LoadUsers(ctx)
}
