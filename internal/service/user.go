package service

import (
	"context"
	"fmt"

	"github.com/jhonstore/admin-console/internal/cache"
	"github.com/jhonstore/admin-console/internal/dto"
	"github.com/jhonstore/admin-console/internal/model"
	"github.com/jhonstore/admin-console/internal/view"
)

type UserService struct {
	users *cache.Cache[model.User]
}

func NewUserService(users *cache.Cache[model.User]) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context, q dto.UserQuery) (*dto.UserListResponse, error) {
	if err := ensureLoaded(ctx, s.users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	all := s.users.Snapshot()
	visible := view.ProjectUsers(all, q.Filter())

	users := make([]dto.UserResponse, 0, len(visible))
	for i := range visible {
		users = append(users, dto.ToUserResponse(&visible[i]))
	}
	resp := &dto.UserListResponse{Users: users, Visible: len(users), Total: len(all)}
	if err := s.users.LastErr(); err != nil {
		resp.RefreshError = err.Error()
	}
	return resp, nil
}

// Stats counts over the full cache, not a projection; these feed the
// dashboard summary cards.
func (s *UserService) Stats(ctx context.Context) (*view.UserStats, error) {
	if err := ensureLoaded(ctx, s.users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	stats := view.CountUsers(s.users.Snapshot())
	return &stats, nil
}
