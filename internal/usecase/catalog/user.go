package catalog

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/estimatecheck/marketplace/internal/domain"
)

// enroll rejects sanctioned callers and records the caller's account the
// first time it changes the catalog.
func (s *Service) enroll(snap domain.Snapshot, a domain.Actor) (domain.Snapshot, error) {
	if u, ok := snap.FindUser(a.UserID); ok {
		if u.BlockedAt(s.now()) {
			return snap, fmt.Errorf("user %s: %w", a.UserID, domain.ErrUserBlocked)
		}
		if u.Role == a.Role {
			return snap, nil
		}
	}

	users := slices.Clone(snap.Users)
	i := slices.IndexFunc(users, func(u domain.User) bool { return u.ID == a.UserID })
	if i >= 0 {
		users[i].Role = a.Role
	} else {
		users = append(users, domain.User{
			ID:        a.UserID,
			Role:      a.Role,
			Status:    domain.UserActive,
			CreatedAt: s.now().UTC(),
		})
	}
	snap.Users = users
	return snap, nil
}

// Users lists every known account. Administrators only.
func (s *Service) Users(ctx context.Context) ([]domain.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	snap, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return snap.Users, nil
}

// SanctionUser blocks an account for the given number of days, or
// indefinitely when days is nil. Administrator accounts cannot be sanctioned.
func (s *Service) SanctionUser(ctx context.Context, userID string, days *int) (domain.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return domain.User{}, fmt.Errorf("sanction user: %w", err)
	}
	if days != nil && *days <= 0 {
		return domain.User{}, fmt.Errorf("sanction user: %w: days must be positive", domain.ErrInvalidInput)
	}

	u, err := s.setUserSanction(ctx, "sanction_user", userID, func(u *domain.User) error {
		if u.Role == domain.RoleAdmin {
			return fmt.Errorf("%w: administrator accounts cannot be sanctioned", domain.ErrForbidden)
		}
		u.Status = domain.UserBlocked
		u.BlockedUntil = nil
		if days != nil {
			until := s.now().UTC().Add(time.Duration(*days) * 24 * time.Hour)
			u.BlockedUntil = &until
		}
		return nil
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("sanction user: %w", err)
	}
	return u, nil
}

// ClearUserSanction lifts an account's sanction. Administrators only.
func (s *Service) ClearUserSanction(ctx context.Context, userID string) (domain.User, error) {
	if err := requireAdmin(ctx); err != nil {
		return domain.User{}, fmt.Errorf("clear user sanction: %w", err)
	}

	u, err := s.setUserSanction(ctx, "clear_user_sanction", userID, func(u *domain.User) error {
		u.Status = domain.UserActive
		u.BlockedUntil = nil
		return nil
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("clear user sanction: %w", err)
	}
	return u, nil
}

func (s *Service) setUserSanction(
	ctx context.Context, op, userID string, change func(*domain.User) error,
) (domain.User, error) {
	var updated domain.User
	err := s.mutate(ctx, op, func(snap domain.Snapshot) (domain.Snapshot, error) {
		i := slices.IndexFunc(snap.Users, func(u domain.User) bool { return u.ID == userID })
		if i < 0 {
			return snap, fmt.Errorf("user %s: %w", userID, domain.ErrUserNotFound)
		}
		u := snap.Users[i].Clone()
		if err := change(&u); err != nil {
			return snap, err
		}
		snap.Users = slices.Clone(snap.Users)
		snap.Users[i] = u
		updated = u
		return snap, nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return updated, nil
}

// DeleteUser removes an account with its vendor, products, reviews and
// quotes. Administrators only; administrator accounts cannot be deleted.
func (s *Service) DeleteUser(ctx context.Context, userID string) error {
	if err := requireAdmin(ctx); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	err := s.mutate(ctx, "delete_user", func(snap domain.Snapshot) (domain.Snapshot, error) {
		u, ok := snap.FindUser(userID)
		if !ok {
			return snap, fmt.Errorf("user %s: %w", userID, domain.ErrUserNotFound)
		}
		if u.Role == domain.RoleAdmin {
			return snap, fmt.Errorf("%w: administrator accounts cannot be deleted", domain.ErrForbidden)
		}
		return snap.WithoutUser(userID), nil
	})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// DeleteAccount removes the caller's own account the way DeleteUser does.
// Administrators cannot delete themselves.
func (s *Service) DeleteAccount(ctx context.Context) error {
	a, err := requireSignedIn(ctx)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if a.IsAdmin() {
		return fmt.Errorf("delete account: %w: administrator accounts cannot be deleted", domain.ErrForbidden)
	}

	err = s.mutate(ctx, "delete_account", func(snap domain.Snapshot) (domain.Snapshot, error) {
		return snap.WithoutUser(a.UserID), nil
	})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}
