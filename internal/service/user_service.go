package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"user-records/internal/domain"
	"user-records/internal/repository"
)

// UserService describes registry operations over users.
type UserService interface {
	Register(ctx context.Context, name, email string, age int) (int64, *domain.User, error)
	Add(ctx context.Context, user *domain.User) (int64, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	ActiveUsers(ctx context.Context) ([]*domain.User, error)
	UsersByAgeRange(ctx context.Context, minAge, maxAge int) ([]*domain.User, error)
	UpdateEmail(ctx context.Context, id int64, email string) error
	Deactivate(ctx context.Context, id int64) error
}

// Options carries optional collaborators. Zero values fall back to
// logrus.New, time.Now and stdout.
type Options struct {
	Logger   *logrus.Logger
	Now      func() time.Time
	Notifier io.Writer
}

type userService struct {
	users    repository.UserRepository
	logger   *logrus.Logger
	now      func() time.Time
	notifier io.Writer
}

func NewUserService(users repository.UserRepository, opts Options) UserService {
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &userService{
		users:    users,
		logger:   opts.Logger,
		now:      opts.Now,
		notifier: opts.Notifier,
	}
}

func (s *userService) Register(ctx context.Context, name, email string, age int) (int64, *domain.User, error) {
	user := domain.NewUser(name, email,
		domain.WithAge(age),
		domain.WithClock(s.now),
		domain.WithNotifier(s.notifier),
	)
	id, err := s.Add(ctx, user)
	if err != nil {
		return 0, nil, err
	}
	return id, user, nil
}

func (s *userService) Add(ctx context.Context, user *domain.User) (int64, error) {
	id, err := s.users.Create(ctx, user)
	if err != nil {
		return 0, fmt.Errorf("add user: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"user_id": id,
		"name":    user.Name(),
	}).Debug("user registered")
	return id, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) ActiveUsers(ctx context.Context) ([]*domain.User, error) {
	return s.filter(ctx, func(u *domain.User) bool {
		return u.Active
	})
}

func (s *userService) UsersByAgeRange(ctx context.Context, minAge, maxAge int) ([]*domain.User, error) {
	return s.filter(ctx, func(u *domain.User) bool {
		return u.Age() >= minAge && u.Age() <= maxAge
	})
}

func (s *userService) UpdateEmail(ctx context.Context, id int64, email string) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := user.SetEmail(email); err != nil {
		if errors.Is(err, domain.ErrInvalidFormat) {
			s.logger.WithField("user_id", id).Warnf("rejected email %q", email)
		}
		return fmt.Errorf("update email for user %d: %w", id, err)
	}
	s.logger.WithField("user_id", id).Debug("email updated")
	return nil
}

func (s *userService) Deactivate(ctx context.Context, id int64) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.Active = false
	s.logger.WithField("user_id", id).Debug("user deactivated")
	return nil
}

func (s *userService) filter(ctx context.Context, keep func(*domain.User) bool) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if keep(u) {
			out = append(out, u)
		}
	}
	return out, nil
}

// AdultAge is the age from which IsAdult reports true.
const AdultAge = 18

// CalculateAge returns how old someone born in birthYear turns during now's year.
func CalculateAge(now time.Time, birthYear int) int {
	return now.Year() - birthYear
}

func IsAdult(age int) bool {
	return age >= AdultAge
}

// BirthYears maps each age to now's year minus that age.
func BirthYears(now time.Time, ages []int) []int {
	years := make([]int, len(ages))
	for i, age := range ages {
		years[i] = now.Year() - age
	}
	return years
}

// FormatUsers renders users as "name (email)" joined by commas.
func FormatUsers(users []*domain.User) string {
	parts := make([]string, 0, len(users))
	for _, u := range users {
		parts = append(parts, fmt.Sprintf("%s (%s)", u.Name(), u.Email()))
	}
	return strings.Join(parts, ", ")
}
