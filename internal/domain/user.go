package domain

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const (
	// DefaultAge is used when a user is created without WithAge.
	DefaultAge = 18
	// MaxLoginAttempts is shared by all users. Nothing enforces it yet.
	MaxLoginAttempts = 3
)

// ErrInvalidFormat is returned by SetEmail when the new address fails validation.
var ErrInvalidFormat = errors.New("Invalid email format")

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User represents a person known to the system. It lives in memory only.
// Build one with NewUser; a zero User reads the wall clock and prints to stdout.
type User struct {
	name          string
	email         string
	age           int
	loginAttempts int

	// Active has no invariants and may be flipped by any caller.
	Active bool

	now    func() time.Time
	notify io.Writer
}

// Option customizes a User at construction.
type Option func(*User)

// WithAge sets the user's age. No range check is applied.
func WithAge(age int) Option {
	return func(u *User) {
		u.age = age
	}
}

// WithClock replaces the wall clock used by BirthYear.
func WithClock(now func() time.Time) Option {
	return func(u *User) {
		if now != nil {
			u.now = now
		}
	}
}

// WithNotifier redirects the SetEmail success notice, which defaults to stdout.
func WithNotifier(w io.Writer) Option {
	return func(u *User) {
		if w != nil {
			u.notify = w
		}
	}
}

// NewUser builds an active user. The email is stored as given; validation
// only applies to later SetEmail calls.
func NewUser(name, email string, opts ...Option) *User {
	u := &User{
		name:   name,
		email:  email,
		age:    DefaultAge,
		Active: true,
		now:    time.Now,
		notify: os.Stdout,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *User) Name() string { return u.name }

func (u *User) Email() string { return u.email }

func (u *User) Age() int { return u.age }

func (u *User) LoginAttempts() int { return u.loginAttempts }

// Status reports "active" or "inactive" depending on Active.
func (u *User) Status() string {
	if u.Active {
		return StatusActive
	}
	return StatusInactive
}

// Info returns a snapshot of the user's fields in display order.
func (u *User) Info() Info {
	return Info{
		{Key: InfoName, Value: u.name},
		{Key: InfoEmail, Value: u.email},
		{Key: InfoAge, Value: u.age},
		{Key: InfoStatus, Value: u.Status()},
		{Key: InfoLoginAttempts, Value: u.loginAttempts},
	}
}

// SetEmail replaces the email and prints a confirmation to the notifier.
// On ErrInvalidFormat the previous email is kept.
func (u *User) SetEmail(email string) error {
	if !validEmailFormat(email) {
		return ErrInvalidFormat
	}
	u.email = email
	fmt.Fprintf(u.notifier(), "Email updated successfully to %s!\n", email)
	return nil
}

// BirthYear is the current year minus the age, evaluated on every call.
func (u *User) BirthYear() int {
	return u.clock()().Year() - u.age
}

func (u *User) clock() func() time.Time {
	if u.now == nil {
		return time.Now
	}
	return u.now
}

func (u *User) notifier() io.Writer {
	if u.notify == nil {
		return os.Stdout
	}
	return u.notify
}

// String implements fmt.Stringer.
func (u *User) String() string {
	return fmt.Sprintf("User(name=%s, email=%s)", u.name, u.email)
}

// GoString implements fmt.GoStringer, so %#v prints the constructor arguments.
func (u *User) GoString() string {
	return fmt.Sprintf("User('%s', '%s', %d)", u.name, u.email, u.age)
}

// validEmailFormat only checks that both '@' and '.' occur somewhere.
func validEmailFormat(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}
