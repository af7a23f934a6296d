package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"filmorate-backend/internal/shared"
)

func validUser() User {
	return User{
		Email:    "mouse@yandex.ru",
		Login:    "mouse",
		Name:     "Nick Name",
		Birthday: shared.NewDate(1946, time.August, 20),
	}
}

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(u *User)
		wantErr string
	}{
		{
			name:   "valid user passes",
			mutate: func(u *User) {},
		},
		{
			name:   "blank name is allowed",
			mutate: func(u *User) { u.Name = "" },
		},
		{
			name:   "zero birthday is allowed",
			mutate: func(u *User) { u.Birthday = shared.Date{} },
		},
		{
			name:    "blank email",
			mutate:  func(u *User) { u.Email = "" },
			wantErr: "email must not be blank",
		},
		{
			name:    "malformed email",
			mutate:  func(u *User) { u.Email = "not-an-email" },
			wantErr: "email must be a valid address",
		},
		{
			name:    "blank login",
			mutate:  func(u *User) { u.Login = "" },
			wantErr: "login must not be blank",
		},
		{
			name:    "login with spaces",
			mutate:  func(u *User) { u.Login = "dolore ullamco" },
			wantErr: "login must not contain whitespace",
		},
		{
			name:    "future birthday",
			mutate:  func(u *User) { u.Birthday = shared.Date{Time: time.Now().AddDate(1, 0, 0)} },
			wantErr: "birthday must not be in the future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)

			err := u.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
