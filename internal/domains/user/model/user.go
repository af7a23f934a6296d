package model

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"filmorate-backend/internal/shared"
)

var noWhitespace = regexp.MustCompile(`^\S+$`)

// User is both the stored entity and the request/response body: ids are
// assigned by the store on create and carried in the body on update.
type User struct {
	ID       int         `json:"id" db:"id"`
	Email    string      `json:"email" db:"email"`
	Login    string      `json:"login" db:"login"`
	Name     string      `json:"name" db:"name"`
	Birthday shared.Date `json:"birthday" db:"birthday"`
}

func (u User) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Email,
			validation.Required.Error("email must not be blank"),
			is.Email.Error("email must be a valid address"),
		),
		validation.Field(&u.Login,
			validation.Required.Error("login must not be blank"),
			validation.Match(noWhitespace).Error("login must not contain whitespace"),
		),
		validation.Field(&u.Birthday, validation.By(notInFuture)),
	)
}

func notInFuture(value interface{}) error {
	d, ok := value.(shared.Date)
	if !ok || d.IsZero() {
		return nil
	}
	if d.Time.After(time.Now()) {
		return validation.NewError("validation_birthday_future", "birthday must not be in the future")
	}
	return nil
}
