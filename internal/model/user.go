package model

import "time"

// UserID идентификатор пользователя
type UserID string

func (id UserID) String() string {
	return string(id)
}

// User зарегистрированный пользователь. Пароль хранится только в виде хеша.
type User struct {
	ID           UserID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Clone создает копию пользователя
func (u *User) Clone() *User {
	clone := *u
	return &clone
}
