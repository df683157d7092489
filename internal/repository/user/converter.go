package repository

import (
	"strings"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
)

func UserToModel(e UserEntity) *model.User {
	return &model.User{ID: e.ID, Name: e.Name, Email: e.Email, APIKey: e.APIKey}
}

func UserFromModel(u *model.User) UserEntity {
	return UserEntity{ID: u.ID, Name: u.Name, Email: normalizeEmail(u.Email), APIKey: u.APIKey}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
