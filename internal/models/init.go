package models

import (
	"errors"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

const (
	fallbackAdminUsername = "admin"
	fallbackAdminPassword = "admin123"
)

// InitDefaultAdmin 当后台没有任何管理员时创建初始账号。
func InitDefaultAdmin(username, password string) error {
	if DB == nil {
		return errors.New("database not initialized")
	}

	var count int64
	if err := DB.Model(&Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if username == "" {
		username = fallbackAdminUsername
	}
	usingFallbackPassword := password == "" || password == fallbackAdminPassword
	if password == "" {
		password = fallbackAdminPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := DB.Create(&Admin{
		Username:     username,
		PasswordHash: string(hash),
	}).Error; err != nil {
		return err
	}

	if usingFallbackPassword {
		logger.Warnw("default_admin_created_with_default_password", "username", username)
	} else {
		logger.Warnw("default_admin_created", "username", username)
	}
	return nil
}
