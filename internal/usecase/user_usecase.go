package usecase

import (
	"fmt"
	"time"

	"erp-kozo-backend/config"
	"erp-kozo-backend/internal/model"
	"erp-kozo-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserUsecase struct {
	repo repository.UserRepository
}

func NewUserUsecase(repo repository.UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

func (u *UserUsecase) Register(name, username, password, role string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if role != model.RoleOwner {
		role = model.RoleAdmin
	}

	user := model.User{
		Name:     name,
		Username: username,
		Password: string(hashedPassword),
		Role:     role,
	}
	return u.repo.Create(&user)
}

func (u *UserUsecase) Login(username, password string) (string, error) {
	user, err := u.repo.GetByUsername(username)
	if err != nil {
		return "", err // User tidak ditemukan
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		fmt.Println("Bcrypt Error:", err)
		return "", err // Password salah
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(time.Hour * 24).Unix(), // Token expired dalam 24 jam
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(config.GetEnv("JWT_SECRET", "rahasia-kozo")))
	if err != nil {
		return "", err
	}

	return t, nil
}
