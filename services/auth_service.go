package services

import (
	"errors"
	"time"

	"backend/entity"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	DB        *gorm.DB
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(db *gorm.DB, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, JWTSecret: secret, JWTTTL: ttl}
}

func (s *AuthService) Login(email, password string) (string, *entity.Admin, error) {
	var admin entity.Admin
	if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(admin.ID, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return "", nil, err
	}
	return token, &admin, nil
}

func (s *AuthService) GetAdmin(id uint) (*entity.Admin, error) {
	var admin entity.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
