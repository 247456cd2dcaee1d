package service

import (
	"context"
	"errors"
	"time"

	"menuadmin/internal/apierror"
	"menuadmin/internal/config"
	"menuadmin/internal/dto"
	"menuadmin/internal/model"
	"menuadmin/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	repo repository.EmployeeRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.EmployeeRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	emp, err := s.repo.FindByUsername(ctx, req.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Unauthorized("invalid credentials")
	}
	if err != nil {
		return nil, storeErr(err, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthorized("invalid credentials")
	}
	if emp.Status != model.StatusEnable {
		return nil, apierror.Unauthorized("account is disabled")
	}

	token, err := s.generateToken(emp, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		ID:       emp.ID,
		UserName: emp.Username,
		Name:     emp.Name,
		Token:    token,
	}, nil
}

func (s *authService) generateToken(emp *model.Employee, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"emp_id":   emp.ID,
		"username": emp.Username,
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
