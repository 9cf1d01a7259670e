package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/repository"
	"github.com/sefazor/coworkly-backend/pkg/bcrypt"
	"github.com/sefazor/coworkly-backend/pkg/email"
	jwtPkg "github.com/sefazor/coworkly-backend/pkg/jwt"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	TokenExpiryReset = 15 * time.Minute
)

type AuthService struct {
	userRepo     *repository.UserRepository
	emailService *email.EmailService
	logger       *zap.Logger
	jwtSecret    []byte
	jwtIssuer    string
}

func NewAuthService(userRepo *repository.UserRepository, emailService *email.EmailService, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		emailService: emailService,
		logger:       logger,
		jwtSecret:    []byte(os.Getenv("JWT_SECRET")),
		jwtIssuer:    os.Getenv("JWT_ISSUER"),
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New("email already exists")
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashedPassword,
		Phone:    req.Phone,
		Company:  req.Company,
		Role:     models.RoleMember,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	go func() {
		if err := s.emailService.SendWelcomeEmail(user.Email, user.FullName); err != nil {
			s.logger.Warn("Failed to send welcome email", zap.Error(err))
		}
	}()

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, errors.New("invalid email or password")
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) ForgotPassword(emailAddr string) error {
	user, err := s.userRepo.GetByEmail(emailAddr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Do not reveal whether the address exists
			return nil
		}
		return err
	}

	resetToken, err := s.generateResetToken(user.Email)
	if err != nil {
		return err
	}

	go func() {
		if err := s.emailService.SendPasswordResetEmail(user.Email, resetToken); err != nil {
			s.logger.Warn("Failed to send password reset email", zap.Error(err))
		}
	}()

	return nil
}

func (s *AuthService) ResetPassword(req models.ResetPasswordRequest) error {
	emailAddr, err := s.parseResetToken(req.Token)
	if err != nil {
		return errors.New("invalid or expired reset token")
	}

	user, err := s.userRepo.GetByEmail(emailAddr)
	if err != nil {
		return errors.New("invalid or expired reset token")
	}

	hashedPassword, err := bcrypt.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	return s.userRepo.Update(user)
}

// Reset tokens are short-lived and carry only the subject, so the v4
// RegisteredClaims shape is enough here.
func (s *AuthService) generateResetToken(emailAddr string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   emailAddr,
		Issuer:    s.jwtIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpiryReset)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) parseResetToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	return claims.Subject, nil
}
