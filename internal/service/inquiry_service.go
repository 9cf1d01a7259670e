package service

import (
	"errors"

	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/repository"
	"github.com/sefazor/coworkly-backend/pkg/email"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type InquiryService struct {
	inquiryRepo  *repository.InquiryRepository
	emailService *email.EmailService
	logger       *zap.Logger
}

func NewInquiryService(inquiryRepo *repository.InquiryRepository, emailService *email.EmailService, logger *zap.Logger) *InquiryService {
	return &InquiryService{
		inquiryRepo:  inquiryRepo,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *InquiryService) SubmitInquiry(req models.InquiryRequest) (*models.Inquiry, error) {
	inquiry := &models.Inquiry{
		FullName: req.FullName,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
		Status:   models.InquiryNew,
	}
	if err := s.inquiryRepo.Create(inquiry); err != nil {
		return nil, err
	}

	go func() {
		if err := s.emailService.SendInquiryNotification(inquiry.FullName, inquiry.Email, inquiry.Subject, inquiry.Message); err != nil {
			s.logger.Warn("Failed to send inquiry notification", zap.Error(err))
		}
	}()

	return inquiry, nil
}

func (s *InquiryService) GetInquiries(status models.InquiryStatus) ([]models.Inquiry, error) {
	return s.inquiryRepo.GetAll(status)
}

func (s *InquiryService) UpdateInquiryStatus(id uint, status models.InquiryStatus) (*models.Inquiry, error) {
	inquiry, err := s.inquiryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Reject("Inquiry not found")
		}
		return nil, err
	}

	inquiry.Status = status
	if err := s.inquiryRepo.Update(inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}
