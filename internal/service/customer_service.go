package service

import (
	"errors"
	"time"

	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/repository"
	"gorm.io/gorm"
)

type CustomerService struct {
	customerRepo    *repository.CustomerRepository
	activityService *ActivityService
}

func NewCustomerService(customerRepo *repository.CustomerRepository, activityService *ActivityService) *CustomerService {
	return &CustomerService{
		customerRepo:    customerRepo,
		activityService: activityService,
	}
}

func (s *CustomerService) GetCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

func (s *CustomerService) GetCustomer(id uint) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Reject("Customer not found")
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) CreateCustomer(adminID uint, req models.CustomerRequest) (*models.Customer, error) {
	customer := &models.Customer{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Company:    req.Company,
		Notes:      req.Notes,
		HostUserID: req.HostUserID,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}

	s.activityService.Log(adminID, "customer.created", "customer", customer.ID, customer.FullName)
	return customer, nil
}

func (s *CustomerService) UpdateCustomer(id uint, req models.CustomerRequest) (*models.Customer, error) {
	customer, err := s.GetCustomer(id)
	if err != nil {
		return nil, err
	}

	customer.FullName = req.FullName
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Company = req.Company
	customer.Notes = req.Notes
	customer.HostUserID = req.HostUserID

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) DeleteCustomer(id uint) error {
	if _, err := s.GetCustomer(id); err != nil {
		return err
	}
	return s.customerRepo.Delete(id)
}

// CheckIn records a guest visit at the front desk.
func (s *CustomerService) CheckIn(adminID, customerID uint, req models.CheckInRequest) (*models.GuestVisit, error) {
	customer, err := s.GetCustomer(customerID)
	if err != nil {
		return nil, err
	}

	visit := &models.GuestVisit{
		CustomerID:  customer.ID,
		CheckedInAt: time.Now(),
		Notes:       req.Notes,
	}
	if err := s.customerRepo.CreateVisit(visit); err != nil {
		return nil, err
	}

	s.activityService.Log(adminID, "customer.checked_in", "customer", customer.ID, customer.FullName)
	return visit, nil
}

func (s *CustomerService) GetVisits(customerID uint) ([]models.GuestVisit, error) {
	if _, err := s.GetCustomer(customerID); err != nil {
		return nil, err
	}
	return s.customerRepo.GetVisits(customerID)
}
