package repository

import (
	"github.com/sefazor/coworkly-backend/internal/models"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *CustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Order("created_at DESC").Find(&customers).Error
	return customers, err
}

func (r *CustomerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

func (r *CustomerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Customer{}, id).Error
}

func (r *CustomerRepository) CreateVisit(visit *models.GuestVisit) error {
	return r.db.Create(visit).Error
}

func (r *CustomerRepository) GetVisits(customerID uint) ([]models.GuestVisit, error) {
	var visits []models.GuestVisit
	err := r.db.Where("customer_id = ?", customerID).
		Order("checked_in_at DESC").
		Find(&visits).Error
	return visits, err
}
