package service

import (
	"errors"

	"github.com/sefazor/coworkly-backend/internal/models"
	"github.com/sefazor/coworkly-backend/internal/repository"
	"gorm.io/gorm"
)

type RoomService struct {
	roomRepo *repository.RoomRepository
}

func NewRoomService(roomRepo *repository.RoomRepository) *RoomService {
	return &RoomService{roomRepo: roomRepo}
}

func (s *RoomService) GetRooms(includeInactive bool) ([]models.MeetingRoom, error) {
	if includeInactive {
		return s.roomRepo.GetAll()
	}
	return s.roomRepo.GetActive()
}

func (s *RoomService) GetRoom(id uint) (*models.MeetingRoom, error) {
	room, err := s.roomRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *RoomService) CreateRoom(req models.RoomRequest) (*models.MeetingRoom, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	room := &models.MeetingRoom{
		Name:       req.Name,
		Location:   req.Location,
		Capacity:   req.Capacity,
		HourlyRate: req.HourlyRate,
		Amenities:  req.Amenities,
		IsActive:   active,
	}
	if err := s.roomRepo.Create(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *RoomService) UpdateRoom(id uint, req models.RoomRequest) (*models.MeetingRoom, error) {
	room, err := s.GetRoom(id)
	if err != nil {
		return nil, err
	}

	room.Name = req.Name
	room.Location = req.Location
	room.Capacity = req.Capacity
	room.HourlyRate = req.HourlyRate
	room.Amenities = req.Amenities
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}

	if err := s.roomRepo.Update(room); err != nil {
		return nil, err
	}
	return room, nil
}
