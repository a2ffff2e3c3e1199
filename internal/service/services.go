package service

import (
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/store"
	"github.com/MKhiriev/go-user-service/internal/validators"
)

type Services struct {
	UserService UserService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		UserService: NewUserService(storages.UserRepository, validators.NewUserValidator(), logger),
	}
}
