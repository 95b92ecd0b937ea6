package contracts

import (
	"clinibook-service/internal/app/models"
	"clinibook-service/internal/pkg/dto/requests"
	"clinibook-service/internal/pkg/dto/responses"
	"context"
)

type DirectoryUsecase interface {
	ListSpecialties(ctx context.Context) ([]string, error)
	ListDoctors(ctx context.Context, specialty string) ([]responses.DoctorSummary, error)
}

type DoctorClient interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindBySpecialty(ctx context.Context, specialty string) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
}

type SpecialtyClient interface {
	FindAll(ctx context.Context) ([]string, error)
}

type AppointmentClient interface {
	CreateAppointment(ctx context.Context, request *requests.ClinicAppointment) (*responses.ClinicAppointment, error)
}
