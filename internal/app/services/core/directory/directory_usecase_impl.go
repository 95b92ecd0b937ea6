package directory

import (
	"clinibook-service/internal/app/contracts"
	"clinibook-service/internal/app/models"
	"clinibook-service/internal/pkg/dto/responses"
	"context"

	"go.uber.org/zap"
)

type directoryUsecase struct {
	doctors     contracts.DoctorClient
	specialties contracts.SpecialtyClient
	logger      *zap.Logger
}

func NewDirectoryUsecase(doctorClient contracts.DoctorClient, specialtyClient contracts.SpecialtyClient, logger *zap.Logger) contracts.DirectoryUsecase {
	return &directoryUsecase{
		doctors:     doctorClient,
		specialties: specialtyClient,
		logger:      logger,
	}
}

func (u *directoryUsecase) ListSpecialties(ctx context.Context) ([]string, error) {
	return u.specialties.FindAll(ctx)
}

func (u *directoryUsecase) ListDoctors(ctx context.Context, specialty string) ([]responses.DoctorSummary, error) {
	var (
		doctors []models.Doctor
		err     error
	)
	if specialty != "" {
		doctors, err = u.doctors.FindBySpecialty(ctx, specialty)
	} else {
		doctors, err = u.doctors.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	summaries := make([]responses.DoctorSummary, 0, len(doctors))
	for _, doctor := range doctors {
		summaries = append(summaries, responses.DoctorSummary{
			ID:        doctor.ID,
			Name:      doctor.DisplayName(),
			Specialty: doctor.Specialty,
		})
	}
	return summaries, nil
}
