package clinic

import (
	"clinibook-service/internal/app/contracts"
	"clinibook-service/internal/app/models"
	"clinibook-service/internal/pkg/constvars"
	"clinibook-service/internal/pkg/dto/responses"
	"clinibook-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type doctorRestClient struct {
	rest   *RestClient
	logger *zap.Logger
}

func NewDoctorRestClient(rest *RestClient, logger *zap.Logger) contracts.DoctorClient {
	return &doctorRestClient{rest: rest, logger: logger}
}

func (c *doctorRestClient) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return c.fetchDoctors(ctx, constvars.ResourceDoctors)
}

func (c *doctorRestClient) FindBySpecialty(ctx context.Context, specialty string) ([]models.Doctor, error) {
	path := fmt.Sprintf("%s?specialite=%s", constvars.ResourceDoctors, url.QueryEscape(specialty))
	return c.fetchDoctors(ctx, path)
}

func (c *doctorRestClient) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	resp, err := c.rest.do(ctx, constvars.MethodGet, constvars.ResourceDoctors+"/"+url.PathEscape(doctorID), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrDoctorNotFound(nil, doctorID)
	}
	if resp.StatusCode != constvars.StatusOK {
		backendErr := errors.New(backendMessage(resp.Body))
		return nil, exceptions.ErrGetClinicResource(backendErr, constvars.ResourceDoctors)
	}

	wireDoctor := new(responses.ClinicDoctor)
	if err := json.NewDecoder(resp.Body).Decode(wireDoctor); err != nil {
		return nil, exceptions.ErrDecodeClinicResponse(err, constvars.ResourceDoctors)
	}

	doctor := c.mapDoctor(wireDoctor)
	return &doctor, nil
}

func (c *doctorRestClient) fetchDoctors(ctx context.Context, path string) ([]models.Doctor, error) {
	resp, err := c.rest.do(ctx, constvars.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		backendErr := errors.New(backendMessage(resp.Body))
		return nil, exceptions.ErrGetClinicResource(backendErr, constvars.ResourceDoctors)
	}

	var wireDoctors []responses.ClinicDoctor
	if err := json.NewDecoder(resp.Body).Decode(&wireDoctors); err != nil {
		return nil, exceptions.ErrDecodeClinicResponse(err, constvars.ResourceDoctors)
	}

	doctors := make([]models.Doctor, 0, len(wireDoctors))
	for i := range wireDoctors {
		doctors = append(doctors, c.mapDoctor(&wireDoctors[i]))
	}
	return doctors, nil
}

// mapDoctor translates the wire record to the internal model. Schedule keys
// that are not recognizable day names are dropped with a log line rather than
// failing the whole doctor.
func (c *doctorRestClient) mapDoctor(wire *responses.ClinicDoctor) models.Doctor {
	doctor := models.Doctor{
		ID:        wire.ID,
		FirstName: wire.FirstName,
		LastName:  wire.LastName,
		Specialty: wire.Specialty,
	}
	if len(wire.HorairesParJour) == 0 {
		return doctor
	}

	doctor.WeeklyAvailability = make(map[models.Weekday][]models.ScheduleSlot, len(wire.HorairesParJour))
	for dayName, wireSlots := range wire.HorairesParJour {
		weekday, ok := models.ParseWeekdayName(dayName)
		if !ok {
			c.logger.Warn("unrecognized schedule day name",
				zap.String(constvars.LoggingDoctorIDKey, wire.ID),
				zap.String("day_name", dayName),
			)
			continue
		}

		slots := make([]models.ScheduleSlot, 0, len(wireSlots))
		for _, wireSlot := range wireSlots {
			slots = append(slots, models.ScheduleSlot{
				Time:   wireSlot.Time,
				SlotID: wireSlot.SlotID,
			})
		}
		// Same-day keys differing only in case collapse onto one weekday.
		doctor.WeeklyAvailability[weekday] = append(doctor.WeeklyAvailability[weekday], slots...)
	}
	return doctor
}
