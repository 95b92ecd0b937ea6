package clinic

import (
	"bytes"
	"clinibook-service/internal/app/contracts"
	"clinibook-service/internal/pkg/constvars"
	"clinibook-service/internal/pkg/dto/requests"
	"clinibook-service/internal/pkg/dto/responses"
	"clinibook-service/internal/pkg/exceptions"
	"context"
	"errors"

	"github.com/goccy/go-json"
)

type appointmentRestClient struct {
	rest *RestClient
}

func NewAppointmentRestClient(rest *RestClient) contracts.AppointmentClient {
	return &appointmentRestClient{rest: rest}
}

func (c *appointmentRestClient) CreateAppointment(ctx context.Context, request *requests.ClinicAppointment) (*responses.ClinicAppointment, error) {
	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	resp, err := c.rest.do(ctx, constvars.MethodPost, constvars.ResourceAppointments, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == constvars.StatusOK || resp.StatusCode == constvars.StatusCreated:
		// accepted
	case resp.StatusCode >= constvars.StatusBadRequest && resp.StatusCode < constvars.StatusInternalServerError:
		// The backend turned the booking down: slot taken, payload invalid.
		return nil, exceptions.ErrClinicBackendRejected(backendMessage(resp.Body))
	default:
		backendErr := errors.New(backendMessage(resp.Body))
		return nil, exceptions.ErrCreateClinicResource(backendErr, constvars.ResourceAppointments)
	}

	appointment := new(responses.ClinicAppointment)
	if err := json.NewDecoder(resp.Body).Decode(appointment); err != nil {
		return nil, exceptions.ErrDecodeClinicResponse(err, constvars.ResourceAppointments)
	}
	return appointment, nil
}
