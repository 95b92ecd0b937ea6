package clinic

import (
	"clinibook-service/internal/app/contracts"
	"clinibook-service/internal/pkg/constvars"
	"clinibook-service/internal/pkg/exceptions"
	"context"
	"errors"

	"github.com/goccy/go-json"
)

type specialtyRestClient struct {
	rest *RestClient
}

func NewSpecialtyRestClient(rest *RestClient) contracts.SpecialtyClient {
	return &specialtyRestClient{rest: rest}
}

func (c *specialtyRestClient) FindAll(ctx context.Context) ([]string, error) {
	resp, err := c.rest.do(ctx, constvars.MethodGet, constvars.ResourceSpecialties, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		backendErr := errors.New(backendMessage(resp.Body))
		return nil, exceptions.ErrGetClinicResource(backendErr, constvars.ResourceSpecialties)
	}

	var specialties []string
	if err := json.NewDecoder(resp.Body).Decode(&specialties); err != nil {
		return nil, exceptions.ErrDecodeClinicResponse(err, constvars.ResourceSpecialties)
	}
	return specialties, nil
}
