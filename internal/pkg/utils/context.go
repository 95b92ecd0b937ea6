package utils

import (
	"clinibook-service/internal/pkg/constvars"
	"clinibook-service/internal/pkg/exceptions"
	"context"
)

func RequestIDFromContext(ctx context.Context) (string, error) {
	requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		return "", exceptions.ErrMissingRequestID(nil)
	}
	return requestID, nil
}

func SessionIDFromContext(ctx context.Context) (string, error) {
	sessionID, ok := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if !ok || sessionID == "" {
		return "", exceptions.ErrMissingSessionData(nil)
	}
	return sessionID, nil
}
