package requests

// FieldChange is one user edit coming off the booking form. Exactly one field
// changes per request; the reducer owns every dependent reset.
type FieldChange struct {
	Revision int    `json:"revision" validate:"min=0"`
	Field    string `json:"field" validate:"required,oneof=fullName email phone consultationType specialty doctor date time reason"`
	Value    string `json:"value"`
}

// StageTransition guards next/back/submit against a stale view of the draft.
type StageTransition struct {
	Revision int `json:"revision" validate:"min=0"`
}
