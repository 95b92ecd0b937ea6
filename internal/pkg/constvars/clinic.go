package constvars

// Resource path segments on the clinic backend API.
const (
	ResourceDoctors      = "/medecins"
	ResourceSpecialties  = "/specialites"
	ResourceAppointments = "/rendez-vous"
)

const (
	ConsultationTypeCabinet = "Cabinet"
	ConsultationTypeOnline  = "En ligne"
)
