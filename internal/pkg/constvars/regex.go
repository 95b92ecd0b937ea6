package constvars

const (
	RegexEmail      = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
	RegexDigitsOnly = `[0-9]`
	RegexTimeHHMM   = `^([01][0-9]|2[0-3]):[0-5][0-9]$`
)
