package validate

// User-facing validation messages. Kept in one place so form fields and
// CSV error banners stay consistent.
const (
	MsgNameRequired       = "name is required"
	MsgNameAlreadyExists  = "a contact with this name already exists"
	MsgPhoneRequired      = "phone number is required"
	MsgPhoneInvalidChars  = "phone number may only contain digits and hyphens"
	MsgPhoneInvalidLength = "phone number must start with 0 and contain 10 to 11 digits"
	MsgGroupNameRequired  = "group name is required"
	MsgGroupAlreadyExists = "a group with this name already exists"
	MsgContactIDInvalid   = "contactId must be a UUID or empty"
)
