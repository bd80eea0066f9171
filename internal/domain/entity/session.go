package entity

// Session is the authenticated caller, resolved once per request by the auth middleware
// and passed explicitly to every use case that needs to know who is acting.
type Session struct {
	UserID      string
	Email       string
	DisplayName string
	PhotoURL    string
}

// Name is what other users see for this caller: the display name, else the email.
func (s Session) Name() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Email
}
