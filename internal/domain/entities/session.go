package entities

// UserSession is the identity resolved from the session store at the moment
// of an action. It is re-resolved before every attributed call rather than
// cached, so a mid-session logout is respected immediately. A nil session
// means the action is anonymous.
type UserSession struct {
	UserID string `json:"_id"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
}

// Anonymous reports whether the session carries no usable identity.
func (s *UserSession) Anonymous() bool {
	return s == nil || s.UserID == ""
}
