package constants

// Session and context keys
const (
	SessionCookieName = "group_session"
	ContextKeyUserID  = "user_id"
)

// DeadlineTimeFormat is the wire format for post deadlines. The frontend
// sends and expects exactly this layout, so it must not change.
const DeadlineTimeFormat = "2006-01-02 15:04:05"
