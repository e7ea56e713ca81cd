package domain

type View string

const (
	ViewHome    View = "home"
	ViewNumbers View = "numbers"
	ViewInbox   View = "inbox"
)

// Views lists the main tabs in navigation order.
func Views() []View {
	return []View{ViewHome, ViewNumbers, ViewInbox}
}

func (v View) Label() string {
	switch v {
	case ViewNumbers:
		return "Numbers"
	case ViewInbox:
		return "Inbox"
	default:
		return "Home"
	}
}

type BootState int

const (
	BootSplash BootState = iota
	BootGate
)

// Screen is the top-level render decision.
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenAuth
	ScreenMain
)

func (s Screen) String() string {
	switch s {
	case ScreenSplash:
		return "splash"
	case ScreenAuth:
		return "auth"
	default:
		return "main"
	}
}
