package domain

// Session is the whole durable state of the client.
type Session struct {
	IsLoggedIn   bool          `json:"isLoggedIn"`
	ActiveNumber *ActiveNumber `json:"activeNumber"`
	Messages     []Message     `json:"messages"`
}

// ActiveNumber is replaced wholesale by each allocation and never edited in place.
type ActiveNumber struct {
	Flag     string `json:"flag"`
	DialCode string `json:"dialCode"`
	Number   string `json:"number"`
}

type Message struct {
	ID     string `json:"id"`
	Sender string `json:"sender"`
	Body   string `json:"body"`
	Time   string `json:"time"`
}

// Allocation is the atomic result of provisioning a line: the number and the
// inbox entry announcing it are applied together.
type Allocation struct {
	Number  ActiveNumber
	Message Message
}

func DefaultSession() Session {
	return Session{Messages: []Message{}}
}

// Clone returns a deep copy so callers never alias controller state.
func (s Session) Clone() Session {
	out := Session{IsLoggedIn: s.IsLoggedIn, Messages: make([]Message, len(s.Messages))}
	copy(out.Messages, s.Messages)
	if s.ActiveNumber != nil {
		number := *s.ActiveNumber
		out.ActiveNumber = &number
	}

	return out
}

// WithAllocation returns the session with the number replaced and the message
// prepended, newest first.
func (s Session) WithAllocation(a Allocation) Session {
	out := s.Clone()
	number := a.Number
	out.ActiveNumber = &number
	out.Messages = append([]Message{a.Message}, out.Messages...)

	return out
}

func (s Session) HasActiveNumber() bool {
	return s.ActiveNumber != nil && s.ActiveNumber.Number != ""
}
