// Package session models the visitor gate as an explicit two-state machine:
// Anonymous -> Registered. The only defined transition is a successful
// registration (or presenting a previously-issued valid token); no logout
// flow exists. Keeping the state an explicit value passed through the API
// layer keeps transitions auditable.
package session

import "encoding/json"

type State int

const (
	Anonymous State = iota
	Registered
)

func (s State) String() string {
	if s == Registered {
		return "registered"
	}
	return "anonymous"
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *State) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str == "registered" {
		*s = Registered
	} else {
		*s = Anonymous
	}
	return nil
}

// Session is the gate value for one visitor. The zero value is the
// Anonymous session.
type Session struct {
	State   State  `json:"state"`
	LeadID  string `json:"-"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Keyword string `json:"keyword,omitempty"`
}

func (s Session) IsRegistered() bool { return s.State == Registered }
