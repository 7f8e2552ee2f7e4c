package store

// ProfileUnknown is the sentinel value used until a profile has been
// successfully extracted for a session.
const ProfileUnknown = "정보 없음"

// HistoryWindow is the maximum number of turn pairs kept per session.
const HistoryWindow = 5

// Document represents one retrieved policy chunk from the vector index
type Document struct {
	PolicyID string  `json:"policy_id"`
	Category string  `json:"category"`
	Source   string  `json:"source"`
	Content  string  `json:"content"`
	Score    float64 `json:"score"`
	HasScore bool    `json:"has_score"`
}

// Turn is a single (user input, bot output) exchange
type Turn struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Session represents the active conversation state in memory
type Session struct {
	ID      string `json:"id"`
	Profile string `json:"profile"`

	// Rolling window of the most recent turns, oldest first
	History []Turn `json:"history"`
}

// NewSession creates an empty session with the unknown-profile sentinel
func NewSession(id string) *Session {
	return &Session{
		ID:      id,
		Profile: ProfileUnknown,
	}
}

// HasProfile reports whether a real profile has been extracted
func (s *Session) HasProfile() bool {
	return s.Profile != "" && s.Profile != ProfileUnknown
}

// AdoptProfile sets the profile only when the session has none yet and the
// candidate is a real value. A known profile is never downgraded.
func (s *Session) AdoptProfile(candidate string) bool {
	if s.HasProfile() {
		return false
	}
	if candidate == "" || candidate == ProfileUnknown {
		return false
	}
	s.Profile = candidate
	return true
}

// AppendTurn records an exchange, evicting the oldest turn once the
// window is full.
func (s *Session) AppendTurn(input, output string) {
	s.History = append(s.History, Turn{Input: input, Output: output})
	if len(s.History) > HistoryWindow {
		s.History = s.History[len(s.History)-HistoryWindow:]
	}
}
