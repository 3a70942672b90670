package quiz

import (
	svc "github.com/cyberquest/cyberquest/internal/quiz"
)

// startedMsg is sent when the player is registered and questions are loaded.
type startedMsg struct {
	Session *svc.Session
	Err     error
}

// submittedMsg is sent when the submission has been evaluated and recorded.
type submittedMsg struct {
	Result *svc.Submitted
	Err    error
}
