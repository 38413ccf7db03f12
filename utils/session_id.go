package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateSessionID returns a new chat session id using a stable chat_ prefix
// followed by the lowercase UUID without dashes. The widget stores the id in
// localStorage, so the format has to stay stable across releases.
func GenerateSessionID() string {
	return "chat_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
