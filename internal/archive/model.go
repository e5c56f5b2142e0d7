package archive

import "time"

// Record is one finalized order, persisted after the engine emits
// its summary. The engine never writes these itself; the chat layer
// does, after the reply is already composed.
type Record struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Summary        string    `json:"summary"`
	Total          float64   `json:"total"`
	Method         string    `json:"method"`
	Payment        string    `json:"payment"`
	CreatedAt      time.Time `json:"created_at"`
}
