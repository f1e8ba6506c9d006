package models

import "time"

// ChatRequest is the expected input for the conversational endpoint.
// Lat/Lon arrive as strings; values that do not parse as numbers are
// treated as absent rather than rejected.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Lat       string `json:"lat"`
	Lon       string `json:"lon"`
}

// ChatResponse carries the rendered reply back to the client.
type ChatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
}

// ConversationTurn is one archived message/reply pair.
type ConversationTurn struct {
	ID        string    `bson:"_id" json:"id"`
	SessionID string    `bson:"session_id" json:"session_id"`
	Message   string    `bson:"message" json:"message"`
	Intent    string    `bson:"intent" json:"intent"`
	Reply     string    `bson:"reply" json:"reply"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
