package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Visitor is one tracked page view. The IP is stored hashed, never raw.
type Visitor struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatMessage is one question and the reply the chatbot gave to it.
type ChatMessage struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Query     string    `json:"query"`
	Topic     string    `json:"topic"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactMessage is a submission of the contact form.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Delivered bool      `json:"delivered"`
	CreatedAt time.Time `json:"created_at"`
}

// TopicCount is the number of chat messages answered by one topic.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int64  `json:"count"`
}

// Stats aggregates what the admin dashboard shows.
type Stats struct {
	TotalVisitors       int64         `json:"total_visitors"`
	UniqueVisitors      int64         `json:"unique_visitors"`
	VisitorsToday       int64         `json:"visitors_today"`
	VisitorsThisWeek    int64         `json:"visitors_this_week"`
	TotalChats          int64         `json:"total_chats"`
	ChatSessions        int64         `json:"chat_sessions"`
	TopTopics           []TopicCount  `json:"top_topics"`
	TotalContacts       int64         `json:"total_contacts"`
	UndeliveredContacts int64         `json:"undelivered_contacts"`
	RecentChats         []ChatMessage `json:"recent_chats"`
	RecentVisitors      []Visitor     `json:"recent_visitors"`
}

// CleanupResult reports rows removed by a retention sweep.
type CleanupResult struct {
	Visitors int64 `json:"visitors"`
	Chats    int64 `json:"chats"`
}
