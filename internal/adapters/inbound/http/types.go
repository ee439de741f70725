package http

import (
	"encoding/json"
	"time"
)

// QueryRequest is the body of POST /query.
type QueryRequest struct {
	Query     string  `json:"query"`
	SessionID *string `json:"session_id,omitempty"`
	UserID    *string `json:"user_id,omitempty"`
}

// QueryResp is the answer to a query.
type QueryResp struct {
	Success   bool      `json:"success"`
	Response  string    `json:"response"`
	SessionID string    `json:"session_id"`
	ToolCalls int       `json:"tool_calls"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResp is the envelope returned for every failed request.
type ErrorResp struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResp is the body of GET /health.
type HealthResp struct {
	Status             string `json:"status"`
	ToolsLoaded        int    `json:"tools_loaded"`
	MCPServerConnected bool   `json:"mcp_server_connected"`
}

// Tool describes a registered tool and its resolved route.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
	Method      string          `json:"method"`
	Path        string          `json:"path"`
	Explicit    bool            `json:"explicit"`
}

// ToolListResp is the body of GET /tools.
type ToolListResp struct {
	Success bool   `json:"success"`
	Tools   []Tool `json:"tools"`
}

// ToolRefreshResp is the body of POST /tools/refresh.
type ToolRefreshResp struct {
	Success            bool      `json:"success"`
	ToolsLoaded        int       `json:"tools_loaded"`
	MCPServerConnected bool      `json:"mcp_server_connected"`
	DiscoveredAt       time.Time `json:"discovered_at"`
}

// CreateSessionRequest is the body of POST /sessions.
type CreateSessionRequest struct {
	UserID *string `json:"user_id,omitempty"`
	Title  *string `json:"title,omitempty"`
}

// CreateSessionResp is returned after creating a session.
type CreateSessionResp struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
}

// Session is one conversation session.
type Session struct {
	SessionID      string    `json:"session_id"`
	UserID         string    `json:"user_id"`
	Title          string    `json:"title"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	MessageCount   int       `json:"message_count"`
}

// SessionListResp is the body of GET /sessions.
type SessionListResp struct {
	Success  bool      `json:"success"`
	Sessions []Session `json:"sessions"`
}

// ToolCall is a tool invocation requested by the assistant.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Message is one persisted message of a session.
type Message struct {
	ID         int64      `json:"id"`
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID *string    `json:"tool_call_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// HistoryResp is the body of GET /sessions/{session_id}/history.
type HistoryResp struct {
	Success   bool      `json:"success"`
	SessionID string    `json:"session_id"`
	History   []Message `json:"history"`
}

// PurgeResp is the body of DELETE /sessions.
type PurgeResp struct {
	Success         bool  `json:"success"`
	DeletedMessages int64 `json:"deleted_messages"`
	DeletedSessions int64 `json:"deleted_sessions"`
}

// MemoryStats holds aggregate counters over the stored conversations.
type MemoryStats struct {
	TotalMessages int64 `json:"total_messages"`
	TotalSessions int64 `json:"total_sessions"`
	UniqueUsers   int64 `json:"unique_users"`
}

// MemoryStatsResp is the body of GET /memory/stats.
type MemoryStatsResp struct {
	Success bool        `json:"success"`
	Stats   MemoryStats `json:"stats"`
}
