package websockets

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/kekechi03/ero/internal/model"
)

// Message types
const (
	MsgTypeSubscribe  = "subscribe"
	MsgTypeVoteUpdate = "vote_update"
)

// Client represents a connected WebSocket user
type Client struct {
	Conn   *websocket.Conn
	UserID string
}

type FeedManager struct {
	clients    map[*websocket.Conn]*Client
	broadcast  chan []byte
	register   chan *Client
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

// Message struct for incoming WebSocket messages
type Message struct {
	Type   string `json:"type"`
	UserID string `json:"user_id,omitempty"`
}

// VoteUpdate is pushed to every subscriber when a vote lands.
type VoteUpdate struct {
	Type   string              `json:"type"`
	Counts model.UpdatedCounts `json:"counts"`
}
