package amqp

import (
	"encoding/json"
	"time"
)

// RefreshMessage tells consumers the worksheet mirror changed and cached
// datasets should be dropped. It carries no data; consumers refetch.
type RefreshMessage struct {
	Reason    string    `json:"reason"`
	Rows      int       `json:"rows"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRefreshMessage creates a refresh notification.
func NewRefreshMessage(reason string, rows int) *RefreshMessage {
	return &RefreshMessage{
		Reason:    reason,
		Rows:      rows,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *RefreshMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RefreshMessageFromJSON creates a message from JSON bytes.
func RefreshMessageFromJSON(data []byte) (*RefreshMessage, error) {
	var msg RefreshMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
