// Package message provides a content-bearing Message abstraction.
// Implementations only supply the one-argument update; Update layers the
// "No Content" default on top of it for every implementation.
package message

import "github.com/samber/lo"

// DefaultContent is stored when Update is called without a value.
const DefaultContent = "No Content"

// Message defines the operation every content-bearing type must implement.
type Message interface {
	// UpdateContent replaces the current content with content.
	UpdateContent(content string)
}

// MyMessage is the basic Message implementation.
type MyMessage struct {
	Content string `json:"content"`
}

// New creates a message holding the given content
func New(content string) *MyMessage {
	return &MyMessage{Content: content}
}

// UpdateContent sets the content to exactly the given value
func (m *MyMessage) UpdateContent(content string) {
	m.Content = content
}

// Update forwards content to m.UpdateContent, or DefaultContent when content is nil.
// An empty but non-nil content is forwarded as-is.
//
// Example:
//
//	msg := message.New("Hello")
//	message.Update(msg, nil)
//	// msg.Content = "No Content"
func Update(m Message, content *string) {
	m.UpdateContent(lo.FromPtrOr(content, DefaultContent))
}
