package controller

import (
	"time"

	"github.com/google/uuid"
)

// NoticeTTL is how long a notice stays visible before it is dismissed.
const NoticeTTL = 5 * time.Second

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeWarning NoticeKind = "warning"
	NoticeInfo    NoticeKind = "info"
)

// Notice is a transient message for the user. ID identifies this particular
// notice so that an expiry timer only dismisses the notice it was started for.
type Notice struct {
	ID      string
	Kind    NoticeKind
	Message string
}

// NewNotice creates a notice with a fresh id.
func NewNotice(kind NoticeKind, message string) Notice {
	return Notice{ID: uuid.NewString(), Kind: kind, Message: message}
}

// Icon returns the glyph shown before the message.
func (n Notice) Icon() string {
	switch n.Kind {
	case NoticeSuccess:
		return "✓"
	case NoticeError:
		return "✕"
	case NoticeWarning:
		return "⚠"
	default:
		return "ℹ"
	}
}

// IsZero reports whether n carries no message.
func (n Notice) IsZero() bool {
	return n.Message == ""
}
