package domain

import "fmt"

// AttachmentType enumerates attachment kinds.
type AttachmentType string

const (
	AttachmentTypeImage AttachmentType = "image"
	AttachmentTypeLog   AttachmentType = "log"
	AttachmentTypeOther AttachmentType = "other"
)

// ParseAttachmentType converts a free string into an AttachmentType.
func ParseAttachmentType(value string) (AttachmentType, error) {
	switch AttachmentType(value) {
	case AttachmentTypeImage, AttachmentTypeLog, AttachmentTypeOther:
		return AttachmentType(value), nil
	}
	return "", fmt.Errorf("invalid attachment type %q. Valid values: %s, %s, %s",
		value, AttachmentTypeImage, AttachmentTypeLog, AttachmentTypeOther)
}

// Attachment is a file reference attached to a ticket.
type Attachment struct {
	ID            int64
	TicketID      int64
	Type          AttachmentType
	FilePath      string
	Transcription string
}
