package message

import (
	"context"
	"path"
	"strings"

	"jan-chat/internal/utils/platformerrors"
)

// Role identifies the author of a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// FileExt is the coarse attachment kind used for display.
type FileExt string

const (
	FileExtImage   FileExt = "image"
	FileExtPDF     FileExt = "pdf"
	FileExtDocx    FileExt = "docx"
	FileExtUnknown FileExt = "unknown"
)

// DefaultTitle is used whenever a conversation has no generated title.
const DefaultTitle = "Untitled Chat"

// Message is one entry of a conversation.
type Message struct {
	Role          Role      `json:"role"`
	Content       string    `json:"content"`
	References    []string  `json:"references,omitempty"`
	Attachments   []FileRef `json:"attachments,omitempty"`
	DownloadURL   string    `json:"downloadUrl,omitempty"`
	ReportContent string    `json:"reportContent,omitempty"`
}

// FileRef points at an uploaded blob.
type FileRef struct {
	Filename string  `json:"filename"`
	BlobURL  string  `json:"blobUrl"`
	FileExt  FileExt `json:"fileExt"`
}

// Conversation is a titled, ordered sequence of messages owned by one user.
type Conversation struct {
	ID       string    `json:"id,omitempty"`
	Title    string    `json:"title"`
	Messages []Message `json:"messages"`
	UserKey  string    `json:"userKey"`
}

// DisplayTitle returns the title or DefaultTitle when it is blank.
func (c Conversation) DisplayTitle() string {
	if strings.TrimSpace(c.Title) == "" {
		return DefaultTitle
	}
	return c.Title
}

// Validate checks the only structural requirement a message has: a known role and content.
func (m Message) Validate(ctx context.Context) error {
	if !m.Role.IsValid() {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"message role is required", nil, "2f0d6a51-6a0e-4a59-9d0b-3c1c4b0b8e11")
	}
	if strings.TrimSpace(m.Content) == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"message content is required", nil, "8d3f0f5c-2b8e-47a2-9a43-8f3b91f0c2d7")
	}
	return nil
}

// NewFileRef builds a FileRef and derives its kind from the filename extension.
func NewFileRef(filename, blobURL string) FileRef {
	return FileRef{
		Filename: filename,
		BlobURL:  blobURL,
		FileExt:  DetectFileExt(filename),
	}
}

// DetectFileExt maps a filename to its display kind.
func DetectFileExt(filename string) FileExt {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(strings.TrimSpace(filename)), "."))
	switch ext {
	case "png", "jpg", "jpeg", "gif", "webp", "bmp", "svg":
		return FileExtImage
	case "pdf":
		return FileExtPDF
	case "doc", "docx":
		return FileExtDocx
	default:
		return FileExtUnknown
	}
}

// Clone returns a deep copy so callers can hand out snapshots safely.
func Clone(messages []Message) []Message {
	if messages == nil {
		return nil
	}
	out := make([]Message, len(messages))
	for i, m := range messages {
		out[i] = m
		if m.References != nil {
			out[i].References = append([]string(nil), m.References...)
		}
		if m.Attachments != nil {
			out[i].Attachments = append([]FileRef(nil), m.Attachments...)
		}
	}
	return out
}
