package responses

import (
	"jan-chat/internal/domain/conversation"
	"jan-chat/internal/domain/message"
)

type ChatResponse struct {
	Reply string `json:"reply"`
}

type TitleResponse struct {
	Title string `json:"title"`
}

type UploadedFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type UploadResponse struct {
	Message string       `json:"message"`
	File    UploadedFile `json:"file"`
}

type ChatsResponse struct {
	Chats []message.Conversation `json:"chats"`
}

type SaveChatResponse struct {
	ID string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CountResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// NewChatsResponse converts stored conversations, keeping their order.
func NewChatsResponse(convs []*conversation.Conversation) ChatsResponse {
	chats := make([]message.Conversation, 0, len(convs))
	for _, c := range convs {
		chats = append(chats, c.ToMessageConversation())
	}
	return ChatsResponse{Chats: chats}
}
