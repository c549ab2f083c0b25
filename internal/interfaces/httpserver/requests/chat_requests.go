package requests

import "jan-chat/internal/domain/message"

type ChatRequest struct {
	UserMessage    string            `json:"userMessage"`
	Messages       []message.Message `json:"messages"`
	AIMood         string            `json:"aiMood"`
	AIInstructions string            `json:"aiInstructions"`
}

type TitleRequest struct {
	Messages []message.Message `json:"messages"`
}

type SaveChatRequest struct {
	UserKey  string            `json:"userKey"`
	Title    string            `json:"title"`
	Messages []message.Message `json:"messages"`
}

type DeleteChatRequest struct {
	UserKey string `json:"userKey"`
	ChatID  string `json:"chatId"`
}

type UserKeyRequest struct {
	UserKey string `json:"userKey"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
