package v1

import (
	"github.com/gin-gonic/gin"

	"jan-chat/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates route registration. The chat API keeps its paths at the
// root so existing clients keep working.
type Routes struct {
	handlers   *handlers.Provider
	serveFiles bool
}

func NewRoutes(provider *handlers.Provider, serveFiles bool) *Routes {
	return &Routes{handlers: provider, serveFiles: serveFiles}
}

// Register attaches all chat API routes to router.
func (r *Routes) Register(router gin.IRouter) {
	router.POST("/chat", r.handlers.Chat.Chat)
	router.POST("/generateChatTitle", r.handlers.Title.GenerateChatTitle)
	router.POST("/upload", r.handlers.Upload.Upload)

	router.GET("/chats", r.handlers.Conversation.ListChats)
	router.POST("/saveChat", r.handlers.Conversation.SaveChat)
	router.POST("/deleteChat", r.handlers.Conversation.DeleteChat)
	router.POST("/archiveAllChats", r.handlers.Conversation.ArchiveAllChats)
	router.POST("/deleteAllChats", r.handlers.Conversation.DeleteAllChats)

	router.POST("/contact", r.handlers.Contact.Contact)

	if r.serveFiles {
		router.GET("/files/*key", r.handlers.Upload.Serve)
	}
}
