//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"jan-chat/internal/domain"
	"jan-chat/internal/infrastructure"
	"jan-chat/internal/interfaces/httpserver"
	"jan-chat/internal/interfaces/httpserver/handlers"
)

// BuildApplication assembles the chat API with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		handlers.HandlerProvider,
		httpserver.NewReadinessChecks,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}
