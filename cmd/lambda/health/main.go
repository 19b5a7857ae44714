// Health check Lambda entry point
package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"notebook-relay/internal/config"
	"notebook-relay/internal/handlers"
	"notebook-relay/internal/services/status"
	"notebook-relay/internal/utils"
)

func main() {
	cfg, _ := config.Load()
	_ = utils.InitLogger(cfg.LogLevel)
	defer utils.Sync()

	store, err := status.New(cfg)
	if err != nil {
		store = nil
	}

	handler := handlers.NewHealthHandler(store)

	lambda.Start(httpadapter.New(handler).ProxyWithContext)
}
