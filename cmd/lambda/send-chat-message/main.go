// Chat message relay Lambda entry point
package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"notebook-relay/internal/config"
	"notebook-relay/internal/handlers"
	"notebook-relay/internal/services/webhook"
	"notebook-relay/internal/utils"
)

func main() {
	cfg, _ := config.Load()
	_ = utils.InitLogger(cfg.LogLevel)
	defer utils.Sync()

	handler := handlers.NewChatHandler(cfg, webhook.NewClient())

	lambda.Start(httpadapter.New(handler).ProxyWithContext)
}
