// Processing callback Lambda entry point
package main

import (
	"errors"

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
		if errors.Is(err, status.ErrNotConfigured) {
			utils.GetLogger().Warn("No status store configured; callbacks cannot be recorded")
		} else {
			utils.GetLogger().Warn("Could not connect to status store", utils.Error(err))
		}
		store = nil
	}

	handler := handlers.NewCallbackHandler(store)

	lambda.Start(httpadapter.New(handler).ProxyWithContext)
}
