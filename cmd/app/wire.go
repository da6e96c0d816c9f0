//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/envwatch/internal/bootstrap"
	"github.com/yanqian/envwatch/internal/domain/fluctuation"
	"github.com/yanqian/envwatch/internal/domain/monitor"
	"github.com/yanqian/envwatch/internal/infra/config"
	httpiface "github.com/yanqian/envwatch/internal/interface/http"
	"github.com/yanqian/envwatch/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideMonitorConfig,
		provideFluctuationModel,
		monitor.NewService,
		wire.Bind(new(monitor.Walker), new(*fluctuation.Model)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
