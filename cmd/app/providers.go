package main

import (
	"github.com/yanqian/envwatch/internal/domain/fluctuation"
	"github.com/yanqian/envwatch/internal/domain/monitor"
	"github.com/yanqian/envwatch/internal/infra/config"
)

func provideMonitorConfig(cfg *config.Config) monitor.Config {
	return monitor.Config{
		PollInterval: cfg.Monitor.PollInterval,
		DefaultRole:  cfg.Monitor.DefaultRole,
	}
}

// provideFluctuationModel seeds the process wide random walk. A restart
// reseeds every pollutant.
func provideFluctuationModel() *fluctuation.Model {
	return fluctuation.NewModel()
}
