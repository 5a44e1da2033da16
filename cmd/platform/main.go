package main

import (
	"github.com/charmbracelet/log"

	"github.com/simplyzetax/platform"
	"github.com/simplyzetax/platform/internal/config"
	"github.com/simplyzetax/platform/internal/server"
	"github.com/simplyzetax/platform/internal/ui"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Debugf("Platform: %s/%s", platform.OS, platform.Arch)
	log.Debugf("Config: %s", config.GetConfigPath())

	if config.Config.Server.Enabled {
		log.Info("Server enabled in configuration, skipping menu...")
		if err := server.Listen(config.Config); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}

	for {
		action, err := ui.ShowStartupMenu()
		if err != nil {
			log.Fatalf("Menu error: %v", err)
		}

		switch action {
		case "target":
			ui.ShowTarget()
		case "targets":
			ui.ShowTargetList()
		case "resolve":
			if err := ui.ResolveValueForm(); err != nil {
				log.Errorf("Failed to resolve value: %v", err)
			}
		case "set":
			if err := ui.SetValueForm(); err != nil {
				log.Errorf("Failed to set value: %v", err)
			}
		case "remove":
			if err := ui.RemoveValueForm(); err != nil {
				log.Errorf("Failed to remove value: %v", err)
			}
		case "reload":
			if err := config.Reload(); err != nil {
				log.Errorf("Failed to reload configuration: %v", err)
			} else {
				log.Infof("Reloaded %s", config.GetConfigPath())
			}
		case "serve":
			if err := server.Listen(config.Config); err != nil {
				log.Errorf("Server failed: %v", err)
			}
		case "exit":
			log.Info("Goodbye!")
			return
		default:
			log.Errorf("Unknown action: %s", action)
		}
	}
}
