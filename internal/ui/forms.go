package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/simplyzetax/platform"
	"github.com/simplyzetax/platform/internal/config"
	"github.com/simplyzetax/platform/internal/values"
)

// ShowStartupMenu shows the main application startup menu
func ShowStartupMenu() (string, error) {
	var action string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Platform").
				Description(fmt.Sprintf("Compiled for %s/%s", platform.OS, platform.Arch)).
				Options(
					huh.NewOption("🖥️  Show build target", "target"),
					huh.NewOption("📋 List recognized targets", "targets"),
					huh.NewOption("🔎 Resolve a value", "resolve"),
					huh.NewOption("➕ Set a value", "set"),
					huh.NewOption("🗑️  Remove a value", "remove"),
					huh.NewOption("🔄 Reload configuration", "reload"),
					huh.NewOption("🚀 Start HTTP server", "serve"),
					huh.NewOption("🚪 Exit", "exit"),
				).
				Value(&action),
		),
	)

	return action, form.Run()
}

// ShowTarget logs the target this binary was compiled for
func ShowTarget() {
	info := platform.Info()
	log.Infof("OS: %s", info["os"])
	log.Infof("Architecture: %s", info["architecture"])
	log.Infof("Go: %s (%s)", info["go_version"], info["compiler"])

	var active []string
	for _, t := range platform.Current() {
		active = append(active, t.Name)
	}
	if len(active) == 0 {
		log.Warn("No recognized target matches this build")
		return
	}
	log.Infof("Matching selectors: %s", strings.Join(active, ", "))
}

// ShowTargetList logs every recognized target
func ShowTargetList() {
	for _, t := range platform.Targets() {
		status := "  "
		if t.Active {
			status = "✅"
		}
		log.Infof("%s %-10s %s", status, t.Name, t.Kind)
	}
}

// ResolveValueForm lets the user pick a configured value and shows what it
// resolves to on this build
func ResolveValueForm() error {
	key, err := selectKey("Pick a value to resolve")
	if err != nil || key == "" {
		return err
	}

	value, err := values.Lookup(config.Config.Values, key)
	if err != nil {
		return err
	}

	log.Infof("%s = %q", key, value)
	for target, v := range config.Config.Values[key] {
		log.Debugf("   %s: %q", target, v)
	}
	return nil
}

// SetValueForm asks for a key, a target and a value and saves them
func SetValueForm() error {
	var key, value string
	target := config.DefaultKey

	options := []huh.Option[string]{huh.NewOption("default (no target matches)", config.DefaultKey)}
	for _, t := range platform.Targets() {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", t.Name, t.Kind), t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Value key").
				Description("e.g., greeting, path_separator").
				Value(&key).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("key is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Target").
				Options(options...).
				Value(&target),
			huh.NewInput().
				Title("Value").
				Value(&value),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if err := config.SetValue(key, target, value); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	log.Infof("Set %s for %s", key, target)
	return nil
}

// RemoveValueForm removes a configured value after confirmation
func RemoveValueForm() error {
	key, err := selectKey("Pick a value to remove")
	if err != nil || key == "" {
		return err
	}

	var confirm bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Remove %s?", key)).
				Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := config.RemoveValue(key, ""); err != nil {
		return fmt.Errorf("failed to remove value: %w", err)
	}

	log.Infof("Removed value: %s", key)
	return nil
}

func selectKey(title string) (string, error) {
	keys := config.Keys()
	if len(keys) == 0 {
		log.Info("No values configured")
		return "", nil
	}

	var key string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(huh.NewOptions(keys...)...).
				Value(&key),
		),
	)
	return key, form.Run()
}
