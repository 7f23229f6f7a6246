package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gerunddev/docbridge/internal/config"
	"github.com/gerunddev/docbridge/internal/output"
	"github.com/gerunddev/docbridge/internal/styles"
)

const configUsage = `Usage: docbridge config [show|init|path]

  show   Print the effective configuration (default)
  init   Write the default configuration file
  path   Print the configuration file path
`

// Config shows or initializes the configuration file
func Config(args []string) {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "show":
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		text, err := showConfig(cfg)
		if err != nil {
			fail(err)
		}
		fmt.Println(styles.DimStyle.Render("# " + config.ConfigPath()))
		fmt.Print(text)

	case "init":
		path, err := initConfig()
		if err != nil {
			fail(err)
		}
		fmt.Println(styles.Success("Wrote default configuration to " + styles.PathStyle.Render(path)))

	case "path":
		fmt.Println(config.ConfigPath())

	case "help", "-h", "--help":
		fmt.Print(configUsage)

	default:
		usageError(configUsage, fmt.Errorf("%w: unknown config command %q", ErrUsage, sub))
	}
}

func showConfig(cfg *config.Config) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// initConfig writes the defaults unless a configuration file already exists
func initConfig() (string, error) {
	path := config.ConfigPath()
	if output.Exists(path) {
		return "", fmt.Errorf("config file already exists: %s", path)
	}
	if err := config.DefaultConfig().Save(); err != nil {
		return "", err
	}
	return path, nil
}
