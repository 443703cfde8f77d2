package config

import (
	"fmt"
	"net/http"

	"github.com/atlanticdynamic/hellocontainer/internal/fancy"
)

// String returns a pretty-printed tree representation of the config
func (c *Config) String() string {
	return ConfigTree(c)
}

// ConfigTree converts a Config struct into a rendered tree string
func ConfigTree(cfg *Config) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render("Hellocontainer Config"))

	t.Child(fancy.Branch("Listener",
		fmt.Sprintf("Address: %s", fancy.ListenerText(cfg.Address())),
		"Protocol: HTTP/1.1 (plaintext)",
	))

	t.Child(fancy.Branch("Route",
		fmt.Sprintf("Match: %s", fancy.RouteText("GET (any path)")),
		fmt.Sprintf("Status: %d %s", http.StatusOK, http.StatusText(http.StatusOK)),
		fmt.Sprintf("Body: %q", cfg.Greeting),
	))

	t.Child(fancy.Branch("Logging",
		fmt.Sprintf("Format: %s", cfg.Logging.Format),
		fmt.Sprintf("Level: %s", cfg.Logging.Level),
	))

	t.Child(fancy.InfoStyle.Render(cfg.ReadyMessage()))

	return t.String()
}
