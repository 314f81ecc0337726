// Package main is a maintenance CLI for the settings module: it loads the
// persisted settings, normalizes them, and prints either the sanitized
// record or the UI schema as JSON. Useful for inspecting an instance's
// configuration without starting the web UI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/mexicanamerican/agent-zero/internal/agent"
	"github.com/mexicanamerican/agent-zero/internal/logging"
	"github.com/mexicanamerican/agent-zero/internal/runtime"
	"github.com/mexicanamerican/agent-zero/internal/secrets"
	"github.com/mexicanamerican/agent-zero/internal/settings"
	"github.com/mexicanamerican/agent-zero/internal/shared/paths"
)

func main() {
	asSchema := flag.Bool("schema", false, "print the UI schema instead of the record")
	flag.Parse()

	log := logging.NewDefault()
	defer log.Sync()

	env := runtime.Detect()
	sec := secrets.NewStore(paths.EnvFile())
	store := settings.NewStore(paths.SettingsFile(), sec, env)
	presenter := settings.NewPresenter(sec, env)
	svc := settings.NewService(store, presenter, agent.NewRegistry(), env, log)

	var out any
	if *asSchema {
		out = svc.Schema()
	} else {
		out = svc.Get()
	}

	data, err := sonic.MarshalIndent(out, "", "    ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
