package main

import (
	"errors"
	"fmt"
	"os"

	"banarts/internal/app"

	flags "github.com/jessevdk/go-flags"
)

type options struct {
	Config string `short:"c" long:"config" description:"Path to the YAML configuration file"`
	Port   int    `short:"p" long:"port" description:"Override server.port"`
	Env    string `short:"e" long:"env" description:"Override server.env (development, production)"`
}

func main() {
	var opts options
	if _, err := flags.NewParser(&opts, flags.Default).Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := app.Run(app.Options{
		ConfigPath: opts.Config,
		Port:       opts.Port,
		Env:        opts.Env,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "banarts: %v\n", err)
		os.Exit(1)
	}
}
