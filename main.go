package main

import (
	"github.com/codesync/autocomplete-server/cmd"
	"github.com/rs/zerolog/log"
	"os"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
