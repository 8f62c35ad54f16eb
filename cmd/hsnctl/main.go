// Command hsnctl maintains the HSN code dataset served by the courier portal.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("hsnctl failed")
		os.Exit(1)
	}
}
