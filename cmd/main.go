package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/SystemBuilders/SortList/internal/liststore"
	"github.com/SystemBuilders/SortList/internal/node"
	"github.com/rs/zerolog"
)

func main() {
	ip := flag.String("ip", "127.0.0.1", "address to listen on")
	port := flag.String("port", "1234", "port to listen on")
	level := flag.String("level", "info", "log level")
	flag.Parse()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Str("level", *level).Msg("bad log level")
	}
	log = log.Level(lvl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := liststore.NewSimpleStore(log)
	scfg := node.NewSimpleConfig(*ip, *port)
	if err := node.Start(ctx, s, scfg, log); err != nil {
		log.Fatal().Err(err).Msg("node stopped")
	}
}
