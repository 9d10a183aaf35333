package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"gopkg.in/urfave/cli.v1"

	"github.com/graphene-p2p/peerd/internal/config"
	"github.com/graphene-p2p/peerd/internal/dispatch"
	"github.com/graphene-p2p/peerd/internal/eventsink"
	"github.com/graphene-p2p/peerd/internal/metrics"
	"github.com/graphene-p2p/peerd/internal/peer"
)

var connectCommand = cli.Command{
	Name:      "connect",
	Usage:     "dial a peer and run the handshake/dispatch loop until the connection closes",
	ArgsUsage: "[flags]",
	Action:    runConnect,
}

func runConnect(ctx *cli.Context) error {
	fs := pflag.NewFlagSet("connect", pflag.ContinueOnError)
	config.BindFlags(fs)
	configFile := fs.String("config", "", "optional config file (YAML/TOML/JSON)")
	if err := fs.Parse(ctx.Args()); err != nil {
		return err
	}

	cfg, err := config.Load(fs, *configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.PeerHost == "" {
		return fmt.Errorf("--peer-host is required")
	}

	m := metrics.New()
	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, m)
	}

	sink := buildEventSink(cfg)

	conn, err := peer.Dial(context.Background(), cfg, m, sink)
	if err != nil {
		return fmt.Errorf("dial %s:%d: %w", cfg.PeerHost, cfg.PeerPort, err)
	}
	log.Info("peerd: handshake complete, running dispatch loop", "peer", fmt.Sprintf("%s:%d", cfg.PeerHost, cfg.PeerPort), "connection", conn.ID())

	return conn.Run(context.Background())
}

func buildEventSink(cfg config.Config) dispatch.EventSink {
	if cfg.EventSinkBrokerURL == "" {
		return eventsink.Adapter{Sink: eventsink.NullSink{}}
	}
	mqttSink, err := eventsink.NewMQTTSink(cfg.EventSinkBrokerURL)
	if err != nil {
		log.Warn("peerd: event sink broker unreachable, falling back to the null sink", "broker", cfg.EventSinkBrokerURL, "err", err)
		return eventsink.Adapter{Sink: eventsink.NullSink{}}
	}
	return eventsink.Adapter{Sink: mqttSink}
}

func serveMetrics(addr string, m *metrics.Metrics) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	log.Info("peerd: serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error("peerd: metrics server stopped", "err", err)
	}
}
