// Package config loads the connection's runtime settings from, in
// increasing precedence, a built-in default, an optional config file, the
// PEERD_ environment prefix, and CLI flags — the flag/env/file layering this
// codebase's operational tooling uses elsewhere, built here on the same
// spf13/viper + spf13/pflag pair.
package config

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is every externally tunable setting a connection needs.
type Config struct {
	PeerHost           string
	PeerPort           uint16
	ChainID            [32]byte
	ProtocolVersion    uint32
	UserAgent          string
	Platform           string
	HandshakeTimeout   time.Duration
	HeartbeatInterval  time.Duration
	MetricsAddr        string
	EventSinkBrokerURL string
}

// defaultChainIDHex is the compiled-in chain id used unless overridden,
// matching the reference client's own hardcoded value.
const defaultChainIDHex = "4018d7844c78f6a6c41c6a552b898022310fc5dec06da467ee7905a8dad512c8"

// defaults returns the built-in configuration, the lowest-precedence layer.
func defaults() Config {
	var chainID [32]byte
	if b, err := hex.DecodeString(defaultChainIDHex); err == nil && len(b) == 32 {
		copy(chainID[:], b)
	}
	return Config{
		PeerHost:          "",
		PeerPort:          0,
		ChainID:           chainID,
		ProtocolVersion:   106,
		UserAgent:         "peerd",
		Platform:          "unknown",
		HandshakeTimeout:  10 * time.Second,
		HeartbeatInterval: 30 * time.Second,
		MetricsAddr:       "",
	}
}

// BindFlags registers every configuration flag on fs, for a caller (cmd/peerd)
// to add to its own flag set before parsing os.Args.
func BindFlags(fs *pflag.FlagSet) {
	d := defaults()
	fs.String("peer-host", d.PeerHost, "target peer host")
	fs.Uint16("peer-port", d.PeerPort, "target peer port")
	fs.String("chain-id", defaultChainIDHex, "chain id (hex, 32 bytes)")
	fs.Uint32("protocol-version", d.ProtocolVersion, "core protocol version advertised in Hello")
	fs.String("user-agent", d.UserAgent, "user agent advertised in Hello")
	fs.Duration("handshake-timeout", d.HandshakeTimeout, "handshake deadline")
	fs.Duration("heartbeat-interval", d.HeartbeatInterval, "time-sync heartbeat interval")
	fs.String("metrics-addr", d.MetricsAddr, "address to expose Prometheus metrics on (empty disables)")
	fs.String("event-sink-broker", d.EventSinkBrokerURL, "MQTT broker URL for the event sink (empty uses the null sink)")
}

// Load builds a Config by layering, from lowest to highest precedence:
// built-in defaults, an optional config file, PEERD_-prefixed environment
// variables, and flags already parsed onto fs.
func Load(fs *pflag.FlagSet, configFile string) (Config, error) {
	v := viper.New()
	d := defaults()

	v.SetDefault("peer-host", d.PeerHost)
	v.SetDefault("peer-port", d.PeerPort)
	v.SetDefault("chain-id", defaultChainIDHex)
	v.SetDefault("protocol-version", d.ProtocolVersion)
	v.SetDefault("user-agent", d.UserAgent)
	v.SetDefault("handshake-timeout", d.HandshakeTimeout)
	v.SetDefault("heartbeat-interval", d.HeartbeatInterval)
	v.SetDefault("metrics-addr", d.MetricsAddr)
	v.SetDefault("event-sink-broker", d.EventSinkBrokerURL)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read config file: %w", err)
		}
	}

	v.SetEnvPrefix("peerd")
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	chainIDHex := v.GetString("chain-id")
	chainIDBytes, err := hex.DecodeString(chainIDHex)
	if err != nil || len(chainIDBytes) != 32 {
		return Config{}, fmt.Errorf("config: chain-id must be 32 bytes of hex, got %q", chainIDHex)
	}
	var chainID [32]byte
	copy(chainID[:], chainIDBytes)

	return Config{
		PeerHost:           v.GetString("peer-host"),
		PeerPort:           uint16(v.GetUint32("peer-port")),
		ChainID:            chainID,
		ProtocolVersion:    v.GetUint32("protocol-version"),
		UserAgent:          v.GetString("user-agent"),
		Platform:           d.Platform,
		HandshakeTimeout:   v.GetDuration("handshake-timeout"),
		HeartbeatInterval:  v.GetDuration("heartbeat-interval"),
		MetricsAddr:        v.GetString("metrics-addr"),
		EventSinkBrokerURL: v.GetString("event-sink-broker"),
	}, nil
}
