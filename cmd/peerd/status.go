package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strconv"

	mapset "github.com/deckarep/golang-set"
	lru "github.com/hashicorp/golang-lru"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/urfave/cli.v1"

	"github.com/graphene-p2p/peerd/internal/protocol"
)

var statusCommand = cli.Command{
	Name:  "status",
	Usage: "fetch a running connection's Prometheus metrics and render a per-message-type summary",
	Flags: []cli.Flag{
		cli.StringFlag{Name: "metrics-addr", Value: "localhost:9090", Usage: "address the connect command exposed --metrics-addr on"},
	},
	Action: runStatus,
}

var metricLineRE = regexp.MustCompile(`^peerd_frames_(received|sent)_total\{message_id="(\d+)"\} (\d+(?:\.\d+)?)$`)

type frameCounts struct{ received, sent uint64 }

// runStatus scrapes a connect command's metrics endpoint directly rather
// than linking against a live Connection, so status can run as a separate,
// short-lived process against a long-running one. The displayed table is
// capped at the 64 most recently updated message ids: a peer that cycles
// through many distinct ids over a long session shouldn't grow the table
// without bound.
func runStatus(ctx *cli.Context) error {
	addr := ctx.String("metrics-addr")
	resp, err := http.Get(fmt.Sprintf("http://%s/metrics", addr))
	if err != nil {
		return fmt.Errorf("fetch metrics from %s: %w", addr, err)
	}
	defer resp.Body.Close()

	seen := mapset.NewSet()
	cache, err := lru.New(64)
	if err != nil {
		return fmt.Errorf("build status cache: %w", err)
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		m := metricLineRE.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		messageID := m[2]
		value, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			continue
		}
		seen.Add(messageID)

		var counts frameCounts
		if existing, ok := cache.Get(messageID); ok {
			counts = existing.(frameCounts)
		}
		switch m[1] {
		case "received":
			counts.received = uint64(value)
		case "sent":
			counts.sent = uint64(value)
		}
		cache.Add(messageID, counts)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read metrics body: %w", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"message_id", "name", "received", "sent"})
	for _, key := range cache.Keys() {
		messageID := key.(string)
		counts, _ := cache.Get(messageID)
		c := counts.(frameCounts)
		idNum, _ := strconv.ParseUint(messageID, 10, 32)
		name, _ := protocol.Name(uint32(idNum))
		table.Append([]string{messageID, name, strconv.FormatUint(c.received, 10), strconv.FormatUint(c.sent, 10)})
	}
	fmt.Printf("%d distinct message types observed\n", seen.Cardinality())
	table.Render()
	return nil
}
