// Command tube-status prints the current London Underground service board
// to the terminal, one colored row per line.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/matsadler/tube"
	"github.com/matsadler/tube/internal/logging"
	"github.com/matsadler/tube/scrape"
	"github.com/matsadler/tube/tflapi"
)

// lineColors maps line identifiers to ANSI foreground;background pairs
// approximating the lines' roundel colors.
var lineColors = map[string]string{
	"bakerloo":           "97;41",
	"central":            "37;101",
	"circle":             "34;103",
	"district":           "97;42",
	"hammersmithandcity": "34;105",
	"jubilee":            "97;100",
	"metropolitan":       "97;45",
	"northern":           "97;40",
	"piccadilly":         "97;44",
	"victoria":           "97;104",
	"waterlooandcity":    "34;106",
	"dlr":                "97;46",
	"overground":         "97;43",
}

const statusColor = "34;107"

func main() {
	var (
		url    = flag.String("url", "", "Service board URL (default: the live TfL page)")
		useAPI = flag.Bool("api", false, "Read the TfL Unified API instead of scraping the board")
		appID  = flag.String("app-id", "", "TfL API application id")
		appKey = flag.String("app-key", "", "TfL API application key")
		plain  = flag.Bool("plain", false, "Plain output without colors")
	)
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stderr, slog.LevelWarn)

	var source tube.Source
	if *useAPI {
		source = tflapi.NewSource(tflapi.NewClient(*url, *appID, *appKey))
	} else {
		source = scrape.NewSource(*url)
	}

	service := tube.NewService(source, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := service.Reload(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "tube-status:", err)
		os.Exit(1)
	}

	status := service.Status()
	if *plain {
		printPlain(status)
	} else {
		printBoard(status)
	}
}

func printPlain(status *tube.Status) {
	fmt.Printf("Live travel news, last update %s\n\n", status.Updated.Format("3:04pm"))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, line := range status.Lines {
		fmt.Fprintf(w, "%s\t%s\n", line.Name, line.Status)
	}
	w.Flush()

	for _, group := range status.StationGroups {
		fmt.Printf("\n%s:\n", group.Name)
		for _, station := range group.Stations {
			fmt.Printf("  %s\n", station.Name)
		}
	}
}

func printBoard(status *tube.Status) {
	nameWidth, statusWidth := 0, 0
	for _, line := range status.Lines {
		nameWidth = max(nameWidth, len(line.Name))
		statusWidth = max(statusWidth, len(line.Status))
	}

	fmt.Printf("  \x1b[1mLive travel news\x1b[0m\n  Last update: %s\n\n",
		strings.TrimPrefix(status.Updated.Format("03:04pm"), "0"))

	for _, line := range status.Lines {
		name := colored(lineColors[line.ID], fmt.Sprintf(" %-*s ", nameWidth, line.Name))
		colors := statusColor
		if line.Problem {
			// inverse video to make problems stand out
			colors += ";7"
		}
		state := colored(colors, fmt.Sprintf(" %-*s ", statusWidth, line.Status))
		fmt.Printf("  %s%s\n", name, state)
	}
}

func colored(colors, s string) string {
	if colors == "" {
		return s
	}
	return "\x1b[" + colors + "m" + s + "\x1b[0m"
}
