package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"homequery/internal/model"
	"homequery/internal/search"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "homeq",
		Usage: "Search real-estate listings from the command line",
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Run a free-text property search",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "endpoint",
						Aliases: []string{"e"},
						Usage:   "Query service base URL",
						Value:   "http://localhost:5000",
						EnvVars: []string{"UPSTREAM_BASE_URL"},
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Number of results to request",
						Value:   search.DefaultTopK,
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "Query service timeout",
						Value: 60 * time.Second,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the raw result as JSON",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return cli.Exit("a search query is required", 1)
	}

	client := search.NewClient(c.String("endpoint"), c.Duration("timeout"))
	machine := search.NewMachine()
	executor := search.NewExecutor(machine, client, c.Int("limit"))

	updates := machine.Subscribe()
	defer machine.Unsubscribe(updates)

	if !executor.Submit(context.Background(), query, c.Int("limit")) {
		return cli.Exit("a search query is required", 1)
	}

	for state := range updates {
		switch state.Phase {
		case model.PhaseSuccess:
			if c.Bool("json") {
				return printJSON(state.Result)
			}
			printResult(state.Result)
			return nil
		case model.PhaseError:
			return cli.Exit("search failed: "+state.ErrorReason, 1)
		}
	}
	return nil
}

func printJSON(result *model.SearchResult) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func printResult(result *model.SearchResult) {
	if result.AnswerText != "" {
		fmt.Println(result.AnswerText)
		fmt.Println()
	}

	if len(result.Records) == 0 {
		fmt.Println("No matching properties.")
		return
	}

	for i, rec := range result.Records {
		fmt.Printf("%d. %s\n", i+1, addressLine(rec))
		fmt.Printf("   %s\n", specsLine(rec))
		if len(rec.Amenities) > 0 {
			fmt.Printf("   Amenities: %s\n", strings.Join(rec.Amenities, ", "))
		}
		if rec.URL != nil {
			fmt.Printf("   %s\n", *rec.URL)
		}
		fmt.Println()
	}
}

func addressLine(rec model.PropertyRecord) string {
	parts := make([]string, 0, 4)
	for _, p := range []*string{rec.StreetAddress, rec.Suburb, rec.Region, rec.Postcode} {
		if p != nil {
			parts = append(parts, *p)
		}
	}
	if len(parts) == 0 {
		return "Listing " + rec.ID
	}
	return strings.Join(parts, ", ")
}

func specsLine(rec model.PropertyRecord) string {
	parts := make([]string, 0, 4)
	if rec.Price != nil {
		parts = append(parts, fmt.Sprintf("$%.0f", *rec.Price))
	}
	if rec.Bedrooms != nil {
		parts = append(parts, fmt.Sprintf("%d bed", *rec.Bedrooms))
	}
	if rec.Bathrooms != nil {
		parts = append(parts, fmt.Sprintf("%d bath", *rec.Bathrooms))
	}
	if rec.FloorArea != nil {
		parts = append(parts, fmt.Sprintf("%.0f sqm", *rec.FloorArea))
	}
	if len(parts) == 0 {
		return "details unavailable"
	}
	return strings.Join(parts, " · ")
}
