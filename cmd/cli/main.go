package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "millbooks-cli",
		Short: "Millbooks CLI tool",
		Long:  `A command line interface for the millbooks ledger rollup API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the millbooks API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Report commands
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Rollup report operations",
	}

	var (
		preset string
		from   string
		to     string
	)

	rollupCmd := &cobra.Command{
		Use:   "rollup",
		Short: "Compute the rollup for a date range",
		Run: func(cmd *cobra.Command, args []string) {
			fetchRollup(preset, from, to)
		},
	}
	rollupCmd.Flags().StringVar(&preset, "preset", "month", "Date range preset (day, week, month, year, all)")
	rollupCmd.Flags().StringVar(&from, "from", "", "Range start (RFC 3339, overrides preset)")
	rollupCmd.Flags().StringVar(&to, "to", "", "Range end (RFC 3339, overrides preset)")

	reportCmd.AddCommand(rollupCmd)
	rootCmd.AddCommand(reportCmd)

	// Snapshot commands
	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Snapshot operations",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored snapshot versions",
		Run: func(cmd *cobra.Command, args []string) {
			listSnapshots()
		},
	}

	latestCmd := &cobra.Command{
		Use:   "latest",
		Short: "Show the latest snapshot version",
		Run: func(cmd *cobra.Command, args []string) {
			latestSnapshot()
		},
	}

	snapshotCmd.AddCommand(listCmd, latestCmd)
	rootCmd.AddCommand(snapshotCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func fetchRollup(preset, from, to string) {
	query := url.Values{}
	if from != "" || to != "" {
		query.Set("from", from)
		query.Set("to", to)
	} else {
		query.Set("preset", preset)
	}

	body := get("/api/v1/reports/rollup?" + query.Encode())

	var report struct {
		SnapshotVersion string `json:"snapshot_version"`
		Categories      map[string]struct {
			Total   string `json:"total"`
			Paid    string `json:"paid"`
			Pending string `json:"pending"`
		} `json:"categories"`
		Domains map[string]struct {
			Total   string `json:"total"`
			Paid    string `json:"paid"`
			Pending string `json:"pending"`
		} `json:"domains"`
		Revenue struct {
			Total   string `json:"total"`
			Paid    string `json:"paid"`
			Pending string `json:"pending"`
		} `json:"revenue"`
	}
	if err := json.Unmarshal(body, &report); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if report.SnapshotVersion != "" {
		fmt.Printf("Snapshot: %s\n\n", report.SnapshotVersion)
	}

	names := make([]string, 0, len(report.Categories))
	for name := range report.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("%-16s %12s %12s %12s\n", "CATEGORY", "TOTAL", "PAID", "PENDING")
	for _, name := range names {
		node := report.Categories[name]
		fmt.Printf("%-16s %12s %12s %12s\n", name, node.Total, node.Paid, node.Pending)
	}

	fmt.Println()
	for _, name := range []string{"sales", "expense"} {
		node := report.Domains[name]
		fmt.Printf("%-16s %12s %12s %12s\n", name, node.Total, node.Paid, node.Pending)
	}

	fmt.Println()
	fmt.Printf("%-16s %12s %12s %12s\n", "revenue", report.Revenue.Total, report.Revenue.Paid, report.Revenue.Pending)
}

func listSnapshots() {
	body := get("/api/v1/snapshots")

	var snapshots []struct {
		Version string    `json:"version"`
		TakenAt time.Time `json:"taken_at"`
	}
	if err := json.Unmarshal(body, &snapshots); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	for _, s := range snapshots {
		fmt.Printf("%s  %s\n", s.Version, s.TakenAt.Format(time.RFC3339))
	}
}

func latestSnapshot() {
	body := get("/api/v1/snapshots/latest")

	var snapshot struct {
		Version string    `json:"version"`
		TakenAt time.Time `json:"taken_at"`
	}
	if err := json.Unmarshal(body, &snapshot); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s  %s\n", snapshot.Version, snapshot.TakenAt.Format(time.RFC3339))
}

func get(path string) []byte {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	return body
}
