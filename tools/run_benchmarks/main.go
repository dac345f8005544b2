// Package main runs the room allocator over occupancy snapshots.
// Collects cost, strategy and search effort per request size.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/elektrokombinacija/hotel-alloc/internal/algo"
	"github.com/elektrokombinacija/hotel-alloc/internal/core"
)

// SnapshotFile represents a loaded occupancy snapshot.
type SnapshotFile struct {
	Name   string `json:"name"`
	Params struct {
		Seed          int64   `json:"seed"`
		OccupancyRate float64 `json:"occupancy_rate"`
	} `json:"params"`
	Rooms []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"rooms"`
}

// BenchmarkResult stores results from a single allocation.
type BenchmarkResult struct {
	Timestamp     string  `json:"timestamp"`
	CommitHash    string  `json:"commit_hash"`
	GoVersion     string  `json:"go_version"`
	OS            string  `json:"os"`
	Arch          string  `json:"arch"`
	Snapshot      string  `json:"snapshot"`
	OccupancyRate float64 `json:"occupancy_rate"`
	Eligible      int     `json:"eligible"`
	Requested     int     `json:"requested"`
	Solver        string  `json:"solver"`
	RuntimeMs     float64 `json:"runtime_ms"`
	Success       bool    `json:"success"`
	Cost          int     `json:"cost"`
	Strategy      string  `json:"strategy"`
	Rooms         string  `json:"rooms"`
	Candidates    int     `json:"candidates"`
}

// SizeMetrics holds per-request-size aggregated metrics.
type SizeMetrics struct {
	Requested      int
	TotalRuns      int
	Successes      int
	CrossFloor     int
	TotalRuntimeMs float64
	TotalCost      int
	TotalCands     int
}

func getGitCommit() string {
	cmd := exec.Command("git", "rev-parse", "--short", "HEAD")
	output, err := cmd.Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(output))
}

func loadSnapshot(path string) (*SnapshotFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var snap SnapshotFile
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}

	return &snap, nil
}

// statusMap converts the snapshot rooms into an engine lookup.
func statusMap(snap *SnapshotFile) (map[core.RoomID]core.Status, error) {
	status := make(map[core.RoomID]core.Status, len(snap.Rooms))
	for _, r := range snap.Rooms {
		s, ok := core.ParseStatus(r.Status)
		if !ok {
			return nil, fmt.Errorf("room %s: unknown status %q", r.ID, r.Status)
		}
		status[core.RoomID(r.ID)] = s
	}
	return status, nil
}

// runAllocation times one request against one snapshot.
func runAllocation(inv *core.Inventory, snap *SnapshotFile, status map[core.RoomID]core.Status, k int, commit string) *BenchmarkResult {
	eligible := core.EligibleFromStatus(status)
	result := &BenchmarkResult{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		CommitHash:    commit,
		GoVersion:     runtime.Version(),
		OS:            runtime.GOOS,
		Arch:          runtime.GOARCH,
		Snapshot:      snap.Name,
		OccupancyRate: snap.Params.OccupancyRate,
		Eligible:      len(inv.Filter(eligible)),
		Requested:     k,
	}

	counter := &algo.Counter{}
	solver := &algo.TwoPhase{Observer: counter}
	result.Solver = solver.Name()

	startTime := time.Now()
	out := solver.Allocate(inv, eligible, k)
	result.RuntimeMs = float64(time.Since(startTime).Microseconds()) / 1000.0

	result.Candidates = counter.Candidates
	result.Success = out.Feasible
	if out.Feasible {
		result.Cost = out.Cost
		result.Strategy = out.Strategy.String()
		var nums []string
		for _, n := range out.Numbers() {
			nums = append(nums, fmt.Sprintf("%d", n))
		}
		result.Rooms = strings.Join(nums, " ")
	}

	return result
}

func writeCSV(results []*BenchmarkResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"timestamp", "commit_hash", "go_version", "os", "arch",
		"snapshot", "occupancy_rate", "eligible", "requested", "solver",
		"runtime_ms", "success", "cost", "strategy", "rooms", "candidates",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.Timestamp, r.CommitHash, r.GoVersion, r.OS, r.Arch,
			r.Snapshot, fmt.Sprintf("%.2f", r.OccupancyRate),
			fmt.Sprintf("%d", r.Eligible), fmt.Sprintf("%d", r.Requested), r.Solver,
			fmt.Sprintf("%.3f", r.RuntimeMs), fmt.Sprintf("%t", r.Success),
			fmt.Sprintf("%d", r.Cost), r.Strategy, r.Rooms,
			fmt.Sprintf("%d", r.Candidates),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func writeJSON(results []*BenchmarkResult, path string) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// summarize aggregates results by request size, smallest first.
func summarize(results []*BenchmarkResult, maxK int) []*SizeMetrics {
	metrics := make([]*SizeMetrics, maxK)
	for i := range metrics {
		metrics[i] = &SizeMetrics{Requested: i + 1}
	}
	for _, r := range results {
		if r.Requested < 1 || r.Requested > maxK {
			continue
		}
		m := metrics[r.Requested-1]
		m.TotalRuns++
		m.TotalCands += r.Candidates
		m.TotalRuntimeMs += r.RuntimeMs
		if r.Success {
			m.Successes++
			m.TotalCost += r.Cost
			if r.Strategy == core.CrossFloor.String() {
				m.CrossFloor++
			}
		}
	}
	return metrics
}

func printSummary(metrics []*SizeMetrics) {
	fmt.Println("\n=== BENCHMARK SUMMARY ===")
	fmt.Printf("%-6s %8s %8s %8s %12s %10s %12s\n",
		"k", "Runs", "Success", "Cross", "Avg Time(ms)", "Avg Cost", "Avg Cands")
	fmt.Println(strings.Repeat("-", 70))

	for _, m := range metrics {
		avgTime := 0.0
		avgCost := 0.0
		avgCands := 0.0
		if m.TotalRuns > 0 {
			avgTime = m.TotalRuntimeMs / float64(m.TotalRuns)
			avgCands = float64(m.TotalCands) / float64(m.TotalRuns)
		}
		if m.Successes > 0 {
			avgCost = float64(m.TotalCost) / float64(m.Successes)
		}
		fmt.Printf("%-6d %8d %8d %8d %12.3f %10.2f %12.1f\n",
			m.Requested, m.TotalRuns, m.Successes, m.CrossFloor, avgTime, avgCost, avgCands)
	}
}

func main() {
	inputDir := flag.String("input", "testdata", "Directory containing snapshot JSON files")
	outputFile := flag.String("output", "evidence/benchmark_results.csv", "Output CSV file")
	jsonFile := flag.String("json", "", "Also write results as JSON to this file")
	maxK := flag.Int("max-k", 5, "Largest request size to run")
	verbose := flag.Bool("verbose", false, "Verbose output")

	flag.Parse()

	if *maxK < 1 {
		fmt.Fprintf(os.Stderr, "max-k must be at least 1\n")
		os.Exit(1)
	}

	outputDir := filepath.Dir(*outputFile)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	pattern := filepath.Join(*inputDir, "*.json")
	files, err := filepath.Glob(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding snapshot files: %v\n", err)
		os.Exit(1)
	}

	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No snapshot files found in %s\n", *inputDir)
		fmt.Fprintf(os.Stderr, "Run gen_occupancy first: go run ./tools/gen_occupancy -sweep -output testdata\n")
		os.Exit(1)
	}

	inv := core.BuildInventory()
	commit := getGitCommit()
	totalRuns := len(files) * *maxK
	currentRun := 0

	fmt.Printf("Running benchmarks: %d snapshots x %d sizes = %d runs\n",
		len(files), *maxK, totalRuns)
	fmt.Println()

	var results []*BenchmarkResult
	for _, file := range files {
		snap, err := loadSnapshot(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", file, err)
			continue
		}
		status, err := statusMap(snap)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", file, err)
			continue
		}

		for k := 1; k <= *maxK; k++ {
			currentRun++
			if *verbose {
				fmt.Printf("[%d/%d] %s / k=%d ... ", currentRun, totalRuns, snap.Name, k)
			} else {
				fmt.Printf("\r[%d/%d] Running...", currentRun, totalRuns)
			}

			result := runAllocation(inv, snap, status, k, commit)
			results = append(results, result)

			if *verbose {
				if result.Success {
					fmt.Printf("OK (%.3fms, cost=%d, %s)\n", result.RuntimeMs, result.Cost, result.Strategy)
				} else {
					fmt.Printf("INFEASIBLE\n")
				}
			}
		}
	}

	fmt.Println()

	if err := writeCSV(results, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Results written to: %s\n", *outputFile)

	if *jsonFile != "" {
		if err := writeJSON(results, *jsonFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("JSON written to: %s\n", *jsonFile)
	}

	printSummary(summarize(results, *maxK))
}
