// Package main provides a performance benchmarking tool for the rankviz CLI.
// It generates synthetic ranked datasets of increasing size, runs each command
// several times, treating the first successful run as cold and averaging the
// rest as warm, and writes CSV output for performance analysis and documentation.
//
// Prerequisites:
// - rankviz binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where the synthetic datasets are written
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset  string
	Command  string
	ColdTime string
	WarmTime string
}

// DatasetSize describes one synthetic dataset.
type DatasetSize struct {
	Name    string
	Configs int
	Metrics int
	Format  string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir  string
	Timeout  time.Duration
	Runs     int
	Sizes    []DatasetSize
	Commands []string
}

// The synthetic file follows the experiment results layout.
type (
	metricConfig struct {
		MetricName string `json:"metricName" yaml:"metricName"`
		Order      int    `json:"order" yaml:"order"`
		Unit       string `json:"unit" yaml:"unit"`
		Direction  string `json:"direction" yaml:"direction"`
	}
	systemResult struct {
		MetricName string  `json:"metricName" yaml:"metricName"`
		Value      float64 `json:"value" yaml:"value"`
		Unit       string  `json:"unit" yaml:"unit"`
	}
	behaviour struct {
		MethodName  string `json:"methodName" yaml:"methodName"`
		BehaviourID string `json:"behaviourId" yaml:"behaviourId"`
	}
	classConfig struct {
		ClassName  string      `json:"className" yaml:"className"`
		Behaviours []behaviour `json:"behaviours" yaml:"behaviours"`
	}
	serviceConfig struct {
		ServiceName  string        `json:"serviceName" yaml:"serviceName"`
		ClassConfigs []classConfig `json:"classConfigs" yaml:"classConfigs"`
	}
	rankEntry struct {
		Position      int             `json:"position" yaml:"position"`
		SystemResults []systemResult  `json:"systemResults" yaml:"systemResults"`
		SystemConfig  []serviceConfig `json:"systemConfig" yaml:"systemConfig"`
	}
	resultsFile struct {
		MetricConfigs []metricConfig `json:"metricConfigs" yaml:"metricConfigs"`
		Ranking       []rankEntry    `json:"ranking" yaml:"ranking"`
	}
)

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir: os.Args[1],
		Timeout: 2 * time.Minute,
		Runs:    5,
		Sizes: []DatasetSize{
			{Name: "small", Configs: 50, Metrics: 5, Format: "json"},
			{Name: "medium", Configs: 1000, Metrics: 12, Format: "json"},
			{Name: "large", Configs: 20000, Metrics: 20, Format: "json"},
			{Name: "medium-yaml", Configs: 1000, Metrics: 12, Format: "yaml"},
		},
		Commands: []string{"scores", "summary", "report"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(config, results)
}

// checkPrerequisites verifies that the rankviz binary and the work directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("rankviz"); err != nil {
		return fmt.Errorf("rankviz binary not found in PATH")
	}
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot create work dir %s: %w", config.WorkDir, err)
	}
	return nil
}

// generateDataset writes a reproducible synthetic dataset and returns its path
func generateDataset(dir string, size DatasetSize) (string, error) {
	rng := rand.New(rand.NewPCG(42, uint64(size.Configs)))

	data := resultsFile{}
	for m := 0; m < size.Metrics; m++ {
		direction := "higher"
		if m%2 == 1 {
			direction = "lower"
		}
		data.MetricConfigs = append(data.MetricConfigs, metricConfig{
			MetricName: fmt.Sprintf("metric_%02d", m),
			Order:      m + 1,
			Unit:       "u",
			Direction:  direction,
		})
	}
	for c := 0; c < size.Configs; c++ {
		entry := rankEntry{Position: c + 1}
		for _, mc := range data.MetricConfigs {
			entry.SystemResults = append(entry.SystemResults, systemResult{
				MetricName: mc.MetricName,
				Value:      rng.Float64() * 1000,
				Unit:       mc.Unit,
			})
		}
		entry.SystemConfig = []serviceConfig{{
			ServiceName: fmt.Sprintf("service-%d", c%4),
			ClassConfigs: []classConfig{{
				ClassName:  fmt.Sprintf("com/bench/Class%d", c%7),
				Behaviours: []behaviour{{MethodName: "handle", BehaviourID: fmt.Sprintf("b%d", rng.IntN(6))}},
			}},
		}}
		data.Ranking = append(data.Ranking, entry)
	}

	var (
		raw []byte
		err error
	)
	if size.Format == "yaml" {
		raw, err = yaml.Marshal(data)
	} else {
		raw, err = json.Marshal(data)
	}
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("bench_%s.%s", size.Name, size.Format))
	return path, os.WriteFile(path, raw, 0o644)
}

// runBenchmarks executes all benchmark tests across the configured dataset sizes
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %d commands, %v timeout, %d runs\n",
		len(config.Sizes), len(config.Commands), config.Timeout, config.Runs)

	for _, size := range config.Sizes {
		path, err := generateDataset(config.WorkDir, size)
		if err != nil {
			fmt.Printf("Skipping %s: %v\n", size.Name, err)
			continue
		}
		fmt.Printf("Benchmarking %s (%d configs x %d metrics)\n", size.Name, size.Configs, size.Metrics)

		for _, command := range config.Commands {
			results = append(results, runBenchmarkSuite(config, size.Name, path, command))
		}
	}

	return results
}

// runBenchmarkSuite runs one command and summarizes cold and warm timings
func runBenchmarkSuite(config BenchmarkConfig, dataset, path, command string) BenchmarkResult {
	fmt.Printf("  Running %s (%d runs)\n", command, config.Runs)

	coldTime, warmTimes := runBenchmark(config, path, command)

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}
	warmAvg := "TIMEOUT"
	if len(warmTimes) > 0 {
		var sum float64
		for _, t := range warmTimes {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(warmTimes)))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTimeStr, warmAvg)

	return BenchmarkResult{
		Dataset:  dataset,
		Command:  command,
		ColdTime: coldTimeStr,
		WarmTime: warmAvg,
	}
}

// runBenchmark executes a rankviz command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, path, command string) (coldTime float64, warmTimes []float64) {
	args := []string{command, path, "--output-file", os.DevNull, "--color", "no"}

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("rankviz", args...)

		done := make(chan error, 1)
		go func() {
			done <- cmd.Run()
		}()

		select {
		case err := <-done:
			if err == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/rankviz_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"dataset", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(config BenchmarkConfig, results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	for _, command := range config.Commands {
		fmt.Printf("%s:\n", command)
		for _, result := range results {
			if result.Command == command {
				fmt.Printf("  %-12s: Cold: %s, Warm: %s\n", result.Dataset, result.ColdTime, result.WarmTime)
			}
		}
	}

	fmt.Printf("Benchmark script completed successfully\n")
}
