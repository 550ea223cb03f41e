package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	mockPort = 9091
	appPort  = 8091
)

// Benchmark harness: spins up a mock gateway and a real preview server, then
// drives load through GET /docs/models with vegeta.
func main() {
	duration := flag.Duration("duration", 10*time.Second, "Duration of the test")
	rate := flag.Int("rate", 50, "Requests per second")
	flag.Parse()

	go startMockGateway()

	fmt.Println("Building preview server...")
	buildCmd := exec.Command("go", "build", "-o", "bin/preview", "./cmd/preview")
	buildCmd.Stdout = os.Stdout
	buildCmd.Stderr = os.Stderr
	if err := buildCmd.Run(); err != nil {
		log.Fatalf("Failed to build preview server: %v", err)
	}

	outputPath := filepath.Join(os.TempDir(), "modeldocs-bench.mdx")
	defer os.Remove(outputPath)

	fmt.Println("Starting preview server...")
	cmd := exec.Command("./bin/preview")
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("GATEWAY_BASE_URL=http://localhost:%d", mockPort),
		fmt.Sprintf("SERVER_PORT=%d", appPort),
		fmt.Sprintf("DOCS_OUTPUT_PATH=%s", outputPath),
		"RATE_LIMIT_REQUESTS_PER_SECOND=100000",
		"RATE_LIMIT_BURST=100000",
		"LOG_LEVEL=error",
	)

	logFile, _ := os.Create("bench_preview.log")
	defer logFile.Close()
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if err := cmd.Start(); err != nil {
		log.Fatalf("Failed to start preview server: %v", err)
	}
	defer func() {
		if cmd.Process != nil {
			cmd.Process.Kill()
		}
	}()

	waitForApp(fmt.Sprintf("http://localhost:%d/health", appPort))

	// Generate the document once so the attack hits the serving path.
	resp, err := http.Post(fmt.Sprintf("http://localhost:%d/docs/refresh", appPort), "application/json", nil)
	if err != nil || resp.StatusCode != http.StatusOK {
		log.Fatalf("Initial refresh failed: %v", err)
	}
	resp.Body.Close()

	fmt.Printf("Running benchmark: %s duration, %d req/s\n", *duration, *rate)

	targeter := vegeta.NewStaticTargeter(vegeta.Target{
		Method: "GET",
		URL:    fmt.Sprintf("http://localhost:%d/docs/models", appPort),
	})

	attacker := vegeta.NewAttacker(vegeta.KeepAlive(true))
	var metrics vegeta.Metrics

	for res := range attacker.Attack(targeter, vegeta.Rate{Freq: *rate, Per: time.Second}, *duration, "modeldocs") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("--------------------------------------------------")
	fmt.Println("99th percentile: ", metrics.Latencies.P99)
	fmt.Println("Mean:            ", metrics.Latencies.Mean)
	fmt.Println("Max:             ", metrics.Latencies.Max)
	fmt.Printf("Success:         %.2f%%\n", metrics.Success*100)
	fmt.Printf("Throughput:      %.2f req/s\n", metrics.Throughput)
	fmt.Println("--------------------------------------------------")

	if len(metrics.Errors) > 0 {
		fmt.Println("Errors (first 5):")
		for i, msg := range metrics.Errors {
			if i >= 5 {
				break
			}
			fmt.Println(msg)
		}
	}
}

func startMockGateway() {
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [
				{"id": "gpt-4o", "owned_by": "openai", "object": ["openai"]},
				{"id": "gemini-2.0-flash", "owned_by": "vertex-ai", "object": ["openai", "gemini"]},
				{"id": "black-forest-labs/FLUX.1-dev", "owned_by": "bfl", "object": ["image-generation"]}
			]
		}`))
	})

	mux.HandleFunc("/api/pricing", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [
				{"model_name": "gpt-4o", "quota_type": 0, "model_ratio": 1.25, "completion_ratio": 4, "model_price": 0},
				{"model_name": "black-forest-labs/FLUX.1-dev", "quota_type": 1, "model_ratio": 0, "completion_ratio": 0, "model_price": 0.025}
			]
		}`))
	})

	_ = http.ListenAndServe(fmt.Sprintf(":%d", mockPort), mux)
}

func waitForApp(url string) {
	for i := 0; i < 20; i++ {
		resp, err := http.Get(url)
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(500 * time.Millisecond)
	}
	log.Fatal("Preview server timed out")
}
