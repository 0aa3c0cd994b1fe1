package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
)

func main() {
	api := os.Getenv("API_BASE")
	if api == "" {
		api = "http://localhost:8080"
	}
	key := os.Getenv("API_KEY")
	if key == "" {
		fmt.Println("API_KEY is not set; the API will reject the request.")
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Enter a host to diagnose (e.g., example.com): ")
	raw, _ := reader.ReadString('\n')
	target := strings.TrimSpace(raw)
	if target == "" {
		fmt.Println("Empty target.")
		return
	}

	body, _ := json.Marshal(map[string]string{"target_host": target})
	req, _ := http.NewRequest(http.MethodPost, api+"/api/diagnostics", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", key)

	fmt.Println("Running diagnostic (the speed test takes a while)...")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Error contacting API:", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		fmt.Println("API returned status:", resp.Status)
		return
	}

	var res struct {
		ID          string   `json:"id"`
		TargetHost  string   `json:"target_host"`
		LatencyMS   *float64 `json:"latency_ms"`
		DownloadBPS float64  `json:"download_bps"`
		UploadBPS   float64  `json:"upload_bps"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		fmt.Println("Could not decode response:", err)
		return
	}

	latency := "n/a"
	if res.LatencyMS != nil {
		latency = fmt.Sprintf("%.1f ms", *res.LatencyMS)
	}
	fmt.Printf("Saved result %s for %s\n", res.ID, res.TargetHost)
	fmt.Printf("  Latency:  %s\n", latency)
	fmt.Printf("  Download: %.1f Mbps\n", res.DownloadBPS/1e6)
	fmt.Printf("  Upload:   %.1f Mbps\n", res.UploadBPS/1e6)
}
