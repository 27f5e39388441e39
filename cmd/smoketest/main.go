// Command smoketest replays the documented request scenarios against a running
// server and prints a pass/fail table.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

type scenario struct {
	name  string
	body  string
	check func(status int, body []byte) error
}

func main() {
	baseURL := flag.String("url", "http://localhost:5000", "server base URL")
	wait := flag.Duration("wait", 0, "time to wait before the first request")
	flag.Parse()

	time.Sleep(*wait)

	scenarios := []scenario{
		{"real-looking article", `{"text": "Scientists confirm water boils at 100 degrees Celsius at sea level."}`, expectPrediction},
		{"missing text", `{}`, expectNoText},
		{"empty text", `{"text": ""}`, expectNoText},
		{"malformed body", `this is not json`, expectFailure},
	}

	client := &http.Client{Timeout: 60 * time.Second}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Scenario", "Status", "Result", "Detail"})

	failed := 0
	for _, sc := range scenarios {
		status, body, err := send(client, *baseURL+"/api/bert_predict", sc.body)
		if err == nil {
			err = sc.check(status, body)
		}

		result := color.Green.Sprint("PASSED")
		detail := string(bytes.TrimSpace(body))
		if err != nil {
			failed++
			result = color.Red.Sprint("FAILED")
			detail = err.Error()
		}
		table.Append([]string{sc.name, strconv.Itoa(status), result, detail})
	}
	table.Render()

	if failed > 0 {
		color.Red.Printf("%d of %d scenarios failed\n", failed, len(scenarios))
		os.Exit(1)
	}
	color.Green.Println("All scenarios passed")
}

func send(client *http.Client, url, payload string) (int, []byte, error) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("error reading response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func expectPrediction(status int, body []byte) error {
	if status != http.StatusOK {
		return fmt.Errorf("want 200, got %d", status)
	}
	var res struct {
		Prediction string   `json:"prediction"`
		Confidence *float64 `json:"confidence"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	if res.Prediction != "Real" && res.Prediction != "Fake" {
		return fmt.Errorf("unexpected prediction %q", res.Prediction)
	}
	if res.Confidence == nil || *res.Confidence < 0 || *res.Confidence > 1 {
		return fmt.Errorf("confidence out of range")
	}
	return nil
}

func expectNoText(status int, body []byte) error {
	if status != http.StatusBadRequest {
		return fmt.Errorf("want 400, got %d", status)
	}
	var res map[string]string
	if err := json.Unmarshal(body, &res); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	if res["error"] != "No text provided" {
		return fmt.Errorf("unexpected error message %q", res["error"])
	}
	return nil
}

func expectFailure(status int, _ []byte) error {
	if status == http.StatusOK {
		return fmt.Errorf("malformed body was accepted")
	}
	return nil
}
