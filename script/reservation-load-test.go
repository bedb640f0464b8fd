package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/api/middleware"
)

// ErrorBody is the error envelope returned by the API
type ErrorBody struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

// Occupancy is the occupancy view of a game
type Occupancy struct {
	GameID         uint64 `json:"gameId"`
	MaxPlayers     int    `json:"maxPlayers"`
	ConfirmedCount int    `json:"confirmedCount"`
	PendingCount   int    `json:"pendingCount"`
	SpotsLeft      int    `json:"spotsLeft"`
}

// TestResult contains metrics for a single player run
type TestResult struct {
	Step         string
	Outcome      string // HTTP status or error code
	ResponseTime time.Duration
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests int
	TotalTime     time.Duration
	ResponseTimes []time.Duration
	Outcomes      map[string]int // step/outcome -> count
	Lock          sync.Mutex
}

type loadTest struct {
	baseURL   string
	gameID    uint64
	auth      middleware.AuthConfig
	confirm   bool
	jitterMs  int
	client    *http.Client
	results   chan<- TestResult
	adminRole string
}

func main() {
	// Define command line flags
	concurrency := flag.Int("c", 20, "Number of concurrent players")
	players := flag.Int("players", 50, "Number of distinct players competing for seats")
	firstPlayer := flag.Uint64("first", 1000, "ID of the first player")
	gameID := flag.Uint64("game", 1, "Game to book")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	secret := flag.String("secret", os.Getenv("GB_JWT_SECRET"), "JWT secret shared with the server")
	issuer := flag.String("issuer", "game-booking", "JWT issuer")
	confirm := flag.Bool("confirm", false, "Confirm each hold by paying with credits")
	jitterMs := flag.Int("jitter", 20, "Maximum random delay before each request in milliseconds")
	flag.Parse()

	if *secret == "" {
		fmt.Println("a JWT secret is required (-secret or GB_JWT_SECRET)")
		os.Exit(2)
	}

	fmt.Printf("Load testing game %d with %d players, concurrency %d\n", *gameID, *players, *concurrency)

	stats := &TestStats{
		Outcomes:      make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *players*2),
	}

	results := make(chan TestResult, *players*2)
	jobs := make(chan uint64, *players)

	lt := &loadTest{
		baseURL:   *baseURL,
		gameID:    *gameID,
		auth:      middleware.AuthConfig{Secret: *secret, Issuer: *issuer},
		confirm:   *confirm,
		jitterMs:  *jitterMs,
		client:    &http.Client{Timeout: 10 * time.Second},
		results:   results,
		adminRole: "admin",
	}

	// Start worker goroutines
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for playerID := range jobs {
				lt.runPlayer(playerID)
			}
		}()
	}

	for i := 0; i < *players; i++ {
		jobs <- *firstPlayer + uint64(i)
	}
	close(jobs)

	// Collect results
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			stats.TotalRequests++
			stats.Outcomes[result.Step+" "+result.Outcome]++
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	wg.Wait()
	close(results)
	<-collected
	stats.TotalTime = time.Since(startTime)

	occupancy, err := lt.occupancy()
	if err != nil {
		fmt.Printf("Failed to read occupancy: %v\n", err)
	}

	printResults(stats, occupancy)
}

func (lt *loadTest) runPlayer(playerID uint64) {
	token, err := middleware.IssueToken(lt.auth, playerID, "player", time.Now(), time.Hour)
	if err != nil {
		lt.results <- TestResult{Step: "token", Outcome: err.Error()}
		return
	}

	reserveURL := fmt.Sprintf("%s/api/v1/games/%d/reservations", lt.baseURL, lt.gameID)
	var reservation struct {
		ReservationID string `json:"reservationId"`
	}
	if ok := lt.call("reserve", http.MethodPost, reserveURL, token, nil, &reservation); !ok || !lt.confirm {
		return
	}

	confirmURL := fmt.Sprintf("%s/api/v1/games/%d/registrations/confirm", lt.baseURL, lt.gameID)
	lt.call("confirm", http.MethodPost, confirmURL, token, map[string]any{
		"reservationId": reservation.ReservationID,
		"useCredits":    true,
	}, nil)
}

// call performs one request and reports its outcome. It returns true on a 2xx answer.
func (lt *loadTest) call(step, method, url, token string, body any, out any) bool {
	if lt.jitterMs > 0 {
		time.Sleep(time.Duration(rand.IntN(lt.jitterMs)) * time.Millisecond)
	}

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			lt.results <- TestResult{Step: step, Outcome: err.Error()}
			return false
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, payload)
	if err != nil {
		lt.results <- TestResult{Step: step, Outcome: err.Error()}
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	startTime := time.Now()
	resp, err := lt.client.Do(req)
	responseTime := time.Since(startTime)
	if err != nil {
		lt.results <- TestResult{Step: step, Outcome: "transport error", ResponseTime: responseTime}
		return false
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		var errBody ErrorBody
		outcome := fmt.Sprintf("HTTP %d", resp.StatusCode)
		if json.Unmarshal(raw, &errBody) == nil && errBody.ErrorCode != "" {
			outcome = errBody.ErrorCode
		}
		lt.results <- TestResult{Step: step, Outcome: outcome, ResponseTime: responseTime}
		return false
	}

	if out != nil {
		_ = json.Unmarshal(raw, out)
	}
	lt.results <- TestResult{Step: step, Outcome: fmt.Sprintf("HTTP %d", resp.StatusCode), ResponseTime: responseTime}
	return true
}

func (lt *loadTest) occupancy() (*Occupancy, error) {
	token, err := middleware.IssueToken(lt.auth, 1, lt.adminRole, time.Now(), time.Minute)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/api/v1/games/%d/occupancy", lt.baseURL, lt.gameID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := lt.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var occupancy Occupancy
	if err := json.NewDecoder(resp.Body).Decode(&occupancy); err != nil {
		return nil, err
	}
	return &occupancy, nil
}

func printResults(stats *TestStats, occupancy *Occupancy) {
	var p50, p90, p99 time.Duration
	if n := len(stats.ResponseTimes); n > 0 {
		sorted := slices.Clone(stats.ResponseTimes)
		slices.Sort(sorted)
		p50 = sorted[n*50/100]
		p90 = sorted[n*90/100]
		p99 = sorted[n*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	if stats.TotalTime > 0 {
		fmt.Printf("Throughput:          %.2f req/s\n", float64(stats.TotalRequests)/stats.TotalTime.Seconds())
	}

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- OUTCOMES -----------------")
	keys := make([]string, 0, len(stats.Outcomes))
	for k := range stats.Outcomes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Printf("%-40s: %d\n", k, stats.Outcomes[k])
	}

	fmt.Println("\n================= CONCLUSION =================")
	if occupancy == nil {
		fmt.Println("Occupancy unavailable, capacity was not verified")
		return
	}
	fmt.Printf("Occupancy: %d confirmed, %d pending, %d max\n",
		occupancy.ConfirmedCount, occupancy.PendingCount, occupancy.MaxPlayers)
	if occupancy.ConfirmedCount+occupancy.PendingCount > occupancy.MaxPlayers {
		fmt.Println("❌ GAME IS OVERSOLD")
		os.Exit(1)
	}
	fmt.Println("✅ No overselling detected")
}
