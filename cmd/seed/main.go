// Command seed drives a running service with synthetic survey and habit
// traffic, then reads the footprints back. Useful for smoke-testing a
// deployment end to end.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/okian/ecotrace/internal/domain/factor"
	"github.com/okian/ecotrace/internal/domain/habit"
	"github.com/okian/ecotrace/internal/domain/model"
)

const (
	defaultNumUsers = 25
	defaultTimeout  = 10 * time.Second
	runTimeout      = 5 * time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numUsers = flag.Int("users", defaultNumUsers, "Number of synthetic users to seed")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "Random seed for answer selection")
		verbose  = flag.Bool("verbose", false, "Log every request")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	rng := rand.New(rand.NewSource(*seed))
	client := &http.Client{Timeout: *timeout}

	var surveys, habits, failures int
	for i := 0; i < *numUsers; i++ {
		userID := fmt.Sprintf("seed-user-%03d", i)

		for _, cat := range model.Categories() {
			answers := randomAnswers(rng, cat)
			if err := postJSON(ctx, client, *baseURL+"/surveys/"+string(cat), map[string]any{
				"user_id": userID,
				"answers": answers,
			}); err != nil {
				failures++
				log.Printf("survey %s/%s failed: %v", userID, cat, err)
				continue
			}
			surveys++
			if *verbose {
				log.Printf("submitted %s survey for %s", cat, userID)
			}
		}

		for _, action := range habit.KnownActions() {
			completions := rng.Intn(4)
			for j := 0; j < completions; j++ {
				if err := postJSON(ctx, client, *baseURL+"/habits/completions", map[string]any{
					"user_id":  userID,
					"title":    action.Title,
					"quantity": action.Quantity,
					"points":   action.Points,
				}); err != nil {
					failures++
					log.Printf("habit completion for %s failed: %v", userID, err)
					continue
				}
				habits++
			}
		}

		total, err := fetchTotal(ctx, client, *baseURL+"/footprint/"+userID)
		if err != nil {
			failures++
			log.Printf("footprint read for %s failed: %v", userID, err)
			continue
		}
		if *verbose {
			log.Printf("%s total footprint: %.4f tons/year", userID, total)
		}
	}

	log.Printf("seeded %d users: %d surveys, %d habit completions, %d failures",
		*numUsers, surveys, habits, failures)
}

// randomAnswers picks one valid answer token per question of the category.
func randomAnswers(rng *rand.Rand, cat model.Category) map[string]string {
	answers := make(map[string]string)
	for _, q := range factor.Questions(cat) {
		choices := factor.Answers(cat, q)
		answers[q] = choices[rng.Intn(len(choices))]
	}
	return answers
}

func postJSON(ctx context.Context, client *http.Client, url string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, raw)
	}
	return nil
}

func fetchTotal(ctx context.Context, client *http.Client, url string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("status %d: %s", resp.StatusCode, raw)
	}

	var parsed struct {
		TotalTons float64 `json:"total_tons"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}
	return parsed.TotalTons, nil
}
