package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Hammers the read endpoints of a running dashboard instance to verify the
// cache layer holds up under concurrent list traffic.

var (
	baseURL     = flag.String("base", "http://localhost:8080", "dashboard base URL")
	token       = flag.String("token", "", "admin bearer token")
	concurrency = flag.Int("c", 50, "concurrent workers")
	requests    = flag.Int("n", 2000, "total requests")
)

var paths = []string{
	"/api/posts/?page=1&limit=10",
	"/api/reels/?page=1&limit=10",
	"/api/users/?page=1&limit=10",
	"/api/analytics/overview",
}

func main() {
	flag.Parse()
	if *token == "" {
		fmt.Println("a bearer token is required: -token <jwt>")
		return
	}

	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 2000
	t.MaxIdleConnsPerHost = 2000
	t.MaxConnsPerHost = 2000
	client := &http.Client{Transport: t, Timeout: 10 * time.Second}

	fmt.Printf("running %d requests across %d workers against %s\n", *requests, *concurrency, *baseURL)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		failed  int
	)
	jobs := make(chan string, *requests)
	for i := 0; i < *requests; i++ {
		jobs <- paths[i%len(paths)]
	}
	close(jobs)

	start := time.Now()
	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				req, err := http.NewRequest(http.MethodGet, *baseURL+path, nil)
				if err != nil {
					continue
				}
				req.Header.Set("Authorization", "Bearer "+*token)

				resp, err := client.Do(req)
				mu.Lock()
				if err != nil || resp.StatusCode != http.StatusOK {
					failed++
				} else {
					success++
				}
				mu.Unlock()
				if resp != nil {
					io.Copy(io.Discard, resp.Body)
					resp.Body.Close()
				}
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	fmt.Printf("done in %s\n", elapsed)
	fmt.Printf("success: %d, failed: %d\n", success, failed)
	fmt.Printf("throughput: %.1f req/s\n", float64(*requests)/elapsed.Seconds())
}
