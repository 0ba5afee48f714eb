package integration

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"irispay/internal/adapter/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentApprovals fires many concurrent approve calls for the same
// pending transaction. Settlement runs as one serialized critical section,
// so exactly one call may win and the client is charged exactly once.
func TestConcurrentApprovals(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	cafeToken := app.login(t, memory.SeedCafeSample)
	aliceToken := app.login(t, memory.SeedAliceSample)

	resp, body := app.post(t, "/api/v1/payments", cafeToken, map[string]string{
		"client_id": memory.SeedAliceID,
		"amount":    "100.00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	txnID := data(t, body)["id"].(string)

	concurrency := 32
	var wg sync.WaitGroup
	var succeeded, conflicted int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req, err := http.NewRequest(http.MethodPost, app.server.URL+fmt.Sprintf("/api/v1/payments/%s/approve", txnID), nil)
			if err != nil {
				return
			}
			req.Header.Set("Authorization", "Bearer "+aliceToken)
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return
			}
			resp.Body.Close()
			switch resp.StatusCode {
			case http.StatusOK:
				atomic.AddInt64(&succeeded, 1)
			case http.StatusConflict:
				atomic.AddInt64(&conflicted, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), succeeded, "exactly one approval may settle")
	assert.Equal(t, int64(concurrency-1), conflicted)

	// The client was charged exactly once.
	resp, body = app.get(t, "/api/v1/me", aliceToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "4900.00", data(t, body)["account_balance"])
}
