package integration

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/flight-search/itinerary-normalization-service/internal/adapter/http"
	"github.com/flight-search/itinerary-normalization-service/test/testutil"
)

// TestConcurrent_NormalizeRequests fires concurrent normalize requests at a
// single pipeline instance. The pipeline holds no per-request state, so every
// request must succeed independently.
func TestConcurrent_NormalizeRequests(t *testing.T) {
	ts := NewDefaultTestServer()
	payload := testutil.LoadTestPayload(t, "v2_nested.json")

	numRequests := 20
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.NormalizeRequest(NormalizeRequestBody{
				Payload: payload,
				SortBy:  "best",
			})
		}(i)
	}

	wg.Wait()

	for i := 0; i < numRequests; i++ {
		assert.Equal(t, http.StatusOK, results[i].Code, "request %d should succeed", i)
	}
}

// TestConcurrent_IdenticalResults verifies that concurrent runs over the same
// payload produce structurally identical batches.
func TestConcurrent_IdenticalResults(t *testing.T) {
	ts := NewDefaultTestServer()
	payload := testutil.LoadTestPayload(t, "hidden_city.json")

	numRequests := 10
	var wg sync.WaitGroup
	results := make([]*httpAdapter.NormalizeResponseDTO, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			resp := ts.NormalizeRequest(NormalizeRequestBody{Payload: payload})
			if resp.Code == http.StatusOK {
				results[idx], _ = resp.ParseNormalizeResponse()
			}
		}(i)
	}

	wg.Wait()

	require.NotNil(t, results[0])
	for i := 1; i < numRequests; i++ {
		require.NotNil(t, results[i], "request %d should have a result", i)
		assert.Equal(t, results[0], results[i], "request %d diverged", i)
	}
}

// TestConcurrent_MixedValidAndInvalid interleaves valid and invalid requests
// and checks that failures never bleed into concurrent successes.
func TestConcurrent_MixedValidAndInvalid(t *testing.T) {
	ts := NewDefaultTestServer()
	valid := testutil.LoadTestPayload(t, "v1_flat.json")

	numPairs := 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	okCount, badCount := 0, 0

	for i := 0; i < numPairs; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			resp := ts.NormalizeRequest(NormalizeRequestBody{Payload: valid})
			mu.Lock()
			if resp.Code == http.StatusOK {
				okCount++
			}
			mu.Unlock()
		}()

		go func() {
			defer wg.Done()
			resp := ts.NormalizeRequest(NormalizeRequestBody{
				Payload: map[string]interface{}{"combo_deals": 42},
			})
			mu.Lock()
			if resp.Code == http.StatusBadRequest {
				badCount++
			}
			mu.Unlock()
		}()
	}

	wg.Wait()

	assert.Equal(t, numPairs, okCount, "every valid request should succeed")
	assert.Equal(t, numPairs, badCount, "every invalid request should be rejected")
}
