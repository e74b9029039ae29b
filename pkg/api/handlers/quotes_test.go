package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuoteInstance(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/quotes", instancePayload())
	require.Equal(t, http.StatusOK, w.Code)

	var resp QuoteResponse
	decode(t, w, &resp)

	assert.Equal(t, 12.0, resp.Monthly)
	assert.InDelta(t, 12.0/730.0, resp.Hourly, 1e-9)
	assert.True(t, resp.Ready)
	assert.NotEmpty(t, resp.Options.Plans)
	assert.NotEmpty(t, resp.Breakdown.Items)
}

func TestCreateQuoteNotReadyWithoutName(t *testing.T) {
	env := setupTestEnv(t)

	payload := instancePayload()
	payload["name"] = ""

	w := env.do(t, http.MethodPost, "/quotes", payload)
	require.Equal(t, http.StatusOK, w.Code)

	var resp QuoteResponse
	decode(t, w, &resp)
	assert.False(t, resp.Ready)
	assert.Equal(t, 12.0, resp.Monthly)
}

func TestCreateQuoteUnknownKind(t *testing.T) {
	env := setupTestEnv(t)

	payload := instancePayload()
	payload["kind"] = "mystery"

	w := env.do(t, http.MethodPost, "/quotes", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateQuoteVolume(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/quotes", map[string]interface{}{
		"kind":     "volume",
		"name":     "data",
		"quantity": 1,
		"size_gb":  250,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp QuoteResponse
	decode(t, w, &resp)
	assert.Equal(t, 25.0, resp.Monthly)
	assert.True(t, resp.Ready)
}
