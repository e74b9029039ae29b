package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skystack/console/pkg/database/models"
)

func createRunningResource(t *testing.T, env *testEnv, payload map[string]interface{}) models.Resource {
	t.Helper()

	w := env.do(t, http.MethodPost, "/resources", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var res models.Resource
	decode(t, w, &res)
	require.Equal(t, models.StatusProvisioning, res.Status)

	require.Eventually(t, func() bool {
		if env.runner.InFlight(res.ID.String()) {
			return false
		}
		loaded, err := env.resourceRepo.GetByID(context.Background(), res.ID)
		return err == nil && loaded.Status == models.StatusRunning
	}, time.Second, 5*time.Millisecond)

	return res
}

func TestCreateResourceLifecycle(t *testing.T) {
	env := setupTestEnv(t)

	res := createRunningResource(t, env, instancePayload())
	assert.Equal(t, "web-1", res.Name)
	assert.Equal(t, "voc-c-1c-2gb-50s", res.PlanLabel)
	assert.Equal(t, "Ubuntu", res.ImageLabel)
	assert.Equal(t, 12.0, res.CostMonthly)
}

func TestCreateResourceRejectsUnreadySelection(t *testing.T) {
	env := setupTestEnv(t)

	payload := instancePayload()
	payload["name"] = ""

	w := env.do(t, http.MethodPost, "/resources", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpgradeResource(t *testing.T) {
	env := setupTestEnv(t)
	res := createRunningResource(t, env, instancePayload())

	w := env.do(t, http.MethodPost, fmt.Sprintf("/resources/%s/upgrade", res.ID), map[string]interface{}{
		"plan_id": "voc-c-2c-4gb-75s",
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	var upgraded models.Resource
	decode(t, w, &upgraded)
	assert.Equal(t, models.StatusUpgrading, upgraded.Status)
	assert.Equal(t, 30.0, upgraded.CostMonthly)

	require.Eventually(t, func() bool {
		loaded, err := env.resourceRepo.GetByID(context.Background(), res.ID)
		return err == nil && loaded.Status == models.StatusRunning
	}, time.Second, 5*time.Millisecond)
}

func TestUpgradeRejectedWhileInFlight(t *testing.T) {
	env := setupTestEnv(t)
	res := createRunningResource(t, env, instancePayload())

	body := map[string]interface{}{"plan_id": "voc-c-2c-4gb-75s"}
	w := env.do(t, http.MethodPost, fmt.Sprintf("/resources/%s/upgrade", res.ID), body)
	require.Equal(t, http.StatusAccepted, w.Code)

	w = env.do(t, http.MethodPost, fmt.Sprintf("/resources/%s/upgrade", res.ID), body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpgradeUnknownPlan(t *testing.T) {
	env := setupTestEnv(t)
	res := createRunningResource(t, env, instancePayload())

	w := env.do(t, http.MethodPost, fmt.Sprintf("/resources/%s/upgrade", res.ID), map[string]interface{}{
		"plan_id": "no-such-plan",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestResizeVolume(t *testing.T) {
	env := setupTestEnv(t)
	res := createRunningResource(t, env, map[string]interface{}{
		"kind":     "volume",
		"name":     "data",
		"quantity": 1,
		"size_gb":  100,
	})

	w := env.do(t, http.MethodPost, fmt.Sprintf("/resources/%s/resize", res.ID), map[string]interface{}{
		"size_gb": 250,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resized models.Resource
	decode(t, w, &resized)
	assert.Equal(t, 250, resized.SizeGB)
	assert.Equal(t, 25.0, resized.CostMonthly)
}

func TestResizeToSameSizeRejected(t *testing.T) {
	env := setupTestEnv(t)
	res := createRunningResource(t, env, map[string]interface{}{
		"kind":     "volume",
		"name":     "data",
		"quantity": 1,
		"size_gb":  100,
	})

	w := env.do(t, http.MethodPost, fmt.Sprintf("/resources/%s/resize", res.ID), map[string]interface{}{
		"size_gb": 100,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestResizeUnsizedKindRejected(t *testing.T) {
	env := setupTestEnv(t)
	res := createRunningResource(t, env, instancePayload())

	w := env.do(t, http.MethodPost, fmt.Sprintf("/resources/%s/resize", res.ID), map[string]interface{}{
		"size_gb": 100,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeleteResourceRequiresExactConfirmation(t *testing.T) {
	env := setupTestEnv(t)
	res := createRunningResource(t, env, instancePayload())

	for _, typed := range []string{"", "Web-1", "web-1 ", "web"} {
		w := env.do(t, http.MethodDelete, fmt.Sprintf("/resources/%s", res.ID), map[string]interface{}{
			"confirm_name": typed,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "confirmation %q must be rejected", typed)
	}

	w := env.do(t, http.MethodDelete, fmt.Sprintf("/resources/%s", res.ID), map[string]interface{}{
		"confirm_name": "web-1",
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/resources/%s", res.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRejectedWhileUpgradeInFlight(t *testing.T) {
	env := setupTestEnv(t)
	res := createRunningResource(t, env, instancePayload())

	w := env.do(t, http.MethodPost, fmt.Sprintf("/resources/%s/upgrade", res.ID), map[string]interface{}{
		"plan_id": "voc-c-2c-4gb-75s",
	})
	require.Equal(t, http.StatusAccepted, w.Code)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/resources/%s", res.ID), map[string]interface{}{
		"confirm_name": "web-1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetResourceBadID(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/resources/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListResources(t *testing.T) {
	env := setupTestEnv(t)
	createRunningResource(t, env, instancePayload())

	w := env.do(t, http.MethodGet, "/resources?kind=instance", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Resources []models.Resource `json:"resources"`
	}
	decode(t, w, &resp)
	assert.Len(t, resp.Resources, 1)
}
