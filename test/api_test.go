//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/2beens/recoverycoach/internal/domain"
	"github.com/2beens/recoverycoach/internal/snapshot"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) newUserID() string {
	return "it-" + gofakeit.UUID()
}

func (s *IntegrationTestSuite) deleteUser(ctx context.Context, userID string) {
	_, err := s.DB.ExecContext(ctx, "DELETE FROM user_profile WHERE user_id = $1", userID)
	require.NoError(s.T(), err)
}

// do sends an authorized request and returns the status code and body.
func (s *IntegrationTestSuite) do(ctx context.Context, method, path string, payload any) (int, []byte) {
	var body io.Reader = http.NoBody
	if payload != nil {
		payloadJson, err := json.Marshal(payload)
		require.NoError(s.T(), err)
		body = bytes.NewReader(payloadJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, body)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Authorization", "Bearer "+testAPIToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) saveProfile(ctx context.Context, userID string) {
	status, body := s.do(ctx, http.MethodPut, fmt.Sprintf("/users/%s/profile", userID), map[string]any{
		"name":           gofakeit.FirstName(),
		"age":            30,
		"height":         70,
		"weight":         180,
		"bodyFatPercent": 18,
		"activityLevel":  "Moderately Active",
		"targetPhysique": "Muscular",
		"sex":            "male",
		"units":          "imperial",
	})
	require.Equal(s.T(), http.StatusOK, status, string(body))
}

func (s *IntegrationTestSuite) TestServer_PublicRoutes() {
	t := s.T()

	resp, err := s.httpClient.Get(serverEndpoint + "/version")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(respBytes), "test-version-info")

	unauthorized, err := s.httpClient.Get(serverEndpoint + "/users/someone/recovery")
	require.NoError(t, err)
	defer unauthorized.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, unauthorized.StatusCode)
}

func (s *IntegrationTestSuite) TestOptimizationFlow() {
	t := s.T()
	ctx := context.Background()
	userID := s.newUserID()
	defer s.deleteUser(ctx, userID)

	status, _ := s.do(ctx, http.MethodGet, fmt.Sprintf("/users/%s/recovery", userID), nil)
	require.Equal(t, http.StatusNotFound, status)

	s.saveProfile(ctx, userID)

	now := time.Now().UTC().Truncate(time.Second)
	for d := 1; d <= 7; d++ {
		status, body := s.do(ctx, http.MethodPost, fmt.Sprintf("/users/%s/records/sleep", userID), domain.SleepRecord{
			Date:        now.Add(-time.Duration(d) * 24 * time.Hour),
			HoursSlept:  8,
			Quality:     8,
			StressLevel: 3,
		})
		require.Equal(t, http.StatusCreated, status, string(body))
	}

	status, body := s.do(ctx, http.MethodGet, fmt.Sprintf("/users/%s/recovery", userID), nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var score domain.RecoveryScore
	require.NoError(t, json.Unmarshal(body, &score))
	assert.Equal(t, 92, score.Sleep)
	assert.Equal(t, 84, score.Overall)

	status, body = s.do(ctx, http.MethodGet, fmt.Sprintf("/users/%s/nutrition", userID), nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var targets domain.NutritionTargets
	require.NoError(t, json.Unmarshal(body, &targets))
	assert.Equal(t, targets.ProteinG*4+targets.CarbsG*4+targets.FatG*9, targets.Calories)

	status, _ = s.do(ctx, http.MethodGet, fmt.Sprintf("/users/%s/snapshot", userID), nil)
	require.Equal(t, http.StatusNotFound, status)

	status, body = s.do(ctx, http.MethodPut, fmt.Sprintf("/users/%s/biometrics", userID), domain.BiometricSample{
		Timestamp: now,
		HRV:       62,
		RestingHR: 54,
		Steps:     9000,
	})
	require.Equal(t, http.StatusAccepted, status, string(body))

	status, body = s.do(ctx, http.MethodPost, fmt.Sprintf("/users/%s/optimize", userID), nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var snap snapshot.Snapshot
	require.NoError(t, json.Unmarshal(body, &snap))
	assert.Equal(t, userID, snap.UserID)
	assert.Equal(t, score, snap.Recovery)
	require.NotNil(t, snap.Biometrics)
	assert.Equal(t, 62.0, snap.Biometrics.HRV)
	assert.NotEmpty(t, snap.Workout.Adapted.Exercises)

	status, body = s.do(ctx, http.MethodGet, fmt.Sprintf("/users/%s/snapshot", userID), nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var latest snapshot.Snapshot
	require.NoError(t, json.Unmarshal(body, &latest))
	assert.Equal(t, snap.Recovery, latest.Recovery)
	assert.True(t, snap.ComputedAt.Equal(latest.ComputedAt))
}

func (s *IntegrationTestSuite) TestRecords_Errors() {
	t := s.T()
	ctx := context.Background()
	userID := s.newUserID()
	defer s.deleteUser(ctx, userID)

	sleep := domain.SleepRecord{
		// ids are opaque, not necessarily uuids
		ID:          "sleep-" + userID,
		Date:        time.Now().UTC(),
		HoursSlept:  7,
		Quality:     6,
		StressLevel: 4,
	}
	status, _ := s.do(ctx, http.MethodPost, fmt.Sprintf("/users/%s/records/sleep", userID), sleep)
	assert.Equal(t, http.StatusNotFound, status)

	s.saveProfile(ctx, userID)

	status, body := s.do(ctx, http.MethodPost, fmt.Sprintf("/users/%s/records/sleep", userID), sleep)
	require.Equal(t, http.StatusCreated, status, string(body))
	var added domain.SleepRecord
	require.NoError(t, json.Unmarshal(body, &added))
	assert.Equal(t, sleep.ID, added.ID)

	status, _ = s.do(ctx, http.MethodPost, fmt.Sprintf("/users/%s/records/sleep", userID), sleep)
	assert.Equal(t, http.StatusConflict, status)

	sleep.ID = ""
	sleep.Quality = 11
	status, _ = s.do(ctx, http.MethodPost, fmt.Sprintf("/users/%s/records/sleep", userID), sleep)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(ctx, http.MethodPost, fmt.Sprintf("/users/%s/records/meditation", userID), sleep)
	assert.Equal(t, http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestIncompleteProfile_Unprocessable() {
	t := s.T()
	ctx := context.Background()
	userID := s.newUserID()
	defer s.deleteUser(ctx, userID)

	status, body := s.do(ctx, http.MethodPut, fmt.Sprintf("/users/%s/profile", userID), map[string]any{
		"name":   gofakeit.FirstName(),
		"height": 180,
		"weight": 80,
	})
	require.Equal(t, http.StatusOK, status, string(body))

	status, body = s.do(ctx, http.MethodPost, fmt.Sprintf("/users/%s/optimize", userID), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, string(body), "age")
}
