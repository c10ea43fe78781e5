package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/nkiryanov/boardsvc/internal/logger"
	"github.com/nkiryanov/boardsvc/internal/repository/postgres"
	"github.com/nkiryanov/boardsvc/internal/service/announcement"
	"github.com/nkiryanov/boardsvc/internal/service/token"
	"github.com/nkiryanov/boardsvc/internal/service/user"
	"github.com/nkiryanov/boardsvc/internal/testutil"
)

// Run the full router over production services inside a rolled back transaction
func withServer(dbpool *pgxpool.Pool, t *testing.T, fn func(url string)) {
	t.Helper()

	testutil.WithTx(dbpool, t, func(tx pgx.Tx) {
		storage := postgres.NewStorage(tx)

		tokenManager, err := token.New(token.Config{SecretKey: "test-secret"})
		require.NoError(t, err, "token manager should be created without errors")

		userService := user.NewService(user.DefaultHasher, storage)
		announcementService := announcement.NewService(storage)

		router := NewRouter(userService, announcementService, tokenManager, logger.NewNoOpLogger())
		srv := httptest.NewServer(router)
		defer srv.Close()

		fn(srv.URL)
	})
}

func doRequest(t *testing.T, method string, url string, body string) (int, string) {
	t.Helper()

	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(respBody)
}

// Parse the id from a '{"id": n}' create response
func createdID(t *testing.T, body string) int64 {
	t.Helper()

	var response struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &response))
	require.NotZero(t, response.ID, "create response should carry the new id")

	return response.ID
}
