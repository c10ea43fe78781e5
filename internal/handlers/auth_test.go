package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nkiryanov/boardsvc/internal/testutil"
)

func Test_LoginHandler(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	t.Run("login ok", func(t *testing.T) {
		withServer(pg.Pool, t, func(url string) {
			code, body := doRequest(t, http.MethodPost, url+"/user/", `{"name": "user_1", "password": "longenough"}`)
			require.Equalf(t, http.StatusOK, code, "not expected code. Body: %s", body)

			code, body = doRequest(t, http.MethodPost, url+"/login/", `{"name": "user_1", "password": "longenough"}`)

			require.Equalf(t, http.StatusOK, code, "not expected code. Body: %s", body)

			var response struct {
				Token string `json:"token"`
			}
			require.NoError(t, json.Unmarshal([]byte(body), &response))
			require.NotEmpty(t, response.Token, "login should return a signed token")
		})
	})

	t.Run("wrong password 401", func(t *testing.T) {
		withServer(pg.Pool, t, func(url string) {
			code, body := doRequest(t, http.MethodPost, url+"/user/", `{"name": "user_1", "password": "longenough"}`)
			require.Equalf(t, http.StatusOK, code, "not expected code. Body: %s", body)

			code, body = doRequest(t, http.MethodPost, url+"/login/", `{"name": "user_1", "password": "wrongpassword"}`)

			require.Equalf(t, http.StatusUnauthorized, code, "not expected code. Body: %s", body)
			require.JSONEq(t, `{"error": "invalid credentials"}`, body)
		})
	})

	t.Run("unknown user 401", func(t *testing.T) {
		withServer(pg.Pool, t, func(url string) {
			code, body := doRequest(t, http.MethodPost, url+"/login/", `{"name": "nobody", "password": "longenough"}`)

			require.Equalf(t, http.StatusUnauthorized, code, "not expected code. Body: %s", body)
			require.JSONEq(t, `{"error": "invalid credentials"}`, body)
		})
	})

	t.Run("missing fields 400", func(t *testing.T) {
		withServer(pg.Pool, t, func(url string) {
			code, body := doRequest(t, http.MethodPost, url+"/login/", `{}`)

			require.Equalf(t, http.StatusBadRequest, code, "not expected code. Body: %s", body)
			require.JSONEq(t, `{"error": [
				{"field": "name", "message": "this field is required"},
				{"field": "password", "message": "this field is required"}
			]}`, body)
		})
	})
}
