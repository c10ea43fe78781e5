package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nkiryanov/boardsvc/internal/testutil"
)

func Test_UserHandlers(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	t.Run("create then get", func(t *testing.T) {
		withServer(pg.Pool, t, func(url string) {
			code, body := doRequest(t, http.MethodPost, url+"/user/", `{"name": "user_1", "password": "longenough"}`)
			require.Equalf(t, http.StatusOK, code, "not expected code. Body: %s", body)
			id := createdID(t, body)

			code, body = doRequest(t, http.MethodGet, fmt.Sprintf("%s/user/%d/", url, id), "")
			require.Equalf(t, http.StatusOK, code, "not expected code. Body: %s", body)
			require.JSONEq(t, fmt.Sprintf(`{"id": %d, "name": "user_1"}`, id), body, "password must never be serialized")
		})
	})

	t.Run("create short password fail", func(t *testing.T) {
		withServer(pg.Pool, t, func(url string) {
			code, body := doRequest(t, http.MethodPost, url+"/user/", `{"name": "user_1", "password": "1234"}`)

			require.Equalf(t, http.StatusBadRequest, code, "not expected code. Body: %s", body)
			require.JSONEq(t, `{"error": [{"field": "password", "message": "value is too short (minimum 8)"}]}`, body)
		})
	})

	t.Run("create missing fields fail with one error per field", func(t *testing.T) {
		withServer(pg.Pool, t, func(url string) {
			code, body := doRequest(t, http.MethodPost, url+"/user/", `{}`)

			require.Equalf(t, http.StatusBadRequest, code, "not expected code. Body: %s", body)
			require.JSONEq(t, `{"error": [
				{"field": "name", "message": "this field is required"},
				{"field": "password", "message": "this field is required"}
			]}`, body)
		})
	})

	t.Run("create duplicate name conflict", func(t *testing.T) {
		withServer(pg.Pool, t, func(url string) {
			code, body := doRequest(t, http.MethodPost, url+"/user/", `{"name": "user_1", "password": "longenough"}`)
			require.Equalf(t, http.StatusOK, code, "not expected code. Body: %s", body)

			code, body = doRequest(t, http.MethodPost, url+"/user/", `{"name": "user_1", "password": "other_pw_ok"}`)

			require.Equalf(t, http.StatusConflict, code, "not expected code. Body: %s", body)
			require.JSONEq(t, `{"error": "user already exists"}`, body)
		})
	})

	t.Run("get unknown id 404", func(t *testing.T) {
		withServer(pg.Pool, t, func(url string) {
			code, body := doRequest(t, http.MethodGet, url+"/user/404404/", "")

			require.Equalf(t, http.StatusNotFound, code, "not expected code. Body: %s", body)
			require.JSONEq(t, `{"error": "user not found"}`, body)
		})
	})

	t.Run("get non integer id 404", func(t *testing.T) {
		withServer(pg.Pool, t, func(url string) {
			code, _ := doRequest(t, http.MethodGet, url+"/user/not-a-number/", "")

			require.Equal(t, http.StatusNotFound, code)
		})
	})

	t.Run("patch name only", func(t *testing.T) {
		withServer(pg.Pool, t, func(url string) {
			_, body := doRequest(t, http.MethodPost, url+"/user/", `{"name": "before", "password": "longenough"}`)
			id := createdID(t, body)

			code, body := doRequest(t, http.MethodPatch, fmt.Sprintf("%s/user/%d/", url, id), `{"name": "after"}`)

			require.Equalf(t, http.StatusOK, code, "not expected code. Body: %s", body)
			require.JSONEq(t, fmt.Sprintf(`{"id": %d, "name": "after"}`, id), body)
		})
	})

	t.Run("patch password short fail", func(t *testing.T) {
		withServer(pg.Pool, t, func(url string) {
			_, body := doRequest(t, http.MethodPost, url+"/user/", `{"name": "user_1", "password": "longenough"}`)
			id := createdID(t, body)

			code, body := doRequest(t, http.MethodPatch, fmt.Sprintf("%s/user/%d/", url, id), `{"password": "1234"}`)

			require.Equalf(t, http.StatusBadRequest, code, "not expected code. Body: %s", body)
			require.JSONEq(t, `{"error": [{"field": "password", "message": "value is too short (minimum 8)"}]}`, body)
		})
	})

	t.Run("patch to taken name conflict", func(t *testing.T) {
		withServer(pg.Pool, t, func(url string) {
			_, body := doRequest(t, http.MethodPost, url+"/user/", `{"name": "taken", "password": "longenough"}`)
			require.NotEmpty(t, body)
			_, body = doRequest(t, http.MethodPost, url+"/user/", `{"name": "renameme", "password": "longenough"}`)
			id := createdID(t, body)

			code, body := doRequest(t, http.MethodPatch, fmt.Sprintf("%s/user/%d/", url, id), `{"name": "taken"}`)

			require.Equalf(t, http.StatusConflict, code, "not expected code. Body: %s", body)
			require.JSONEq(t, `{"error": "user already exists"}`, body)
		})
	})

	t.Run("patch unknown id 404", func(t *testing.T) {
		withServer(pg.Pool, t, func(url string) {
			code, body := doRequest(t, http.MethodPatch, url+"/user/404404/", `{"name": "whoever"}`)

			require.Equalf(t, http.StatusNotFound, code, "not expected code. Body: %s", body)
			require.JSONEq(t, `{"error": "user not found"}`, body)
		})
	})

	t.Run("delete then get 404", func(t *testing.T) {
		withServer(pg.Pool, t, func(url string) {
			_, body := doRequest(t, http.MethodPost, url+"/user/", `{"name": "deleteme", "password": "longenough"}`)
			id := createdID(t, body)

			code, body := doRequest(t, http.MethodDelete, fmt.Sprintf("%s/user/%d/", url, id), "")
			require.Equalf(t, http.StatusOK, code, "not expected code. Body: %s", body)
			require.JSONEq(t, `{"status": "deleted"}`, body)

			code, _ = doRequest(t, http.MethodGet, fmt.Sprintf("%s/user/%d/", url, id), "")
			require.Equal(t, http.StatusNotFound, code)
		})
	})

	t.Run("delete unknown id 404", func(t *testing.T) {
		withServer(pg.Pool, t, func(url string) {
			code, body := doRequest(t, http.MethodDelete, url+"/user/404404/", "")

			require.Equalf(t, http.StatusNotFound, code, "not expected code. Body: %s", body)
			require.JSONEq(t, `{"error": "user not found"}`, body)
		})
	})
}
