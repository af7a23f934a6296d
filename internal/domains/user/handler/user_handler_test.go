package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmorate-backend/internal/domains/user/model"
	"filmorate-backend/internal/domains/user/repository"
	"filmorate-backend/internal/domains/user/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewUserHandler(service.NewUserService(repository.NewMemoryRepository()))

	router := gin.New()
	users := router.Group("/users")
	{
		users.POST("", h.Create)
		users.PUT("", h.Update)
		users.GET("", h.GetAll)
		users.GET("/:id", h.GetByID)
		users.DELETE("/:id", h.Delete)
		users.PUT("/:id/friends/:friendId", h.AddFriend)
		users.DELETE("/:id/friends/:friendId", h.RemoveFriend)
		users.GET("/:id/friends", h.GetFriends)
		users.GET("/:id/friends/common/:otherId", h.GetCommonFriends)
	}

	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createTestUser(t *testing.T, router *gin.Engine, login string) model.User {
	t.Helper()

	body := fmt.Sprintf(`{
        "email": "%s@example.com",
        "login": "%s",
        "name": "",
        "birthday": "1990-05-15"
    }`, login, login)

	w := doRequest(router, http.MethodPost, "/users", body)
	require.Equal(t, http.StatusOK, w.Code)

	var created model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func TestCreateUserDefaultsNameToLogin(t *testing.T) {
	router := newTestRouter(t)

	created := createTestUser(t, router, "mouse")

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "mouse", created.Name)
}

func TestCreateUserBirthdayOnWire(t *testing.T) {
	router := newTestRouter(t)

	body := `{"email": "a@b.ru", "login": "a", "birthday": "1946-08-20"}`
	w := doRequest(router, http.MethodPost, "/users", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"birthday":"1946-08-20"`)
}

func TestCreateUserValidationFailure(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "blank email",
			body:    `{"email": "", "login": "mouse"}`,
			wantErr: "email must not be blank",
		},
		{
			name:    "malformed email",
			body:    `{"email": "broken", "login": "mouse"}`,
			wantErr: "email must be a valid address",
		},
		{
			name:    "login with whitespace",
			body:    `{"email": "a@b.ru", "login": "dolore ullamco"}`,
			wantErr: "login must not contain whitespace",
		},
		{
			name:    "future birthday",
			body:    `{"email": "a@b.ru", "login": "a", "birthday": "2446-08-20"}`,
			wantErr: "birthday must not be in the future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/users", tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantErr)
		})
	}
}

func TestUpdateMissingUser(t *testing.T) {
	router := newTestRouter(t)

	body := `{"id": 9999, "email": "a@b.ru", "login": "ghost"}`
	w := doRequest(router, http.MethodPut, "/users", body)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user with id=9999 not found", resp["message"])
}

func TestGetAllUsersEmpty(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/users", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestAddFriendSelfRejected(t *testing.T) {
	router := newTestRouter(t)
	createTestUser(t, router, "alice")

	w := doRequest(router, http.MethodPut, "/users/1/friends/1", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "a user cannot befriend themselves")
}

func TestAddFriendMissingFriend(t *testing.T) {
	router := newTestRouter(t)
	createTestUser(t, router, "alice")

	w := doRequest(router, http.MethodPut, "/users/1/friends/42", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFriendFlow(t *testing.T) {
	router := newTestRouter(t)
	alice := createTestUser(t, router, "alice")
	bob := createTestUser(t, router, "bob")

	w := doRequest(router, http.MethodPut,
		fmt.Sprintf("/users/%d/friends/%d", alice.ID, bob.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, fmt.Sprintf("/users/%d/friends", alice.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	var friends []model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &friends))
	require.Len(t, friends, 1)
	assert.Equal(t, bob.ID, friends[0].ID)

	w = doRequest(router, http.MethodDelete,
		fmt.Sprintf("/users/%d/friends/%d", alice.ID, bob.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, fmt.Sprintf("/users/%d/friends", alice.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestGetCommonFriends(t *testing.T) {
	router := newTestRouter(t)
	alice := createTestUser(t, router, "alice")
	bob := createTestUser(t, router, "bob")
	carol := createTestUser(t, router, "carol")

	doRequest(router, http.MethodPut, fmt.Sprintf("/users/%d/friends/%d", alice.ID, carol.ID), "")
	doRequest(router, http.MethodPut, fmt.Sprintf("/users/%d/friends/%d", bob.ID, carol.ID), "")

	w := doRequest(router, http.MethodGet,
		fmt.Sprintf("/users/%d/friends/common/%d", alice.ID, bob.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	var common []model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &common))
	require.Len(t, common, 1)
	assert.Equal(t, carol.ID, common[0].ID)
}

func TestDeleteUser(t *testing.T) {
	router := newTestRouter(t)
	createTestUser(t, router, "alice")

	w := doRequest(router, http.MethodDelete, "/users/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/users/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPathIDMustBeInteger(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/users/abc", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "id must be an integer")
}
