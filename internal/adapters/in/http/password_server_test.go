package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpin "patternbook/internal/adapters/in/http"
	"patternbook/internal/adapters/out/memory/userrepo"
	"patternbook/internal/core/application/usecases/commands"
	"patternbook/internal/core/domain/model/kernel"
	"patternbook/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newServerWithUser(t *testing.T, password string) (*httpin.PasswordServer, kernel.UUID, *userrepo.Repository) {
	t.Helper()

	users := userrepo.NewRepository()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	id := kernel.NewUUID()
	u, err := user.NewUser(id, "alice", hash)
	require.NoError(t, err)
	require.NoError(t, users.Add(context.Background(), u))

	handler := commands.NewUpdatePasswordCommandHandler(users, bcrypt.MinCost)
	return httpin.NewPasswordServer(handler, users, nil), id, users
}

func postChangePassword(t *testing.T, server *httpin.PasswordServer, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/users/password", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	server.ChangePassword(rec, req)
	return rec
}

func TestPasswordServer_ChangePassword_Success(t *testing.T) {
	server, id, users := newServerWithUser(t, "old secret")

	rec := postChangePassword(t, server, httpin.ChangePasswordRequest{
		UserID:          id.String(),
		CurrentPassword: "old secret",
		NewPassword:     "new secret",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	u, err := users.Get(t.Context(), id)
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword(u.PasswordHash(), []byte("new secret")))
}

func TestPasswordServer_ChangePassword_WrongCurrentPassword(t *testing.T) {
	server, id, users := newServerWithUser(t, "old secret")

	rec := postChangePassword(t, server, httpin.ChangePasswordRequest{
		UserID:          id.String(),
		CurrentPassword: "not the password",
		NewPassword:     "new secret",
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp httpin.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "current_password", resp.Field)

	// The stored hash must be untouched.
	u, err := users.Get(t.Context(), id)
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword(u.PasswordHash(), []byte("old secret")))
}

func TestPasswordServer_ChangePassword_UnknownUser(t *testing.T) {
	server, _, _ := newServerWithUser(t, "old secret")

	rec := postChangePassword(t, server, httpin.ChangePasswordRequest{
		UserID:          kernel.NewUUID().String(),
		CurrentPassword: "old secret",
		NewPassword:     "new secret",
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPasswordServer_ChangePassword_BadBody(t *testing.T) {
	server, _, _ := newServerWithUser(t, "old secret")

	req := httptest.NewRequest(http.MethodPost, "/users/password", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	server.ChangePassword(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPasswordServer_ChangePassword_EmptyNewPassword(t *testing.T) {
	server, id, users := newServerWithUser(t, "old secret")

	rec := postChangePassword(t, server, httpin.ChangePasswordRequest{
		UserID:          id.String(),
		CurrentPassword: "old secret",
		NewPassword:     "",
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp httpin.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "new_password", resp.Field)

	u, err := users.Get(t.Context(), id)
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword(u.PasswordHash(), []byte("old secret")))
}

func TestPasswordServer_ChangePassword_InvalidUserID(t *testing.T) {
	server, _, _ := newServerWithUser(t, "old secret")

	rec := postChangePassword(t, server, httpin.ChangePasswordRequest{
		UserID:          "not-a-uuid",
		CurrentPassword: "old secret",
		NewPassword:     "new secret",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp httpin.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user_id", resp.Field)
}
