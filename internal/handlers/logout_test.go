package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestLogoutHandler(t *testing.T) {
	tests := []struct {
		name   string
		userID int64
	}{
		{name: "logged in user", userID: 7},
		// ClearUser on an anonymous session deletes nothing and succeeds,
		// so the flow is identical.
		{name: "anonymous session", userID: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockSessionEnder(ctrl)
			store.EXPECT().ClearUser(gomock.Any(), "sid-1").Return(nil)
			store.EXPECT().PushFlash(gomock.Any(), "sid-1", "Successfully logged out!").Return(nil)

			req := withSession(httptest.NewRequest(http.MethodGet, "/logout", nil), "sid-1", tt.userID)
			rr := httptest.NewRecorder()
			NewLogoutHandler(store).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusSeeOther, rr.Code)
			assert.Equal(t, "/", rr.Header().Get("Location"))
		})
	}
}

func TestLogoutHandler_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockSessionEnder(ctrl)
	store.EXPECT().ClearUser(gomock.Any(), "sid-1").Return(errors.New("redis down"))

	req := withSession(httptest.NewRequest(http.MethodGet, "/logout", nil), "sid-1", 7)
	rr := httptest.NewRecorder()
	NewLogoutHandler(store).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
