package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/whymsicalc/ratings/internal/models"
)

func TestUserListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rd, flashes := newTestRenderer(t, ctrl)
	flashes.EXPECT().PopFlashes(gomock.Any(), gomock.Any()).Return(nil, nil)

	svc := NewMockUserLister(ctrl)
	svc.EXPECT().ListUsers(gomock.Any()).Return([]models.UserDB{
		{UserID: 1, Email: "alice@example.com"},
		{UserID: 2, Email: "bob@example.com"},
	}, nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/users", nil), "sid-1", 0)
	rr := httptest.NewRecorder()
	NewUserListHandler(rd, svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "alice@example.com")
	assert.Contains(t, rr.Body.String(), "bob@example.com")
	assert.Contains(t, rr.Body.String(), `href="/users/2"`)
}

func TestUserListHandler_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rd, flashes := newTestRenderer(t, ctrl)
	flashes.EXPECT().PopFlashes(gomock.Any(), gomock.Any()).Return(nil, nil)

	svc := NewMockUserLister(ctrl)
	svc.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/users", nil), "sid-1", 0)
	rr := httptest.NewRecorder()
	NewUserListHandler(rd, svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "No users registered yet.")
}

func TestUserListHandler_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rd, _ := newTestRenderer(t, ctrl)

	svc := NewMockUserLister(ctrl)
	svc.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("db down"))

	req := withSession(httptest.NewRequest(http.MethodGet, "/users", nil), "sid-1", 0)
	rr := httptest.NewRecorder()
	NewUserListHandler(rd, svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestUserProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rd, flashes := newTestRenderer(t, ctrl)
	flashes.EXPECT().PopFlashes(gomock.Any(), gomock.Any()).Return(nil, nil)

	users := NewMockUserGetter(ctrl)
	ratings := NewMockUserRatingsLister(ctrl)

	users.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.UserDB{
		UserID:    1,
		Email:     "alice@example.com",
		CreatedAt: time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
	}, nil)
	ratings.EXPECT().ListForUser(gomock.Any(), int64(1)).Return([]models.RatingDB{
		{UserID: 1, MovieID: 3, Score: 4},
	}, nil)

	router := chi.NewRouter()
	router.Get("/users/{userID}", NewUserProfileHandler(rd, users, ratings))

	req := withSession(httptest.NewRequest(http.MethodGet, "/users/1", nil), "sid-1", 0)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "alice@example.com")
	assert.Contains(t, rr.Body.String(), "Mar 14, 2026")
	assert.Contains(t, rr.Body.String(), "Movie #3")
}

func TestUserProfileHandler_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rd, flashes := newTestRenderer(t, ctrl)
	flashes.EXPECT().PopFlashes(gomock.Any(), gomock.Any()).Return(nil, nil)

	users := NewMockUserGetter(ctrl)
	ratings := NewMockUserRatingsLister(ctrl)

	users.EXPECT().GetUser(gomock.Any(), int64(99)).Return(nil, nil)

	router := chi.NewRouter()
	router.Get("/users/{userID}", NewUserProfileHandler(rd, users, ratings))

	req := withSession(httptest.NewRequest(http.MethodGet, "/users/99", nil), "sid-1", 0)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	// An absent user is a page, not an error.
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "User not found")
}

func TestUserProfileHandler_MalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rd, flashes := newTestRenderer(t, ctrl)
	flashes.EXPECT().PopFlashes(gomock.Any(), gomock.Any()).Return(nil, nil)

	users := NewMockUserGetter(ctrl)
	ratings := NewMockUserRatingsLister(ctrl)

	router := chi.NewRouter()
	router.Get("/users/{userID}", NewUserProfileHandler(rd, users, ratings))

	req := withSession(httptest.NewRequest(http.MethodGet, "/users/alice", nil), "sid-1", 0)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "User not found")
}
