package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/whymsicalc/ratings/internal/jwt"
)

func TestSessionMiddleware_ValidCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener := NewMockSessionTokener(ctrl)
	store := NewMockSessionResolver(ctrl)

	tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("signed-token", nil)
	tokener.EXPECT().GetSessionID(gomock.Any(), "signed-token").Return("sid-1", nil)
	store.EXPECT().User(gomock.Any(), "sid-1").Return(int64(42), nil)

	var gotSID string
	var gotUserID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSID = SessionIDFromContext(r.Context())
		gotUserID = UserIDFromContext(r.Context())
	})

	handler := SessionMiddleware(tokener, store)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "sid-1", gotSID)
	assert.Equal(t, int64(42), gotUserID)

	// Existing session: no new cookie issued.
	assert.Empty(t, rr.Result().Cookies())
}

func TestSessionMiddleware_MissingCookieStartsAnonymousSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener := NewMockSessionTokener(ctrl)
	store := NewMockSessionResolver(ctrl)

	tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("session cookie missing"))
	store.EXPECT().NewSessionID().Return("fresh-sid")
	tokener.EXPECT().Generate(gomock.Any(), "fresh-sid").Return("fresh-token", nil)
	store.EXPECT().User(gomock.Any(), "fresh-sid").Return(int64(0), nil)

	var gotSID string
	var gotUserID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSID = SessionIDFromContext(r.Context())
		gotUserID = UserIDFromContext(r.Context())
	})

	handler := SessionMiddleware(tokener, store)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "fresh-sid", gotSID)
	assert.Equal(t, int64(0), gotUserID)

	cookies := rr.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, jwt.CookieName, cookies[0].Name)
		assert.Equal(t, "fresh-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	}
}

func TestSessionMiddleware_TamperedCookieGetsFreshSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener := NewMockSessionTokener(ctrl)
	store := NewMockSessionResolver(ctrl)

	tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("bad-token", nil)
	tokener.EXPECT().GetSessionID(gomock.Any(), "bad-token").Return("", errors.New("signature is invalid"))
	store.EXPECT().NewSessionID().Return("replacement-sid")
	tokener.EXPECT().Generate(gomock.Any(), "replacement-sid").Return("replacement-token", nil)
	store.EXPECT().User(gomock.Any(), "replacement-sid").Return(int64(0), nil)

	var gotUserID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
	})

	handler := SessionMiddleware(tokener, store)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	// A forged cookie never yields an authenticated identity.
	assert.Equal(t, int64(0), gotUserID)
}

func TestSessionMiddleware_StoreFailureFallsBackToAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener := NewMockSessionTokener(ctrl)
	store := NewMockSessionResolver(ctrl)

	tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("signed-token", nil)
	tokener.EXPECT().GetSessionID(gomock.Any(), "signed-token").Return("sid-1", nil)
	store.EXPECT().User(gomock.Any(), "sid-1").Return(int64(0), errors.New("redis down"))

	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, int64(0), UserIDFromContext(r.Context()))
	})

	handler := SessionMiddleware(tokener, store)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rr.Code)
}
