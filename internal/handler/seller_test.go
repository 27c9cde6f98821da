package handler

import (
	"net/http"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSellerApply_Success(t *testing.T) {
	mailer := &stubMailer{}
	mux := newTestMux(t, Deps{Mailer: mailer})

	rec := doRequest(mux, http.MethodPost, "/api/seller/apply",
		`{"name":"Jo","shopName":"Jo's Shop","email":"jo@example.com","phone":"123","description":"goods"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Application submitted successfully")
	require.NotNil(t, mailer.sellerApp)
	assert.Equal(t, "Jo's Shop", mailer.sellerApp.ShopName)
}

func TestSellerApply_MailFailure(t *testing.T) {
	mailer := &stubMailer{sellerErr: errors.New("relay down")}
	mux := newTestMux(t, Deps{Mailer: mailer})

	rec := doRequest(mux, http.MethodPost, "/api/seller/apply", `{"name":"Jo"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relay down")
}

func TestSellerApply_BadBody(t *testing.T) {
	mux := newTestMux(t, Deps{})

	rec := doRequest(mux, http.MethodPost, "/api/seller/apply", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTestEmail_Success(t *testing.T) {
	mux := newTestMux(t, Deps{})

	rec := doRequest(mux, http.MethodPost, "/api/test-email",
		`{"to":"x@example.com","subject":"hi","message":"hello"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email sent successfully")
}

func TestTestEmail_MissingRecipient(t *testing.T) {
	mux := newTestMux(t, Deps{})

	rec := doRequest(mux, http.MethodPost, "/api/test-email", `{"subject":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTestEmail_MailFailure(t *testing.T) {
	mailer := &stubMailer{testErr: errors.New("bad credentials")}
	mux := newTestMux(t, Deps{Mailer: mailer})

	rec := doRequest(mux, http.MethodPost, "/api/test-email", `{"to":"x@example.com"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "bad credentials")
}
