package rest

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/kekechi03/ero/config"
	"github.com/kekechi03/ero/internal/model"
	"github.com/kekechi03/ero/util/values"
	"github.com/pashagolub/pgxmock/v4"
)

func testAPI() *API {
	return &API{
		Config: &config.Config{
			JwtSecret:     "test-access-secret",
			JwtExpires:    "15m",
			RefreshSecret: "test-refresh-secret",
			RefreshExpiry: "720h",
		},
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := hashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hashPassword returned error %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("password stored in the clear")
	}

	if err := checkPassword(hash, "correct horse battery staple"); err != nil {
		t.Errorf("checkPassword rejected the right password: %v", err)
	}
	if err := checkPassword(hash, "wrong password"); err == nil {
		t.Error("checkPassword accepted the wrong password")
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	api := testAPI()

	token, _, err := api.createToken("6b9f66d5-3bf1-4f57-a3ea-8a54f27e0a10")
	if err != nil {
		t.Fatalf("createToken returned error %v", err)
	}

	claims, err := api.verifyToken(token, false)
	if err != nil {
		t.Fatalf("verifyToken returned error %v", err)
	}
	if claims.UserID != "6b9f66d5-3bf1-4f57-a3ea-8a54f27e0a10" {
		t.Errorf("UserID = %q; want the subject it was minted for", claims.UserID)
	}
	if claims.Type != "access" {
		t.Errorf("Type = %q; want access", claims.Type)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	api := testAPI()

	token, _, err := api.createRefreshToken("6b9f66d5-3bf1-4f57-a3ea-8a54f27e0a10")
	if err != nil {
		t.Fatalf("createRefreshToken returned error %v", err)
	}

	claims, err := api.verifyToken(token, true)
	if err != nil {
		t.Fatalf("verifyToken returned error %v", err)
	}
	if claims.Type != "refresh" {
		t.Errorf("Type = %q; want refresh", claims.Type)
	}
}

func TestTokenTypeMismatchRejected(t *testing.T) {
	api := testAPI()

	access, _, err := api.createToken("6b9f66d5-3bf1-4f57-a3ea-8a54f27e0a10")
	if err != nil {
		t.Fatalf("createToken returned error %v", err)
	}
	refresh, _, err := api.createRefreshToken("6b9f66d5-3bf1-4f57-a3ea-8a54f27e0a10")
	if err != nil {
		t.Fatalf("createRefreshToken returned error %v", err)
	}

	if _, err := api.verifyToken(access, true); err == nil {
		t.Error("access token accepted as refresh token")
	}
	if _, err := api.verifyToken(refresh, false); err == nil {
		t.Error("refresh token accepted as access token")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	api := testAPI()

	token, _, err := api.createToken("6b9f66d5-3bf1-4f57-a3ea-8a54f27e0a10")
	if err != nil {
		t.Fatalf("createToken returned error %v", err)
	}

	api.Config.JwtSecret = "a different secret"
	if _, err := api.verifyToken(token, false); err == nil {
		t.Error("token verified against the wrong secret")
	}
}

func TestTokenWithoutExpiryRejected(t *testing.T) {
	api := testAPI()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "6b9f66d5-3bf1-4f57-a3ea-8a54f27e0a10",
		"iat": time.Now().Unix(),
		"typ": "access",
	})
	signed, err := token.SignedString([]byte(api.Config.JwtSecret))
	if err != nil {
		t.Fatalf("SignedString returned error %v", err)
	}

	if _, err := api.verifyToken(signed, false); err == nil {
		t.Error("token without an expiry claim verified")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	api, mock := newMockAPI(t)
	api.Config = testAPI().Config

	mock.ExpectQuery("FROM users WHERE username").
		WithArgs("kekechi").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("user@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	_, status, _, err := api.CreateNewUser(context.Background(), model.RegisterRequest{
		Username: "kekechi",
		Email:    "user@example.com",
		Password: "longenough1",
	})
	if err != nil {
		t.Fatalf("CreateNewUser returned error %v", err)
	}
	if status != values.Conflict {
		t.Errorf("status = %q; want %q", status, values.Conflict)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
