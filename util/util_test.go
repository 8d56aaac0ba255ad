package util

import (
	"net/http"
	"testing"

	"github.com/kekechi03/ero/util/values"
)

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		name     string
		status   string
		expected int
	}{
		{"Success", values.Success, http.StatusOK},
		{"Created", values.Created, http.StatusCreated},
		{"Error", values.Error, http.StatusInternalServerError},
		{"BadRequestBody", values.BadRequestBody, http.StatusBadRequest},
		{"Unprocessable", values.Unprocessable, http.StatusUnprocessableEntity},
		{"NotAllowed", values.NotAllowed, http.StatusForbidden},
		{"Conflict", values.Conflict, http.StatusConflict},
		{"NotFound", values.NotFound, http.StatusNotFound},
		{"NotAuthorised", values.NotAuthorised, http.StatusUnauthorized},
		{"TokenExpired", values.TokenExpired, http.StatusUnauthorized},
		{"NoneAvailable is not an error", values.NoneAvailable, http.StatusOK},
		{"Unknown defaults to OK", "anything-else", http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusCode(tc.status); got != tc.expected {
				t.Errorf("StatusCode(%q) = %d; want %d", tc.status, got, tc.expected)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	if err := ValidEmail("user@example.com"); err != nil {
		t.Errorf("ValidEmail rejected a valid address: %v", err)
	}
	if err := ValidEmail(""); err == nil {
		t.Error("ValidEmail accepted an empty address")
	}
	if err := ValidEmail("not-an-email"); err == nil {
		t.Error("ValidEmail accepted a malformed address")
	}
}

func TestRandomString(t *testing.T) {
	pool := "abcdef012345"
	s := RandomString(16, pool)
	if len(s) != 16 {
		t.Fatalf("len = %d; want 16", len(s))
	}
	for _, c := range s {
		found := false
		for _, p := range pool {
			if c == p {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("character %q not in pool", c)
		}
	}
}

func TestStringToUUID(t *testing.T) {
	id := GenerateUUID()
	parsed, err := StringToUUID(id.String())
	if err != nil {
		t.Fatalf("StringToUUID returned error %v", err)
	}
	if parsed != id {
		t.Errorf("parsed %v; want %v", parsed, id)
	}

	if _, err := StringToUUID("not-a-uuid"); err == nil {
		t.Error("StringToUUID accepted garbage")
	}
}

func TestValidateUsername(t *testing.T) {
	type form struct {
		Username string `validate:"required,username"`
	}

	testCases := []struct {
		name     string
		username string
		valid    bool
	}{
		{"simple", "kekechi", true},
		{"with digits and underscore", "user_03", true},
		{"too short", "ab", false},
		{"spaces", "a user", false},
		{"symbols", "user!", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(form{Username: tc.username})
			if tc.valid && err != nil {
				t.Errorf("username %q rejected: %v", tc.username, err)
			}
			if !tc.valid && err == nil {
				t.Errorf("username %q accepted", tc.username)
			}
		})
	}
}
