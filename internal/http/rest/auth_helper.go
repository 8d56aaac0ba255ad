package rest

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/kekechi03/ero/internal/model"
	"github.com/kekechi03/ero/util"
	"github.com/kekechi03/ero/util/values"
	"golang.org/x/crypto/bcrypt"
)

type TokenClaims struct {
	UserID string `json:"sub"`
	Type   string `json:"typ"`
	Exp    int64  `json:"exp"`
}

// Simplified token creation
func (api *API) createToken(id string) (string, time.Time, error) {
	exp_time, err := time.ParseDuration(api.Config.JwtExpires)
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := time.Now().Add(exp_time)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": id, // subject (user ID)
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
		"typ": "access",
	})

	tokenString, err := token.SignedString([]byte(api.Config.JwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

func (api *API) createRefreshToken(id string) (string, time.Time, error) {
	exp_time, err := time.ParseDuration(api.Config.RefreshExpiry)
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := time.Now().Add(exp_time)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": id, // subject (user ID)
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
		"typ": "refresh",
	})

	tokenString, err := token.SignedString([]byte(api.Config.RefreshSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (api *API) CreateNewUser(ctx context.Context, req model.RegisterRequest) (model.LoginResponse, string, string, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := util.ValidateStruct(req); err != nil {
		return model.LoginResponse{}, values.BadRequestBody, "Invalid registration details", err
	}

	exists, err := api.UsernameExists(ctx, req.Username)
	if err != nil {
		return model.LoginResponse{}, values.Error, "Error checking username", err
	}
	if exists {
		return model.LoginResponse{}, values.Conflict, "Username already taken", nil
	}

	if req.Email != "" {
		taken, err := api.EmailExists(ctx, req.Email)
		if err != nil {
			return model.LoginResponse{}, values.Error, "Error checking email", err
		}
		if taken {
			return model.LoginResponse{}, values.Conflict, "Email already in use", nil
		}
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return model.LoginResponse{}, values.Error, "Error hashing password", err
	}

	user := model.User{
		ID:           util.GenerateUUID(),
		Username:     req.Username,
		PasswordHash: &hash,
		Role:         model.RoleMember,
		AuthProvider: "password",
	}
	if req.Email != "" {
		user.Email = &req.Email
	}

	err = api.CreateNewUserRepo(ctx, user)
	if err != nil {
		return model.LoginResponse{}, values.Error, "Error creating new user", err
	}

	resp, status, message, err := api.issueTokens(user)
	if err != nil {
		return model.LoginResponse{}, status, message, err
	}

	return resp, values.Created, "User created successfully", nil
}

func (api *API) LoginUser(ctx context.Context, req model.LoginRequest) (model.LoginResponse, string, string, error) {
	req.Username = strings.TrimSpace(req.Username)

	if err := util.ValidateStruct(req); err != nil {
		return model.LoginResponse{}, values.BadRequestBody, "Invalid login details", err
	}

	user, err := api.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return model.LoginResponse{}, values.NotAuthorised, "Invalid username or password", err
	}

	if user.PasswordHash == nil {
		return model.LoginResponse{}, values.NotAuthorised, "Invalid username or password", nil
	}
	if err := checkPassword(*user.PasswordHash, req.Password); err != nil {
		return model.LoginResponse{}, values.NotAuthorised, "Invalid username or password", err
	}

	resp, status, message, err := api.issueTokens(user)
	if err != nil {
		return model.LoginResponse{}, status, message, err
	}

	return resp, values.Success, "Login successful", nil
}

func (api *API) RefreshAccessToken(ctx context.Context, req model.RefreshRequest) (model.LoginResponse, string, string, error) {
	claims, err := api.verifyToken(req.RefreshToken, true)
	if err != nil {
		return model.LoginResponse{}, values.NotAuthorised, "Invalid refresh token", err
	}

	user, err := api.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return model.LoginResponse{}, values.NotFound, "User not found", err
	}

	resp, status, message, err := api.issueTokens(user)
	if err != nil {
		return model.LoginResponse{}, status, message, err
	}

	return resp, values.Success, "Token refreshed", nil
}

func (api *API) issueTokens(user model.User) (model.LoginResponse, string, string, error) {
	token, _, err := api.createToken(user.ID.String())
	if err != nil {
		return model.LoginResponse{}, values.Error, values.SystemErr + " [CrTk]", err
	}

	refresh, _, err := api.createRefreshToken(user.ID.String())
	if err != nil {
		return model.LoginResponse{}, values.Error, values.SystemErr + " [CrRt]", err
	}

	return model.LoginResponse{
		User: &model.LoginUserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		},
		Token:        token,
		RefreshToken: refresh,
	}, values.Success, "", nil
}
