// Package authgw wraps Firebase Authentication for the API layer: account
// creation, password sign-in through the Identity Toolkit REST endpoint,
// ID-token verification and profile bootstrap. Handlers talk to this gateway
// instead of the Firebase SDK directly so auth failures come back as typed
// errors rather than SDK internals.
package authgw

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"

	"github.com/elynrose/gpt-cells-app-sub001/internal/core"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// Custom errors for the auth gateway
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserDisabled       = errors.New("user account is disabled")
)

const (
	defaultIdentityEndpoint = "https://identitytoolkit.googleapis.com/v1"
	signInTimeout           = 15 * time.Second
)

// Session is the result of a successful sign-in.
type Session struct {
	User         *models.User `json:"user"`
	IDToken      string       `json:"idToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int64        `json:"expiresIn"`
}

// Gateway bridges the HTTP layer and Firebase Authentication.
type Gateway struct {
	authClient *auth.Client
	users      core.UserService
	webAPIKey  string
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// GatewayConfig carries the dependencies for NewGateway.
type GatewayConfig struct {
	AuthClient *auth.Client
	Users      core.UserService
	// WebAPIKey is the Firebase web API key used for the password sign-in
	// REST call; the Admin SDK has no password verification of its own.
	WebAPIKey string
	// Endpoint overrides the Identity Toolkit base URL. Empty selects the
	// production endpoint.
	Endpoint string
	Logger   *zap.Logger
}

// NewGateway creates a new auth Gateway instance.
func NewGateway(cfg GatewayConfig) *Gateway {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultIdentityEndpoint
	}
	return &Gateway{
		authClient: cfg.AuthClient,
		users:      cfg.Users,
		webAPIKey:  cfg.WebAPIKey,
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		httpClient: &http.Client{Timeout: signInTimeout},
		logger:     cfg.Logger,
	}
}

// SignUp creates a Firebase account with the given credentials and bootstraps
// the matching profile document with default role and tier.
func (g *Gateway) SignUp(ctx context.Context, email, password, displayName string) (*models.User, error) {
	params := (&auth.UserToCreate{}).Email(email).Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	record, err := g.authClient.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, fmt.Errorf("%w: %s", ErrEmailExists, email)
		}
		return nil, fmt.Errorf("failed to create auth account: %w", err)
	}

	user, _, err := g.users.GetOrCreate(ctx, record.UID, email, displayName)
	if err != nil {
		// The auth account exists but the profile write failed; a later
		// sign-in retries the profile bootstrap.
		return nil, fmt.Errorf("account created but profile bootstrap failed: %w", err)
	}
	return user, nil
}

// SignIn exchanges an email/password pair for ID and refresh tokens via the
// Identity Toolkit REST API, then ensures the profile document exists.
func (g *Gateway) SignIn(ctx context.Context, email, password string) (*Session, error) {
	reqBody, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode sign-in request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/accounts:signInWithPassword?key=%s", g.endpoint, url.QueryEscape(g.webAPIKey))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to build sign-in request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sign-in request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sign-in response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, g.mapSignInError(resp.StatusCode, body)
	}

	var signIn signInResponse
	if err := json.Unmarshal(body, &signIn); err != nil {
		return nil, fmt.Errorf("failed to decode sign-in response: %w", err)
	}

	user, _, err := g.users.GetOrCreate(ctx, signIn.LocalID, signIn.Email, signIn.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("signed in but profile bootstrap failed: %w", err)
	}

	expiresIn, _ := strconv.ParseInt(signIn.ExpiresIn, 10, 64)
	return &Session{
		User:         user,
		IDToken:      signIn.IDToken,
		RefreshToken: signIn.RefreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}

// SessionFromToken verifies a client-obtained ID token (the federated popup
// flow) and ensures the profile document exists. The bool reports whether a
// profile was created.
func (g *Gateway) SessionFromToken(ctx context.Context, idToken string) (*models.User, bool, error) {
	token, err := g.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	email, _ := token.Claims["email"].(string)
	displayName, _ := token.Claims["name"].(string)

	user, created, err := g.users.GetOrCreate(ctx, token.UID, email, displayName)
	if err != nil {
		return nil, false, fmt.Errorf("failed to bootstrap profile: %w", err)
	}
	return user, created, nil
}

// CurrentUser verifies an ID token and loads the caller's profile.
func (g *Gateway) CurrentUser(ctx context.Context, idToken string) (*models.User, error) {
	token, err := g.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return g.users.Get(ctx, token.UID)
}

// SignOut revokes the user's refresh tokens. Existing ID tokens stay valid
// until they expire; revocation stops new ones from being minted.
func (g *Gateway) SignOut(ctx context.Context, uid string) error {
	if err := g.authClient.RevokeRefreshTokens(ctx, uid); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	return nil
}

// IsAdmin reports whether the stored profile grants console access. The
// check reads the profile document, never a token claim.
func (g *Gateway) IsAdmin(ctx context.Context, uid string) (bool, error) {
	user, err := g.users.Get(ctx, uid)
	if err != nil {
		return false, err
	}
	return user.HasAdminAccess(), nil
}

// CreateAccount provisions both the auth account and the profile for an
// admin-created user.
func (g *Gateway) CreateAccount(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	params := (&auth.UserToCreate{}).Email(req.Email).Password(req.Password)
	if req.DisplayName != "" {
		params = params.DisplayName(req.DisplayName)
	}

	record, err := g.authClient.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, fmt.Errorf("%w: %s", ErrEmailExists, req.Email)
		}
		return nil, fmt.Errorf("failed to create auth account: %w", err)
	}

	user, err := g.users.Create(ctx, record.UID, req)
	if err != nil {
		return nil, fmt.Errorf("account created but profile write failed: %w", err)
	}
	return user, nil
}

// DeleteAccount removes the auth account and the profile document. A missing
// auth account is tolerated so profile-only records can still be cleaned up.
func (g *Gateway) DeleteAccount(ctx context.Context, uid string) error {
	if err := g.authClient.DeleteUser(ctx, uid); err != nil && !auth.IsUserNotFound(err) {
		return fmt.Errorf("failed to delete auth account: %w", err)
	}
	return g.users.Delete(ctx, uid)
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type identityError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// mapSignInError normalizes Identity Toolkit error codes. Credential
// problems collapse into one sentinel so responses do not reveal whether the
// email is registered.
func (g *Gateway) mapSignInError(status int, body []byte) error {
	var ident identityError
	if err := json.Unmarshal(body, &ident); err != nil || ident.Error.Message == "" {
		return fmt.Errorf("sign-in failed with status %d", status)
	}

	code := ident.Error.Message
	if i := strings.IndexByte(code, ' '); i > 0 {
		// Codes like "TOO_MANY_ATTEMPTS_TRY_LATER : ..." carry a suffix.
		code = code[:i]
	}

	switch code {
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return ErrInvalidCredentials
	case "USER_DISABLED":
		return ErrUserDisabled
	default:
		g.logger.Warn("sign-in rejected by identity provider", zap.String("code", code))
		return fmt.Errorf("sign-in failed: %s", code)
	}
}
