package identity

import (
	"context"
	"crypto/md5"
	"crypto/rsa"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/RijanKanxo/travel-App/store"
)

const (
	userKeyPrefix  = "auth_user:"
	emailKeyPrefix = "auth_email:"

	defaultTimeout = 5 * time.Second
)

var (
	ErrEmailTaken         = fmt.Errorf("this email has already been registered")
	ErrInvalidCredentials = fmt.Errorf("invalid email or password")
	ErrInvalidToken       = fmt.Errorf("invalid or expired token")
)

// User is the identity handed to API handlers after a successful token
// check. Metadata carries the signup attributes verbatim.
type User struct {
	ID        string                 `json:"id"`
	Email     string                 `json:"email"`
	Metadata  map[string]interface{} `json:"user_metadata"`
	CreatedAt time.Time              `json:"created_at"`
}

// Provider issues and validates bearer tokens and keeps user records.
type Provider interface {
	CreateUser(email, password string, metadata map[string]interface{}) (*User, error)
	Authenticate(email, password string) (string, *User, error)
	VerifyToken(tokenString string) (*User, error)
}

// authUser is the stored user record. The password hash never leaves this
// package.
type authUser struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	PasswordHash string                 `json:"password_hash"`
	Metadata     map[string]interface{} `json:"metadata"`
	CreatedAt    time.Time              `json:"created_at"`
}

// emailPointer maps a lowercased email to the owning user id, standing in
// for a uniqueness constraint the key-value store does not offer.
type emailPointer struct {
	UserID string `json:"user_id"`
}

// JWTProvider is a Provider keeping users in the key-value store and
// signing RS256 bearer tokens.
type JWTProvider struct {
	kv            store.KeyValueStore
	jwtPrivateKey *rsa.PrivateKey
	tokenLifetime time.Duration
}

func NewJWTProvider(kv store.KeyValueStore, jwtPrivateKey *rsa.PrivateKey, tokenLifetime time.Duration) *JWTProvider {
	if tokenLifetime <= 0 {
		tokenLifetime = 24 * time.Hour
	}

	return &JWTProvider{
		kv:            kv,
		jwtPrivateKey: jwtPrivateKey,
		tokenLifetime: tokenLifetime,
	}
}

// CreateUser registers a new user with a bcrypt-hashed password. Email
// confirmation is implicit; no verification mail is sent.
func (p *JWTProvider) CreateUser(email, password string, metadata map[string]interface{}) (*User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	email = normalizeEmail(email)

	var pointer emailPointer
	err := p.kv.Get(ctx, emailKeyPrefix+email, &pointer)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if err != store.ErrKeyNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := authUser{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Metadata:     metadata,
		CreatedAt:    time.Now().UTC(),
	}

	if err := p.kv.Set(ctx, userKeyPrefix+user.ID, user); err != nil {
		return nil, err
	}
	if err := p.kv.Set(ctx, emailKeyPrefix+email, emailPointer{UserID: user.ID}); err != nil {
		return nil, err
	}

	return user.public(), nil
}

// Authenticate checks the password of an email and returns a fresh bearer
// token together with the user identity.
func (p *JWTProvider) Authenticate(email, password string) (string, *User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	email = normalizeEmail(email)

	var pointer emailPointer
	if err := p.kv.Get(ctx, emailKeyPrefix+email, &pointer); err != nil {
		if err == store.ErrKeyNotFound {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	var user authUser
	if err := p.kv.Get(ctx, userKeyPrefix+pointer.UserID, &user); err != nil {
		if err == store.ErrKeyNotFound {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := p.issueToken(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user.public(), nil
}

// VerifyToken validates a bearer token and resolves the user it was issued
// for. Expired tokens, tokens signed with another method and tokens of
// deleted users all fail with ErrInvalidToken.
func (p *JWTProvider) VerifyToken(tokenString string) (*User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return &p.jwtPrivateKey.PublicKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	var user authUser
	if err := p.kv.Get(ctx, userKeyPrefix+claims.Subject, &user); err != nil {
		if err == store.ErrKeyNotFound {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return user.public(), nil
}

// issueToken signs a RS256 JWT for a user id. The issuer is derived from
// the signing key so tokens of a rotated key are recognizably foreign.
func (p *JWTProvider) issueToken(userID string) (string, error) {
	now := time.Now()

	pubKeyMd5sum := md5.Sum(p.jwtPrivateKey.PublicKey.N.Bytes())
	clientID := base64.StdEncoding.EncodeToString(pubKeyMd5sum[:])

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.StandardClaims{
		Issuer:    clientID,
		Subject:   userID,
		ExpiresAt: now.Add(p.tokenLifetime).Unix(),
		IssuedAt:  now.Unix(),
		Id:        uuid.New().String(),
		Audience:  "write",
	})

	return token.SignedString(p.jwtPrivateKey)
}

func (u authUser) public() *User {
	return &User{
		ID:        u.ID,
		Email:     u.Email,
		Metadata:  u.Metadata,
		CreatedAt: u.CreatedAt,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
