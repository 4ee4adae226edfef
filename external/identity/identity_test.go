package identity

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/RijanKanxo/travel-App/store"
)

type IdentityTestSuite struct {
	suite.Suite
	key      *rsa.PrivateKey
	provider *JWTProvider
}

func (s *IdentityTestSuite) SetupSuite() {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	s.Require().NoError(err)
	s.key = key
}

func (s *IdentityTestSuite) SetupTest() {
	s.provider = NewJWTProvider(store.NewMemoryKeyValueStore(), s.key, time.Hour)
}

func (s *IdentityTestSuite) TestCreateUser() {
	user, err := s.provider.CreateUser("Maya@Example.com", "secret123", map[string]interface{}{
		"name": "Maya",
	})
	s.NoError(err)
	s.NotEmpty(user.ID)
	// emails are stored lowercased
	s.Equal("maya@example.com", user.Email)
	s.Equal("Maya", user.Metadata["name"])
}

func (s *IdentityTestSuite) TestCreateUserEmailTaken() {
	_, err := s.provider.CreateUser("maya@example.com", "secret123", nil)
	s.NoError(err)

	_, err = s.provider.CreateUser(" MAYA@example.com ", "another", nil)
	s.Equal(ErrEmailTaken, err)
}

func (s *IdentityTestSuite) TestAuthenticate() {
	created, err := s.provider.CreateUser("maya@example.com", "secret123", nil)
	s.NoError(err)

	token, user, err := s.provider.Authenticate("maya@example.com", "secret123")
	s.NoError(err)
	s.NotEmpty(token)
	s.Equal(created.ID, user.ID)
}

func (s *IdentityTestSuite) TestAuthenticateWrongPassword() {
	_, err := s.provider.CreateUser("maya@example.com", "secret123", nil)
	s.NoError(err)

	_, _, err = s.provider.Authenticate("maya@example.com", "wrong")
	s.Equal(ErrInvalidCredentials, err)
}

func (s *IdentityTestSuite) TestAuthenticateUnknownEmail() {
	_, _, err := s.provider.Authenticate("nobody@example.com", "secret123")
	s.Equal(ErrInvalidCredentials, err)
}

func (s *IdentityTestSuite) TestVerifyTokenRoundtrip() {
	created, err := s.provider.CreateUser("maya@example.com", "secret123", map[string]interface{}{
		"user_type": "traveler",
	})
	s.NoError(err)

	token, _, err := s.provider.Authenticate("maya@example.com", "secret123")
	s.NoError(err)

	user, err := s.provider.VerifyToken(token)
	s.NoError(err)
	s.Equal(created.ID, user.ID)
	s.Equal("traveler", user.Metadata["user_type"])
}

func (s *IdentityTestSuite) TestVerifyTokenGarbage() {
	_, err := s.provider.VerifyToken("not-a-token")
	s.Equal(ErrInvalidToken, err)
}

func (s *IdentityTestSuite) TestVerifyExpiredToken() {
	kv := store.NewMemoryKeyValueStore()
	shortLived := &JWTProvider{kv: kv, jwtPrivateKey: s.key, tokenLifetime: -time.Minute}

	_, err := shortLived.CreateUser("maya@example.com", "secret123", nil)
	s.NoError(err)

	token, _, err := shortLived.Authenticate("maya@example.com", "secret123")
	s.NoError(err)

	_, err = shortLived.VerifyToken(token)
	s.Equal(ErrInvalidToken, err)
}

func (s *IdentityTestSuite) TestVerifyTokenDeletedUser() {
	kv := store.NewMemoryKeyValueStore()
	provider := NewJWTProvider(kv, s.key, time.Hour)

	user, err := provider.CreateUser("maya@example.com", "secret123", nil)
	s.NoError(err)

	token, _, err := provider.Authenticate("maya@example.com", "secret123")
	s.NoError(err)

	s.NoError(kv.Delete(context.Background(), userKeyPrefix+user.ID))

	_, err = provider.VerifyToken(token)
	s.Equal(ErrInvalidToken, err)
}

func TestIdentityTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityTestSuite))
}
