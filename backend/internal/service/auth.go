package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/forumapi/forum-api/shared/domain"
	"github.com/forumapi/forum-api/shared/errors"
	"github.com/forumapi/forum-api/shared/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, data domain.UserCreationData) (domain.User, error)
	Login(ctx context.Context, creds domain.Credentials) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	// VerifyAvailableUsername fails with a 400 ErrorWithStatusCode when taken.
	VerifyAvailableUsername(ctx context.Context, username domain.Username) error
	SaveUser(ctx context.Context, user domain.User) (domain.User, error)
	// User fails with *errors.NotFoundError when username is unknown.
	User(ctx context.Context, username domain.Username) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

var errInvalidCredentials = &errors.ErrorWithStatusCode{
	Message:    "kredensial yang Anda masukkan salah",
	StatusCode: http.StatusUnauthorized,
}

// Register stores a new user with a bcrypt password hash.
// The returned user never carries the hash.
func (a *Auth) Register(ctx context.Context, data domain.UserCreationData) (domain.User, error) {
	username := strings.TrimSpace(data.Username)
	if err := a.storage.VerifyAvailableUsername(ctx, username); err != nil {
		return domain.User{}, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, err
	}

	user, err := a.storage.SaveUser(ctx, domain.User{
		Username: username,
		Fullname: data.Fullname,
		PassHash: string(passHash),
	})
	if err != nil {
		return domain.User{}, err
	}
	user.PassHash = ""
	logger.Log.Info("user registered", "user_id", user.Id)
	return user, nil
}

// Login checks the credentials and returns an access token.
// Unknown users and wrong passwords produce the same error.
func (a *Auth) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	user, err := a.storage.User(ctx, strings.TrimSpace(creds.Username))
	if err != nil {
		if errors.IsNotFound(err) {
			return "", errInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		logger.Log.Debug("password verification failed", "user_id", user.Id)
		return "", errInvalidCredentials
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", err
	}
	return token, nil
}
