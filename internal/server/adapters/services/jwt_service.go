package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gotodo/internal/server/domain/entities"
	domain "gotodo/internal/server/domain/services"
	svc "gotodo/internal/server/ports/services"
	"gotodo/pkg/logger"
)

// Константы для работы с токенами.
const (
	methodIssueAccessToken    = "IssueAccessToken"
	methodValidateAccessToken = "ValidateAccessToken"

	msgIssuingToken   = "issuing access token"
	msgTokenIssued    = "access token issued"
	msgTokenRejected  = "token rejected"
	msgTokenValidated = "token validated successfully"

	errSigningToken = "error signing token" // #nosec G101 - not a credential

	refreshTokenBytes = 64
)

// ServiceJWT реализует интерфейс TokenService поверх подписанных HMAC-SHA256
// токенов. Настройки неизменяемы после создания; их валидность гарантируется
// конфигурацией при старте процесса.
type ServiceJWT struct {
	secretKey         []byte
	issuer            string
	audience          string
	expiration        time.Duration
	refreshExpiration time.Duration
}

// Claims адаптирует доменные утверждения к формату библиотеки JWT.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// NewJWT создает новый экземпляр сервиса токенов.
func NewJWT(secretKey, issuer, audience string, expiration, refreshExpiration time.Duration) svc.TokenService {
	return &ServiceJWT{
		secretKey:         []byte(secretKey),
		issuer:            issuer,
		audience:          audience,
		expiration:        expiration,
		refreshExpiration: refreshExpiration,
	}
}

// IssueAccessToken выпускает подписанный access токен для пользователя.
// Встроенные утверждения: subject (id пользователя), username, email,
// уникальный идентификатор токена (jti), issued-at и expires-at.
func (s *ServiceJWT) IssueAccessToken(ctx context.Context, user *entities.User) (string, time.Time, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodIssueAccessToken),
		zap.Int64("userID", user.ID),
	)
	log.Debug(ctx, msgIssuingToken)

	now := time.Now()
	expiresAt := now.Add(s.expiration)

	claims := Claims{
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("signing token: %w", domain.ErrTokenGenerationFailed)
	}

	log.Debug(ctx, msgTokenIssued, zap.Time("expiresAt", expiresAt))
	return tokenString, expiresAt, nil
}

// ValidateAccessToken проверяет подпись, издателя, аудиторию и срок действия
// токена. Любая причина отказа схлопывается в единый результат
// domain.ErrInvalidToken: причина неудачи не раскрывается вызывающему.
func (s *ServiceJWT) ValidateAccessToken(ctx context.Context, tokenString string) (*domain.TokenClaims, error) {
	log := logger.Log(ctx).With(zap.String("method", methodValidateAccessToken))

	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(_ *jwt.Token) (interface{}, error) {
			return s.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		log.Debug(ctx, msgTokenRejected)
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgTokenRejected)
		return nil, domain.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		log.Debug(ctx, msgTokenRejected)
		return nil, domain.ErrInvalidToken
	}

	result := &domain.TokenClaims{
		UserID:   userID,
		Username: claims.Username,
		Email:    claims.Email,
		TokenID:  claims.ID,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	log.Debug(ctx, msgTokenValidated, zap.Int64("userID", userID))
	return result, nil
}

// ExtractUserID проверяет токен и возвращает идентификатор пользователя.
func (s *ServiceJWT) ExtractUserID(ctx context.Context, tokenString string) (int64, error) {
	claims, err := s.ValidateAccessToken(ctx, tokenString)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// IsExpired читает срок действия из самого токена, без секретного ключа
// и проверки подписи. Неразбираемый токен или отсутствие срока действия
// трактуются как истекший. Только для информационных целей.
func (s *ServiceJWT) IsExpired(tokenString string) bool {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()

	if _, _, err := parser.ParseUnverified(tokenString, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}

	return !claims.ExpiresAt.Time.After(time.Now())
}

// GenerateRefreshToken генерирует непрозрачный refresh токен с высокой
// энтропией. Его привязка и хранение находятся вне этой подсистемы.
func (s *ServiceJWT) GenerateRefreshToken() (string, time.Time, error) {
	randomBytes := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", time.Time{}, fmt.Errorf("generating refresh token: %w", domain.ErrTokenGenerationFailed)
	}

	expiresAt := time.Now().Add(s.refreshExpiration)
	return base64.StdEncoding.EncodeToString(randomBytes), expiresAt, nil
}
