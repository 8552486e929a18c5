package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DeviceAuthService emite y valida tokens de dispositivo anonimos. El unico
// endpoint que exige identidad es el envio al leaderboard; registrar un
// dispositivo no pide credenciales.
type DeviceAuthService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// DeviceClaims identifica un dispositivo registrado.
type DeviceClaims struct {
	DeviceID    string `json:"did"`
	DisplayName string `json:"display_name,omitempty"`
	TokenType   string `json:"typ"`
	jwt.RegisteredClaims
}

// DeviceToken es el resultado de un registro de dispositivo.
type DeviceToken struct {
	DeviceID    string `json:"device_id"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

var (
	ErrJWTInvalid = errors.New("jwt invalid")
	ErrJWTExpired = errors.New("jwt expired")
)

func NewDeviceAuthService(secret string, ttl time.Duration) *DeviceAuthService {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &DeviceAuthService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "critiquelab",
	}
}

// Register crea un dispositivo nuevo con id fresco y devuelve su token.
func (s *DeviceAuthService) Register(displayName string) (DeviceToken, error) {
	if len(s.secret) == 0 {
		return DeviceToken{}, ErrJWTInvalid
	}
	now := time.Now().UTC()
	deviceID := uuid.NewString()

	claims := DeviceClaims{
		DeviceID:    deviceID,
		DisplayName: strings.TrimSpace(displayName),
		TokenType:   "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   deviceID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return DeviceToken{}, err
	}
	return DeviceToken{
		DeviceID:    deviceID,
		AccessToken: signed,
		ExpiresIn:   int64(s.ttl.Seconds()),
	}, nil
}

// ParseAccessToken valida firma, vigencia y tipo del token.
func (s *DeviceAuthService) ParseAccessToken(accessToken string) (DeviceClaims, error) {
	if len(s.secret) == 0 || strings.TrimSpace(accessToken) == "" {
		return DeviceClaims{}, ErrJWTInvalid
	}

	var claims DeviceClaims
	token, err := jwt.ParseWithClaims(accessToken, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrJWTInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return DeviceClaims{}, ErrJWTExpired
		}
		return DeviceClaims{}, ErrJWTInvalid
	}
	if !token.Valid || claims.TokenType != "access" || claims.DeviceID == "" {
		return DeviceClaims{}, ErrJWTInvalid
	}
	return claims, nil
}
