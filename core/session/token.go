package session

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"github.com/trezcool/scholarsync/core/user"
)

var (
	ErrTokenMalformed = errors.New("invalid token format")
	ErrTokenExpired   = errors.New("token expired")
	ErrUnknownUser    = errors.New("user not found")

	mockHeader    = tokenHeader{Alg: "HS256", Typ: "JWT"}
	mockSignature = "mocksignature"
)

type (
	// Payload is the identity carried by a session token. Exp is in Unix milliseconds.
	Payload struct {
		ID    string    `json:"id"`
		Email string    `json:"email"`
		Role  user.Role `json:"role"`
		Exp   int64     `json:"exp"`
	}

	// Codec turns a Payload into a token string and back.
	// Decode does not check expiry.
	Codec interface {
		Encode(p Payload) (string, error)
		Decode(token string) (Payload, error)
	}

	tokenHeader struct {
		Alg string `json:"alg"`
		Typ string `json:"typ"`
	}
)

// MockCodec builds unsigned, JWT-shaped tokens: three standard base64 segments
// (header, payload and the literal "mocksignature") joined by dots.
type MockCodec struct{}

var _ Codec = MockCodec{}

func (MockCodec) Encode(p Payload) (string, error) {
	header, err := json.Marshal(mockHeader)
	if err != nil {
		return "", errors.Wrap(err, "marshalling header")
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return "", errors.Wrap(err, "marshalling payload")
	}
	enc := base64.StdEncoding
	return strings.Join([]string{
		enc.EncodeToString(header),
		enc.EncodeToString(payload),
		enc.EncodeToString([]byte(mockSignature)),
	}, "."), nil
}

func (MockCodec) Decode(token string) (Payload, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Payload{}, ErrTokenMalformed
	}
	raw, err := decodeSegment(parts[1])
	if err != nil {
		return Payload{}, errors.Wrap(ErrTokenMalformed, err.Error())
	}
	var p Payload
	if err = json.Unmarshal(raw, &p); err != nil {
		return Payload{}, errors.Wrap(ErrTokenMalformed, err.Error())
	}
	return p, nil
}

func decodeSegment(seg string) ([]byte, error) {
	if b, err := base64.StdEncoding.DecodeString(seg); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(seg)
}

// SignedCodec builds HS256-signed JWTs carrying the same Payload.
type SignedCodec struct {
	key []byte
}

var _ Codec = (*SignedCodec)(nil)

func NewSignedCodec(secretKey string) *SignedCodec {
	return &SignedCodec{key: []byte(secretKey)}
}

// signedClaims leaves expiry to the Store.
type signedClaims struct {
	Payload
}

func (signedClaims) Valid() error { return nil }

func (c *SignedCodec) Encode(p Payload) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, signedClaims{p})
	ss, err := token.SignedString(c.key)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

func (c *SignedCodec) Decode(token string) (Payload, error) {
	if len(strings.Split(token, ".")) != 3 {
		return Payload{}, ErrTokenMalformed
	}
	claims := new(signedClaims)
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.key, nil
	})
	if err != nil {
		return Payload{}, errors.Wrap(ErrTokenMalformed, err.Error())
	}
	return claims.Payload, nil
}

// NewCodec returns the Codec selected by `signing` ("mock" or "hs256").
func NewCodec(signing, secretKey string) Codec {
	if strings.EqualFold(signing, "hs256") {
		return NewSignedCodec(secretKey)
	}
	return MockCodec{}
}
