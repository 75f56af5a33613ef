package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "fleet-tracker-test"
	testSignKey = "test-sign-key"
	testEmail   = "c@x.com"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testEmail, time.Hour, testSignKey)

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, testEmail, token.Email)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		email    string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", email: testEmail, duration: time.Hour, signKey: testSignKey},
		{name: "empty email", issuer: testIssuer, duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, email: testEmail, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, email: testEmail, duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.email, tt.duration, tt.signKey)
			require.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testEmail, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)

	require.NoError(t, err)
	assert.Equal(t, testEmail, parsed.Email)
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testEmail, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "other-key", testIssuer)

	require.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testEmail, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, "another-issuer")

	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testEmail, -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)

	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Tampered(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testEmail, time.Hour, testSignKey)
	require.NoError(t, err)

	tampered := issued.SignedString[:len(issued.SignedString)-2] + "xx"
	_, err = ValidateAndParseJWTToken(tampered, testSignKey, testIssuer)

	require.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing token", header: "Bearer", wantErr: true},
		{name: "empty header", header: "", wantErr: true},
		{name: "empty token part", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEmailFromJWT(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testEmail, time.Hour, testSignKey)
	require.NoError(t, err)

	email, err := ParseEmailFromJWT(issued.SignedString)

	require.NoError(t, err)
	assert.Equal(t, testEmail, email)
}

func TestParseEmailFromJWT_Garbage(t *testing.T) {
	_, err := ParseEmailFromJWT("not-a-jwt")
	require.Error(t, err)
}
