package token

import (
	"testing"
	"time"

	autherrors "go-outtime/internal/auth/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var subject = Subject{UserID: "u-1", CompanyID: "c-1", Role: "OWNER"}

func TestIssuer_RoundTrip(t *testing.T) {
	iss := NewIssuer(Config{Secret: "s3cret"})

	access, refresh, err := iss.Pair(subject)
	require.NoError(t, err)

	claims, err := iss.Parse(access, TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "c-1", claims.CompanyID)
	assert.Equal(t, "OWNER", claims.Role)

	_, err = iss.Parse(refresh, TypeRefresh)
	assert.NoError(t, err)
}

func TestParse_RejectsWrongType(t *testing.T) {
	iss := NewIssuer(Config{Secret: "s3cret"})
	refresh, err := iss.Issue(subject, TypeRefresh)
	require.NoError(t, err)

	_, err = iss.Parse(refresh, TypeAccess)
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestParse_RejectsOtherSecret(t *testing.T) {
	access, err := NewIssuer(Config{Secret: "a"}).Issue(subject, TypeAccess)
	require.NoError(t, err)

	_, err = Parse("b", access, TypeAccess)
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	iss := NewIssuer(Config{Secret: "s3cret", AccessTTL: time.Minute})
	iss.now = func() time.Time { return time.Now().Add(-time.Hour) }

	access, err := iss.Issue(subject, TypeAccess)
	require.NoError(t, err)

	_, err = iss.Parse(access, TypeAccess)
	assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
}
