package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/muratdeveli03/kelime-uygulama/internal/database"
	"github.com/muratdeveli03/kelime-uygulama/pkg/models"
)

func setup(t *testing.T, adminPassword string) *Service {
	t.Helper()
	require.NoError(t, database.Open("sqlite3", ":memory:"))
	t.Cleanup(func() { database.Close() })

	sum := sha256.Sum256([]byte(adminPassword))
	return NewService(hex.EncodeToString(sum[:]), []byte("test-secret"))
}

func TestAuthenticateStudent(t *testing.T) {
	svc := setup(t, "sefer1295")
	_, err := database.NewStudentRepository().Upsert(&models.Student{
		Code: "9011", Name: "Ali ARIKAN", ClassLevel: 9,
	})
	require.NoError(t, err)

	student, err := svc.AuthenticateStudent("9011")
	require.NoError(t, err)
	require.Equal(t, "Ali ARIKAN", student.Name)

	_, err = svc.AuthenticateStudent("9999")
	require.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.AuthenticateStudent("")
	require.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestAuthenticateAdmin(t *testing.T) {
	svc := setup(t, "sefer1295")

	token, err := svc.AuthenticateAdmin("sefer1295")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NoError(t, svc.VerifyAdminToken(token))

	_, err = svc.AuthenticateAdmin("wrongpassword")
	require.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestVerifyAdminToken_RejectsGarbageAndForeignTokens(t *testing.T) {
	svc := setup(t, "sefer1295")

	require.ErrorIs(t, svc.VerifyAdminToken("not-a-token"), models.ErrUnauthorized)

	other := setup(t, "sefer1295")
	other.jwtSecret = []byte("different-secret")
	foreign, err := other.AuthenticateAdmin("sefer1295")
	require.NoError(t, err)
	require.ErrorIs(t, svc.VerifyAdminToken(foreign), models.ErrUnauthorized)
}
