package employee

import (
	"context"
	"testing"

	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/office"
	"github.com/dpkp-bogor/presensi-backend-go/internal/domain/user"
	"github.com/dpkp-bogor/presensi-backend-go/internal/pkg/validator"
	"github.com/dpkp-bogor/presensi-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T) (user.UserService, *memory.UserRepository, string) {
	t.Helper()

	userRepo := memory.NewUserRepository()
	officeRepo := memory.NewOfficeRepository()

	off, err := officeRepo.Create(context.Background(), office.Office{
		Name:         "Kantor Pusat",
		Latitude:     -6.5971,
		Longitude:    106.7891,
		RadiusMeters: 100,
		WorkStart:    "08:00",
		WorkEnd:      "17:00",
	})
	require.NoError(t, err)

	return NewUserService(userRepo, officeRepo), userRepo, off.ID
}

func validCreate(officeID string) user.CreateUserRequest {
	return user.CreateUserRequest{
		NIP:      "199001012015011001",
		Password: "rahasia1",
		FullName: "Budi Santoso",
		Role:     string(user.RoleEmployee),
		Position: "Staf",
		OfficeID: officeID,
	}
}

func TestUserService_CreateUser_HashesPassword(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, officeID := newUserService(t)

	resp, err := svc.CreateUser(ctx, validCreate(officeID))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)

	stored, err := userRepo.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("rahasia1")))
}

func TestUserService_CreateUser_InvalidNIP(t *testing.T) {
	ctx := context.Background()
	svc, _, officeID := newUserService(t)

	for _, nip := range []string{"", "12345", "19900101201501100A", "1990010120150110012"} {
		req := validCreate(officeID)
		req.NIP = nip

		_, err := svc.CreateUser(ctx, req)
		require.Error(t, err, "nip %q should be rejected", nip)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "nip")
	}
}

func TestUserService_CreateUser_DuplicateNIP(t *testing.T) {
	ctx := context.Background()
	svc, _, officeID := newUserService(t)

	_, err := svc.CreateUser(ctx, validCreate(officeID))
	require.NoError(t, err)

	second := validCreate(officeID)
	second.FullName = "Siti Aminah"
	_, err = svc.CreateUser(ctx, second)
	assert.ErrorIs(t, err, user.ErrNIPExists)
}

func TestUserService_CreateUser_UnknownOffice(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newUserService(t)

	_, err := svc.CreateUser(ctx, validCreate("missing-office"))
	assert.ErrorIs(t, err, office.ErrOfficeNotFound)
}

func TestUserService_UpdateUser_ChangePassword(t *testing.T) {
	ctx := context.Background()
	svc, userRepo, officeID := newUserService(t)

	created, err := svc.CreateUser(ctx, validCreate(officeID))
	require.NoError(t, err)

	newPassword := "barubanget"
	_, err = svc.UpdateUser(ctx, user.UpdateUserRequest{ID: created.ID, Password: &newPassword})
	require.NoError(t, err)

	stored, err := userRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(newPassword)))
}

func TestUserService_UpdateUser_PartialFields(t *testing.T) {
	ctx := context.Background()
	svc, _, officeID := newUserService(t)

	created, err := svc.CreateUser(ctx, validCreate(officeID))
	require.NoError(t, err)

	role := string(user.RoleAdmin)
	updated, err := svc.UpdateUser(ctx, user.UpdateUserRequest{ID: created.ID, Role: &role})
	require.NoError(t, err)

	assert.Equal(t, string(user.RoleAdmin), updated.Role)
	// Untouched fields survive.
	assert.Equal(t, created.FullName, updated.FullName)
	assert.Equal(t, created.NIP, updated.NIP)
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	svc, _, officeID := newUserService(t)

	created, err := svc.CreateUser(ctx, validCreate(officeID))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, created.ID))

	_, err = svc.GetUser(ctx, created.ID)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
