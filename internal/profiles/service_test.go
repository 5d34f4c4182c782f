package profiles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertFromLoginDefaultsToStudent(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	profile, err := svc.UpsertFromLogin(context.Background(), Profile{
		ID:       "google:1",
		Email:    "ada@campus.test",
		FullName: "Ada Jones",
	})
	require.NoError(t, err)
	assert.Equal(t, RoleStudent, profile.Role)
}

func TestUpsertFromLoginPreservesExistingRole(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	require.NoError(t, repo.Upsert(context.Background(), Profile{
		ID:       "google:1",
		Email:    "counselor@campus.test",
		FullName: "Cara Diaz",
		Role:     RoleCounselor,
	}))

	// A later login must not demote the promoted role.
	profile, err := svc.UpsertFromLogin(context.Background(), Profile{
		ID:       "google:1",
		Email:    "counselor@campus.test",
		FullName: "Cara D. Diaz",
	})
	require.NoError(t, err)
	assert.Equal(t, RoleCounselor, profile.Role)
	assert.Equal(t, "Cara D. Diaz", profile.FullName)
}

func TestUpsertFromLoginRequiresID(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	_, err := svc.UpsertFromLogin(context.Background(), Profile{Email: "x@y.z"})
	assert.Error(t, err)
}

func TestListStudents(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	require.NoError(t, repo.Upsert(context.Background(), Profile{ID: "a", Role: RoleStudent}))
	require.NoError(t, repo.Upsert(context.Background(), Profile{ID: "b", Role: RoleCounselor}))
	require.NoError(t, repo.Upsert(context.Background(), Profile{ID: "c", Role: RoleStudent}))

	students, err := svc.ListStudents(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Len(t, students, 2)
}
