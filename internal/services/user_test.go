package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/research-metadata/catalog-api/internal/dto"
	"github.com/research-metadata/catalog-api/internal/models"
	"github.com/research-metadata/catalog-api/internal/repository"
)

type stubUserRepo struct {
	rows   []models.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{nextID: 1}
}

func (r *stubUserRepo) FindAll(_ repository.ListQuery) ([]models.User, error) {
	return append([]models.User{}, r.rows...), nil
}

func (r *stubUserRepo) FindByID(id uint) (*models.User, error) {
	for _, row := range r.rows {
		if row.ID == id {
			clone := row
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, row := range r.rows {
		if row.Email == email {
			clone := row
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Create(row *models.User) error {
	row.ID = r.nextID
	r.nextID++
	row.LastUpdate = time.Now()
	r.rows = append(r.rows, *row)
	return nil
}

func (r *stubUserRepo) Update(id uint, fields map[string]any) (*models.User, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			if v, ok := fields["email"].(string); ok {
				r.rows[i].Email = v
			}
			if v, ok := fields["password"].(string); ok {
				r.rows[i].Password = v
			}
			if v, ok := fields["name"].(string); ok {
				r.rows[i].Name = v
			}
			clone := r.rows[i]
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Delete(id uint) error {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestUserCreateHashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	resp := svc.Create(&dto.CreateUserRequest{Email: "jana@example.org", Password: "s3cret", Name: "Jana"})
	require.True(t, resp.Success)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	stored, err := repo.FindByEmail("jana@example.org")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")))
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	svc.Create(&dto.CreateUserRequest{Email: "jana@example.org", Password: "s3cret", Name: "Jana"})
	resp := svc.Create(&dto.CreateUserRequest{Email: "jana@example.org", Password: "other", Name: "Jana II"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "A User with email jana@example.org already exists.", resp.Message)
}

func TestUserUpdateRehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	created := svc.Create(&dto.CreateUserRequest{Email: "jana@example.org", Password: "s3cret", Name: "Jana"})
	require.True(t, created.Success)
	oldHash := created.ResponseObject.Password

	pw := "n3w-secret"
	resp := svc.Update(created.ResponseObject.ID, &dto.UpdateUserRequest{Password: &pw})
	require.True(t, resp.Success)

	stored, _ := repo.FindByID(created.ResponseObject.ID)
	assert.NotEqual(t, oldHash, stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte(pw)))
}
