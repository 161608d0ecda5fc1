package services

import (
	"fmt"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/research-metadata/catalog-api/internal/dto"
	"github.com/research-metadata/catalog-api/internal/models"
	"github.com/research-metadata/catalog-api/internal/repository"
)

type userStore interface {
	FindAll(repository.ListQuery) ([]models.User, error)
	FindByID(uint) (*models.User, error)
	FindByEmail(string) (*models.User, error)
	Create(*models.User) error
	Update(uint, map[string]any) (*models.User, error)
	Delete(uint) error
}

type UserService struct {
	repo userStore
}

func NewUserService(repo userStore) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) FindAll(q repository.ListQuery) dto.ServiceResponse[[]models.User] {
	rows, err := s.repo.FindAll(q)
	if err != nil {
		return dto.Internal[[]models.User](fmt.Sprintf("An error occurred while retrieving users: %v", err))
	}
	if len(rows) == 0 {
		return dto.NotFound[[]models.User]("No users found")
	}
	return dto.Success("Users found", rows, http.StatusOK)
}

func (s *UserService) FindByID(id uint) dto.ServiceResponse[*models.User] {
	row, err := s.repo.FindByID(id)
	if err != nil {
		return dto.Internal[*models.User](fmt.Sprintf("An error occurred while retrieving the user: %v", err))
	}
	if row == nil {
		return dto.NotFound[*models.User]("User not found")
	}
	return dto.Success("User found", row, http.StatusOK)
}

func (s *UserService) Create(req *dto.CreateUserRequest) dto.ServiceResponse[*models.User] {
	if f := checkUnique("User", 0, s.emailUnique(req.Email)); f != nil {
		return asFailure[*models.User](f)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.Internal[*models.User](fmt.Sprintf("An error occurred while creating the user: %v", err))
	}

	row := &models.User{
		Email:    req.Email,
		Password: string(hash),
		Name:     req.Name,
	}
	if err := s.repo.Create(row); err != nil {
		return persistFailure[*models.User]("User", "creating", err)
	}
	return dto.Success("User created successfully", row, http.StatusCreated)
}

func (s *UserService) Update(id uint, req *dto.UpdateUserRequest) dto.ServiceResponse[*models.User] {
	fields := map[string]any{}
	var checks []uniqueField
	if req.Email != nil {
		fields["email"] = *req.Email
		checks = append(checks, s.emailUnique(*req.Email))
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return dto.Internal[*models.User](fmt.Sprintf("An error occurred while updating the user: %v", err))
		}
		fields["password"] = string(hash)
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}

	if f := checkUnique("User", id, checks...); f != nil {
		return asFailure[*models.User](f)
	}

	row, err := s.repo.Update(id, fields)
	if err != nil {
		return persistFailure[*models.User]("User", "updating", err)
	}
	if row == nil {
		return dto.NotFound[*models.User]("User not found")
	}
	return dto.Success("User updated successfully", row, http.StatusOK)
}

func (s *UserService) Delete(id uint) dto.ServiceResponse[*models.User] {
	if err := s.repo.Delete(id); err != nil {
		return dto.Internal[*models.User](fmt.Sprintf("An error occurred while deleting the user: %v", err))
	}
	return dto.Success[*models.User]("User deleted successfully", nil, http.StatusOK)
}

func (s *UserService) emailUnique(email string) uniqueField {
	return uniqueField{
		name:     "email",
		value:    email,
		provided: true,
		find: func() (*uint, error) {
			row, err := s.repo.FindByEmail(email)
			if err != nil || row == nil {
				return nil, err
			}
			return &row.ID, nil
		},
	}
}
