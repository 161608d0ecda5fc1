package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/research-metadata/catalog-api/internal/dto"
	"github.com/research-metadata/catalog-api/internal/metrics"
	"github.com/research-metadata/catalog-api/internal/repository"
)

// CRUDHandler adapts one entity service to the five standard routes. C and U
// are the create/update request types, T the entity model.
type CRUDHandler[C any, U any, T any] struct {
	entity string
	list   func(repository.ListQuery) dto.ServiceResponse[[]T]
	get    func(uint) dto.ServiceResponse[*T]
	create func(*C) dto.ServiceResponse[*T]
	update func(uint, *U) dto.ServiceResponse[*T]
	delete func(uint) dto.ServiceResponse[*T]
}

func NewCRUDHandler[C any, U any, T any](
	entity string,
	list func(repository.ListQuery) dto.ServiceResponse[[]T],
	get func(uint) dto.ServiceResponse[*T],
	create func(*C) dto.ServiceResponse[*T],
	update func(uint, *U) dto.ServiceResponse[*T],
	del func(uint) dto.ServiceResponse[*T],
) *CRUDHandler[C, U, T] {
	return &CRUDHandler[C, U, T]{
		entity: entity,
		list:   list,
		get:    get,
		create: create,
		update: update,
		delete: del,
	}
}

// Register mounts the standard routes on the given group.
func (h *CRUDHandler[C, U, T]) Register(r fiber.Router) {
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *CRUDHandler[C, U, T]) List(c *fiber.Ctx) error {
	q := repository.ListQuery{
		SearchField: c.Query("searchField"),
		SearchValue: c.Query("searchValue"),
		SortBy:      c.Query("sortBy"),
		SortOrder:   c.Query("sortOrder", "asc"),
	}
	return respond(c, h.list(q))
}

func (h *CRUDHandler[C, U, T]) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respond(c, dto.BadRequest[*T]("Invalid id parameter"))
	}
	return respond(c, h.get(id))
}

func (h *CRUDHandler[C, U, T]) Create(c *fiber.Ctx) error {
	var req C
	if err := c.BodyParser(&req); err != nil {
		return respond(c, dto.BadRequest[*T]("Invalid request body"))
	}
	if err := validateStruct(&req); err != nil {
		return respond(c, dto.BadRequest[*T](err.Error()))
	}
	resp := h.create(&req)
	metrics.RecordWrite(h.entity, "create", resp.Success)
	return respond(c, resp)
}

func (h *CRUDHandler[C, U, T]) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respond(c, dto.BadRequest[*T]("Invalid id parameter"))
	}
	var req U
	if err := c.BodyParser(&req); err != nil {
		return respond(c, dto.BadRequest[*T]("Invalid request body"))
	}
	if err := validateStruct(&req); err != nil {
		return respond(c, dto.BadRequest[*T](err.Error()))
	}
	resp := h.update(id, &req)
	metrics.RecordWrite(h.entity, "update", resp.Success)
	return respond(c, resp)
}

func (h *CRUDHandler[C, U, T]) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respond(c, dto.BadRequest[*T]("Invalid id parameter"))
	}
	resp := h.delete(id)
	metrics.RecordWrite(h.entity, "delete", resp.Success)
	return respond(c, resp)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func respond[T any](c *fiber.Ctx, resp dto.ServiceResponse[T]) error {
	return c.Status(resp.StatusCode).JSON(resp)
}
