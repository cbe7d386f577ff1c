package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/model"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/repo"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/helper"
)

type AssetService struct {
	assets repo.AssetRepository
}

func NewAssetService(assets repo.AssetRepository) *AssetService {
	return &AssetService{assets: assets}
}

// GET /api/aset
func (s *AssetService) List(c *fiber.Ctx) error {
	search := c.Query("search")

	assets, err := s.assets.FindAll(search)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Gagal mengambil data aset",
		})
	}

	return c.JSON(assets)
}

// GET /api/aset/:id
func (s *AssetService) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "ID aset tidak valid",
		})
	}

	asset, err := s.assets.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Aset tidak ditemukan",
		})
	}

	return c.JSON(asset)
}

// POST /api/aset
func (s *AssetService) Create(c *fiber.Ctx) error {
	var draft model.AssetDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if err := helper.ValidateStruct(draft); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(model.ErrorResponse{
			Success: false,
			Message: helper.FormatValidationErrors(err),
		})
	}

	asset := model.Asset{
		Name:      draft.Name,
		Category:  draft.Category,
		Quantity:  draft.Quantity,
		Condition: draft.Condition,
		Location:  draft.Location,
	}
	if err := s.assets.Create(&asset); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Gagal menambah aset",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(asset)
}

// PUT /api/aset/:id
func (s *AssetService) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "ID aset tidak valid",
		})
	}

	var draft model.AssetDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if err := helper.ValidateStruct(draft); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(model.ErrorResponse{
			Success: false,
			Message: helper.FormatValidationErrors(err),
		})
	}

	asset, err := s.assets.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Aset tidak ditemukan",
		})
	}

	asset.Name = draft.Name
	asset.Category = draft.Category
	asset.Quantity = draft.Quantity
	asset.Condition = draft.Condition
	asset.Location = draft.Location

	if err := s.assets.Update(asset); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Gagal mengupdate aset",
		})
	}

	return c.JSON(asset)
}

// DELETE /api/aset/:id
func (s *AssetService) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "ID aset tidak valid",
		})
	}

	if err := s.assets.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Gagal menghapus aset",
		})
	}

	return c.JSON(fiber.Map{})
}
