package service

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/model"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/repo"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/helper"
)

type ProcurementService struct {
	requests   repo.ProcurementRepository
	activities repo.ActivityRepository
	hub        *helper.Hub
}

func NewProcurementService(requests repo.ProcurementRepository, activities repo.ActivityRepository, hub *helper.Hub) *ProcurementService {
	return &ProcurementService{requests: requests, activities: activities, hub: hub}
}

func identity(c *fiber.Ctx) (uuid.UUID, model.Role, string) {
	userID, _ := c.Locals("user_id").(uuid.UUID)
	role, _ := c.Locals("role").(model.Role)
	name, _ := c.Locals("name").(string)
	return userID, role, name
}

// GET /api/procurement-requests
func (s *ProcurementService) List(c *fiber.Ctx) error {
	userID, role, _ := identity(c)
	search := c.Query("search")

	requests, err := s.requests.FindAllFor(userID, role, search)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Gagal mengambil data pengajuan",
		})
	}

	return c.JSON(model.DataResponse[[]model.ProcurementRequest]{Data: requests})
}

// GET /api/procurement-requests/:id
func (s *ProcurementService) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "ID pengajuan tidak valid",
		})
	}

	request, err := s.requests.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Pengajuan tidak ditemukan",
		})
	}

	userID, role, _ := identity(c)
	if !request.VisibleTo(userID, role) {
		return c.Status(fiber.StatusForbidden).JSON(model.ErrorResponse{
			Success: false,
			Message: "Anda tidak berhak melihat pengajuan ini",
		})
	}

	return c.JSON(request)
}

// POST /api/procurement-requests
func (s *ProcurementService) Create(c *fiber.Ctx) error {
	userID, role, name := identity(c)
	if !role.CanSubmitRequests() {
		return c.Status(fiber.StatusForbidden).JSON(model.ErrorResponse{
			Success: false,
			Message: "Role Anda tidak dapat membuat pengajuan",
		})
	}

	var draft model.ProcurementDraft
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

	// New requests always start pending, owned by the caller.
	request := model.ProcurementRequest{
		AssetName:      draft.AssetName,
		Quantity:       draft.Quantity,
		Category:       draft.Category,
		Reason:         draft.Reason,
		ImageReference: draft.ImageReference,
		RequestStatus:  model.StatusPending,
		UserID:         userID,
	}
	if err := s.requests.Create(&request); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Gagal membuat pengajuan",
		})
	}

	s.logActivity(c, request.ID, model.ActivityCreated, name, role, "")

	created, err := s.requests.FindByID(request.ID)
	if err != nil {
		return c.Status(fiber.StatusCreated).JSON(request)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// PUT /api/procurement-requests/:id
func (s *ProcurementService) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "ID pengajuan tidak valid",
		})
	}

	request, err := s.requests.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Pengajuan tidak ditemukan",
		})
	}

	userID, role, name := identity(c)
	if !request.EditableBy(userID, role) {
		return s.rejectMutation(c, request, "Anda tidak berhak mengubah pengajuan ini")
	}

	var draft model.ProcurementDraft
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

	if err := s.requests.Update(id, draft); err != nil {
		if err == repo.ErrRequestNotPending {
			return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Gagal memperbarui pengajuan",
		})
	}

	s.logActivity(c, id, model.ActivityUpdated, name, role, "")

	updated, err := s.requests.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Gagal mengambil detail pengajuan",
		})
	}
	return c.JSON(updated)
}

// PATCH /api/procurement-requests/:id
func (s *ProcurementService) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "ID pengajuan tidak valid",
		})
	}

	request, err := s.requests.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Pengajuan tidak ditemukan",
		})
	}

	_, role, name := identity(c)
	if !request.ReviewableBy(role) {
		return s.rejectMutation(c, request, "Hanya admin jurusan yang dapat memperbarui status")
	}

	var req model.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(model.ErrorResponse{
			Success: false,
			Message: helper.FormatValidationErrors(err),
		})
	}

	if msg, ok := req.Normalize(); !ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(model.ErrorResponse{
			Success: false,
			Message: msg,
		})
	}

	if err := s.requests.UpdateStatus(id, req.RequestStatus, req.RejectionReason); err != nil {
		if err == repo.ErrRequestNotPending {
			return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Gagal memperbarui status",
		})
	}

	note := string(req.RequestStatus)
	if req.RejectionReason != nil {
		note = note + ": " + *req.RejectionReason
	}
	s.logActivity(c, id, model.ActivityStatusChanged, name, role, note)
	s.notifyOwner(request, req)

	updated, err := s.requests.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Gagal mengambil detail pengajuan",
		})
	}
	return c.JSON(updated)
}

// DELETE /api/procurement-requests/:id
func (s *ProcurementService) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "ID pengajuan tidak valid",
		})
	}

	request, err := s.requests.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Pengajuan tidak ditemukan",
		})
	}

	userID, role, name := identity(c)
	if !request.DeletableBy(userID, role) {
		return s.rejectMutation(c, request, "Anda tidak berhak menghapus pengajuan ini")
	}

	if err := s.requests.Delete(id); err != nil {
		if err == repo.ErrRequestNotPending {
			return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Gagal menghapus pengajuan",
		})
	}

	s.logActivity(c, id, model.ActivityDeleted, name, role, "")

	return c.JSON(fiber.Map{})
}

// GET /api/procurement-requests/:id/history
func (s *ProcurementService) History(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "ID pengajuan tidak valid",
		})
	}

	request, err := s.requests.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
			Success: false,
			Message: "Pengajuan tidak ditemukan",
		})
	}

	userID, role, _ := identity(c)
	if !request.VisibleTo(userID, role) {
		return c.Status(fiber.StatusForbidden).JSON(model.ErrorResponse{
			Success: false,
			Message: "Anda tidak berhak melihat pengajuan ini",
		})
	}

	activities, err := s.activities.FindByRequestID(c.Context(), id.String())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Gagal mengambil riwayat pengajuan",
		})
	}

	return c.JSON(model.DataResponse[[]model.Activity]{Data: activities})
}

// rejectMutation distinguishes "request already decided" (an expected,
// recoverable conflict) from a plain authorization failure.
func (s *ProcurementService) rejectMutation(c *fiber.Ctx, request *model.ProcurementRequest, forbiddenMsg string) error {
	if request.RequestStatus.Terminal() {
		return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
			Success: false,
			Message: "Pengajuan sudah diproses dan tidak dapat diubah",
		})
	}
	return c.Status(fiber.StatusForbidden).JSON(model.ErrorResponse{
		Success: false,
		Message: forbiddenMsg,
	})
}

func (s *ProcurementService) logActivity(c *fiber.Ctx, requestID uuid.UUID, action, actorName string, actorRole model.Role, note string) {
	activity := model.Activity{
		RequestID: requestID.String(),
		Action:    action,
		ActorName: actorName,
		ActorRole: actorRole,
		Note:      note,
	}
	// History is best-effort; a failed append never fails the mutation.
	if err := s.activities.Append(c.Context(), activity); err != nil {
		log.Printf("Failed to log activity for request %s: %v", requestID, err)
	}
}

func (s *ProcurementService) notifyOwner(request *model.ProcurementRequest, req model.UpdateStatusRequest) {
	if s.hub == nil {
		return
	}
	var content string
	if req.RequestStatus == model.StatusApproved {
		content = fmt.Sprintf("Pengajuan %q disetujui", request.AssetName)
	} else {
		content = fmt.Sprintf("Pengajuan %q ditolak: %s", request.AssetName, *req.RejectionReason)
	}
	s.hub.Notify(request.UserID.String(), content)
}
