package repo

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/model"
)

// ErrRequestNotPending is returned when a guarded mutation finds the
// request no longer pending. Another session won the race; callers treat
// this as a recoverable business-rule rejection, not a failure.
var ErrRequestNotPending = errors.New("pengajuan sudah tidak berstatus pending")

type ProcurementRepository interface {
	FindAllFor(userID uuid.UUID, role model.Role, search string) ([]model.ProcurementRequest, error)
	FindByID(id uuid.UUID) (*model.ProcurementRequest, error)
	Create(req *model.ProcurementRequest) error
	Update(id uuid.UUID, draft model.ProcurementDraft) error
	UpdateStatus(id uuid.UUID, status model.RequestStatus, rejectionReason *string) error
	Delete(id uuid.UUID) error
	CountPendingOlderThan(age time.Duration) (int64, error)
}

type ProcurementRepo struct {
	DB *gorm.DB
}

func NewProcurementRepo(db *gorm.DB) *ProcurementRepo {
	return &ProcurementRepo{DB: db}
}

// FindAllFor applies the role visibility rule (admin_jurusan sees all,
// everyone else only their own) and the substring search against asset
// name, category and requester name.
func (r *ProcurementRepo) FindAllFor(userID uuid.UUID, role model.Role, search string) ([]model.ProcurementRequest, error) {
	var requests []model.ProcurementRequest

	q := r.DB.Preload("User").
		Joins("JOIN users ON users.id = procurement_requests.user_id")

	if !role.SeesAllRequests() {
		q = q.Where("procurement_requests.user_id = ?", userID)
	}
	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"procurement_requests.asset_name ILIKE ? OR procurement_requests.category ILIKE ? OR users.name ILIKE ?",
			like, like, like,
		)
	}

	err := q.Order("procurement_requests.created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *ProcurementRepo) FindByID(id uuid.UUID) (*model.ProcurementRequest, error) {
	var request model.ProcurementRequest
	err := r.DB.Preload("User").First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *ProcurementRepo) Create(req *model.ProcurementRequest) error {
	return r.DB.Create(req).Error
}

// Update rewrites the draft fields, guarded on the row still being
// pending so a stale edit loses cleanly instead of resurrecting a decided
// request.
func (r *ProcurementRepo) Update(id uuid.UUID, draft model.ProcurementDraft) error {
	res := r.DB.Model(&model.ProcurementRequest{}).
		Where("id = ? AND request_status = ?", id, model.StatusPending).
		Updates(map[string]interface{}{
			"asset_name":      draft.AssetName,
			"quantity":        draft.Quantity,
			"category":        draft.Category,
			"reason":          draft.Reason,
			"image_reference": draft.ImageReference,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRequestNotPending
	}
	return nil
}

func (r *ProcurementRepo) UpdateStatus(id uuid.UUID, status model.RequestStatus, rejectionReason *string) error {
	res := r.DB.Model(&model.ProcurementRequest{}).
		Where("id = ? AND request_status = ?", id, model.StatusPending).
		Updates(map[string]interface{}{
			"request_status":   status,
			"rejection_reason": rejectionReason,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRequestNotPending
	}
	return nil
}

func (r *ProcurementRepo) Delete(id uuid.UUID) error {
	res := r.DB.Where("id = ? AND request_status = ?", id, model.StatusPending).
		Delete(&model.ProcurementRequest{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRequestNotPending
	}
	return nil
}

func (r *ProcurementRepo) CountPendingOlderThan(age time.Duration) (int64, error) {
	var count int64
	cutoff := time.Now().Add(-age)
	err := r.DB.Model(&model.ProcurementRequest{}).
		Where("request_status = ? AND created_at < ?", model.StatusPending, cutoff).
		Count(&count).Error
	return count, err
}
