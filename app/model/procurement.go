package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// Terminal reports whether no further transition is allowed. Requests only
// move pending -> approved or pending -> rejected.
func (s RequestStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

const (
	CategoryElectronics = "electronics"
	CategoryFurniture   = "furniture"
	CategoryStationary  = "stationary"
)

type ProcurementRequest struct {
	ID              uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AssetName       string        `gorm:"size:150;not null" json:"assetName"`
	Quantity        int           `gorm:"not null" json:"quantity"`
	Category        string        `gorm:"size:50;not null" json:"category"`
	Reason          string        `gorm:"type:text;not null" json:"reason"`
	ImageReference  string        `gorm:"type:text" json:"image_reference,omitempty"`
	RequestStatus   RequestStatus `gorm:"size:20;not null;default:pending" json:"requestStatus"`
	RejectionReason *string       `gorm:"type:text" json:"rejectionReason"`
	UserID          uuid.UUID     `gorm:"type:uuid;not null" json:"user_id"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`

	// Relasi
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// EditableBy: owner only, submitting roles only, and only while pending.
func (p *ProcurementRequest) EditableBy(userID uuid.UUID, role Role) bool {
	return p.RequestStatus == StatusPending && role.CanSubmitRequests() && p.UserID == userID
}

// DeletableBy follows the same rule as EditableBy.
func (p *ProcurementRequest) DeletableBy(userID uuid.UUID, role Role) bool {
	return p.EditableBy(userID, role)
}

// ReviewableBy: reviewing role only, and only while pending.
func (p *ProcurementRequest) ReviewableBy(role Role) bool {
	return p.RequestStatus == StatusPending && role.CanReviewRequests()
}

// VisibleTo mirrors the listing rule for single-record reads.
func (p *ProcurementRequest) VisibleTo(userID uuid.UUID, role Role) bool {
	return role.SeesAllRequests() || p.UserID == userID
}

type ProcurementDraft struct {
	AssetName      string `json:"assetName" validate:"required"`
	Quantity       int    `json:"quantity" validate:"required,min=1"`
	Category       string `json:"category" validate:"required,oneof=electronics furniture stationary"`
	Reason         string `json:"reason" validate:"required"`
	ImageReference string `json:"image_reference" validate:"omitempty,url"`
}

type UpdateStatusRequest struct {
	RequestStatus   RequestStatus `json:"requestStatus" validate:"required,oneof=approved rejected"`
	RejectionReason *string       `json:"rejectionReason"`
}

// Normalize enforces the rejection-reason invariant on the incoming
// payload: approved always carries a null reason, rejected requires a
// non-blank one (which gets trimmed). Returns a user-facing message on
// violation.
func (r *UpdateStatusRequest) Normalize() (string, bool) {
	switch r.RequestStatus {
	case StatusApproved:
		r.RejectionReason = nil
	case StatusRejected:
		if r.RejectionReason == nil || strings.TrimSpace(*r.RejectionReason) == "" {
			return "Alasan penolakan harus diisi", false
		}
		trimmed := strings.TrimSpace(*r.RejectionReason)
		r.RejectionReason = &trimmed
	}
	return "", true
}
