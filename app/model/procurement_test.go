package model

import (
	"testing"

	"github.com/google/uuid"
)

func pendingRequest(owner uuid.UUID) *ProcurementRequest {
	return &ProcurementRequest{
		ID:            uuid.New(),
		AssetName:     "Laptop",
		Quantity:      2,
		Category:      CategoryElectronics,
		Reason:        "for lab",
		RequestStatus: StatusPending,
		UserID:        owner,
	}
}

func TestCapabilitiesByRole(t *testing.T) {
	tests := []struct {
		role      Role
		canSubmit bool
		canReview bool
		seesAll   bool
	}{
		{RoleDosen, true, false, false},
		{RoleAdminLab, true, false, false},
		{RoleAdminJurusan, false, true, true},
		{Role("mahasiswa"), false, false, false},
		{Role(""), false, false, false},
	}

	for _, tt := range tests {
		if got := tt.role.CanSubmitRequests(); got != tt.canSubmit {
			t.Errorf("%s: CanSubmitRequests = %v, want %v", tt.role, got, tt.canSubmit)
		}
		if got := tt.role.CanReviewRequests(); got != tt.canReview {
			t.Errorf("%s: CanReviewRequests = %v, want %v", tt.role, got, tt.canReview)
		}
		if got := tt.role.SeesAllRequests(); got != tt.seesAll {
			t.Errorf("%s: SeesAllRequests = %v, want %v", tt.role, got, tt.seesAll)
		}
	}
}

func TestEditableByOwnerWhilePending(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	req := pendingRequest(owner)

	if !req.EditableBy(owner, RoleDosen) {
		t.Error("owner with role dosen should be able to edit a pending request")
	}
	if !req.DeletableBy(owner, RoleAdminLab) {
		t.Error("owner with role admin_lab should be able to delete a pending request")
	}
	if req.EditableBy(other, RoleDosen) {
		t.Error("non-owner should not be able to edit")
	}
	if req.EditableBy(owner, RoleAdminJurusan) {
		t.Error("admin_jurusan should not be able to edit, even as owner")
	}
}

func TestTerminalStatesBlockAllMutations(t *testing.T) {
	owner := uuid.New()

	for _, status := range []RequestStatus{StatusApproved, StatusRejected} {
		req := pendingRequest(owner)
		req.RequestStatus = status

		if req.EditableBy(owner, RoleDosen) {
			t.Errorf("%s request should not be editable", status)
		}
		if req.DeletableBy(owner, RoleAdminLab) {
			t.Errorf("%s request should not be deletable", status)
		}
		if req.ReviewableBy(RoleAdminJurusan) {
			t.Errorf("%s request should not be reviewable", status)
		}
		if !status.Terminal() {
			t.Errorf("%s should be terminal", status)
		}
	}

	if StatusPending.Terminal() {
		t.Error("pending should not be terminal")
	}
}

func TestReviewableByAdminJurusanOnly(t *testing.T) {
	req := pendingRequest(uuid.New())

	if !req.ReviewableBy(RoleAdminJurusan) {
		t.Error("admin_jurusan should be able to review a pending request")
	}
	if req.ReviewableBy(RoleDosen) || req.ReviewableBy(RoleAdminLab) {
		t.Error("submitting roles should not be able to review")
	}
}

func TestVisibleTo(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	req := pendingRequest(owner)

	if !req.VisibleTo(owner, RoleDosen) {
		t.Error("owner should see their own request")
	}
	if req.VisibleTo(other, RoleDosen) {
		t.Error("another dosen should not see the request")
	}
	if !req.VisibleTo(other, RoleAdminJurusan) {
		t.Error("admin_jurusan should see every request")
	}
}

func TestNormalizeApprovedClearsReason(t *testing.T) {
	reason := "typed but irrelevant"
	req := UpdateStatusRequest{
		RequestStatus:   StatusApproved,
		RejectionReason: &reason,
	}

	msg, ok := req.Normalize()
	if !ok {
		t.Fatalf("expected approved to normalize, got message %q", msg)
	}
	if req.RejectionReason != nil {
		t.Errorf("approved must carry a nil rejection reason, got %q", *req.RejectionReason)
	}
}

func TestNormalizeRejectedRequiresReason(t *testing.T) {
	blank := "   "
	for _, reason := range []*string{nil, &blank} {
		req := UpdateStatusRequest{
			RequestStatus:   StatusRejected,
			RejectionReason: reason,
		}
		if _, ok := req.Normalize(); ok {
			t.Error("rejected with blank reason should not normalize")
		}
	}
}

func TestNormalizeRejectedTrimsReason(t *testing.T) {
	reason := "  Budget denied  "
	req := UpdateStatusRequest{
		RequestStatus:   StatusRejected,
		RejectionReason: &reason,
	}

	msg, ok := req.Normalize()
	if !ok {
		t.Fatalf("expected rejected with reason to normalize, got message %q", msg)
	}
	if req.RejectionReason == nil || *req.RejectionReason != "Budget denied" {
		t.Errorf("expected trimmed reason 'Budget denied', got %v", req.RejectionReason)
	}
}
