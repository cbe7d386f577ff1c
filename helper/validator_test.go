package helper

import (
	"strings"
	"testing"

	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/model"
)

func validDraft() model.ProcurementDraft {
	return model.ProcurementDraft{
		AssetName: "Laptop",
		Quantity:  2,
		Category:  model.CategoryElectronics,
		Reason:    "for lab",
	}
}

func TestValidateProcurementDraft(t *testing.T) {
	if err := ValidateStruct(validDraft()); err != nil {
		t.Errorf("expected valid draft to pass, got %v", err)
	}
}

func TestValidateDraftRejectsZeroQuantity(t *testing.T) {
	draft := validDraft()
	draft.Quantity = 0

	err := ValidateStruct(draft)
	if err == nil {
		t.Fatal("expected error for quantity 0")
	}
	msg := FormatValidationErrors(err)
	if !strings.Contains(msg, "Quantity") {
		t.Errorf("expected message to name Quantity, got %q", msg)
	}
}

func TestValidateDraftRejectsUnknownCategory(t *testing.T) {
	draft := validDraft()
	draft.Category = "vehicles"

	if err := ValidateStruct(draft); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestValidateDraftRejectsBadImageURL(t *testing.T) {
	draft := validDraft()
	draft.ImageReference = "not a url"

	if err := ValidateStruct(draft); err == nil {
		t.Error("expected error for malformed image_reference")
	}

	draft.ImageReference = "https://images.unsplash.com/photo-1"
	if err := ValidateStruct(draft); err != nil {
		t.Errorf("expected valid URL to pass, got %v", err)
	}
}

func TestValidateStatusUpdate(t *testing.T) {
	if err := ValidateStruct(model.UpdateStatusRequest{RequestStatus: model.StatusApproved}); err != nil {
		t.Errorf("expected approved to pass, got %v", err)
	}
	if err := ValidateStruct(model.UpdateStatusRequest{RequestStatus: "cancelled"}); err == nil {
		t.Error("expected error for status outside approved/rejected")
	}
	if err := ValidateStruct(model.UpdateStatusRequest{}); err == nil {
		t.Error("expected error for missing status")
	}
}

func TestFormatValidationErrorsIndonesian(t *testing.T) {
	err := ValidateStruct(model.LoginRequest{Email: "bukan-email"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := FormatValidationErrors(err)
	if !strings.Contains(msg, "harus email") && !strings.Contains(msg, "wajib diisi") {
		t.Errorf("unexpected message: %q", msg)
	}
}
