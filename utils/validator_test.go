package utils

import (
	"strings"
	"testing"
)

type credentialForm struct {
	Email    string `validate:"required,emailok"`
	Password string `validate:"required,pwdmin"`
	Confirm  string `validate:"eqfield=Password"`
}

func TestValidateStructRequired(t *testing.T) {
	err := ValidateStruct(&credentialForm{Password: "secret1", Confirm: "secret1"})
	if err == nil || !strings.Contains(err.Error(), "Email") {
		t.Fatalf("expected missing Email error, got %v", err)
	}
}

func TestValidateStructEmailShape(t *testing.T) {
	err := ValidateStruct(&credentialForm{Email: "not-an-email", Password: "secret1", Confirm: "secret1"})
	if err == nil || !strings.Contains(err.Error(), "Email") {
		t.Fatalf("expected email shape error, got %v", err)
	}
	if err := ValidateStruct(&credentialForm{Email: "user@example.com", Password: "secret1", Confirm: "secret1"}); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}
}

func TestValidateStructPasswordRules(t *testing.T) {
	err := ValidateStruct(&credentialForm{Email: "user@example.com", Password: "short", Confirm: "short"})
	if err == nil || !strings.Contains(err.Error(), "Password") {
		t.Fatalf("expected pwdmin error, got %v", err)
	}
	err = ValidateStruct(&credentialForm{Email: "user@example.com", Password: "secret1", Confirm: "other12"})
	if err == nil || !strings.Contains(err.Error(), "Confirm") {
		t.Fatalf("expected eqfield error, got %v", err)
	}
}

func TestNewTxRefFormat(t *testing.T) {
	ref := NewTxRef(42)
	if !strings.HasPrefix(ref, "ECO-") {
		t.Fatalf("unexpected reference prefix: %s", ref)
	}
	if ref == NewTxRef(42) && ref == NewTxRef(42) {
		t.Fatalf("references should not repeat: %s", ref)
	}
}
