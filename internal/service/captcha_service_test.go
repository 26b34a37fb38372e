package service

import (
	"errors"
	"testing"

	"github.com/bkpsdm/portal-api/internal/config"
)

func TestCaptchaVerifyDisabledIsNoop(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{Enabled: false})

	if err := svc.Verify("", ""); err != nil {
		t.Fatalf("disabled captcha should accept anything: %v", err)
	}
	if err := svc.Verify("apa-saja", "salah"); err != nil {
		t.Fatalf("disabled captcha should accept anything: %v", err)
	}
}

func TestCaptchaVerifyEnabled(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{
		Enabled: true,
		Length:  5,
		Width:   240,
		Height:  80,
	})

	if err := svc.Verify("", "kode"); !errors.Is(err, ErrCaptchaInvalid) {
		t.Fatalf("expected ErrCaptchaInvalid for empty id, got %v", err)
	}

	challenge, err := svc.GenerateImageChallenge()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if challenge.CaptchaID == "" || challenge.ImageBase64 == "" {
		t.Fatalf("expected non-empty challenge, got %+v", challenge)
	}

	if err := svc.Verify(challenge.CaptchaID, "jawaban-salah"); !errors.Is(err, ErrCaptchaInvalid) {
		t.Fatalf("expected ErrCaptchaInvalid for wrong answer, got %v", err)
	}
}
