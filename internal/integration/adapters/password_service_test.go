package adapters

import "testing"

func TestPasswordService(t *testing.T) {
	service := NewPasswordService()

	t.Run("hash and verify round-trip", func(t *testing.T) {
		hash, err := service.HashPassword("stable-yard-42")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}
		if hash == "stable-yard-42" {
			t.Fatal("hash must not equal the plain password")
		}
		if err := service.VerifyPassword(hash, "stable-yard-42"); err != nil {
			t.Errorf("expected matching password to verify: %v", err)
		}
		if err := service.VerifyPassword(hash, "wrong-password"); err == nil {
			t.Error("expected mismatched password to fail verification")
		}
	})

	t.Run("hashes are salted", func(t *testing.T) {
		first, err := service.HashPassword("stable-yard-42")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}
		second, err := service.HashPassword("stable-yard-42")
		if err != nil {
			t.Fatalf("HashPassword failed: %v", err)
		}
		if first == second {
			t.Error("two hashes of the same password should differ")
		}
	})

	t.Run("strength validation", func(t *testing.T) {
		if err := service.ValidatePasswordStrength("short7!"); err == nil {
			t.Error("expected a 7 character password to be rejected")
		}
		if err := service.ValidatePasswordStrength("long-enough"); err != nil {
			t.Errorf("expected an 8+ character password to pass: %v", err)
		}
	})
}
