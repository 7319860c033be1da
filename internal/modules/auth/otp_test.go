package auth

import (
	"strconv"
	"testing"
)

func TestGenerateOTP_Range(t *testing.T) {
	for i := 0; i < 500; i++ {
		code, err := generateOTP()
		if err != nil {
			t.Fatalf("generateOTP failed: %v", err)
		}
		if !otpPattern.MatchString(code) {
			t.Fatalf("code %q is not a 6-digit value without leading zero", code)
		}
		n, _ := strconv.Atoi(code)
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d out of range [100000, 999999]", n)
		}
	}
}
