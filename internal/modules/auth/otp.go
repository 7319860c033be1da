package auth

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// generateOTP draws a 6-digit code uniformly from [100000, 999999], so
// the code never carries a leading zero.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
