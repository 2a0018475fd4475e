package security

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

// ResetCodeTTL is how long a password reset code stays usable
const ResetCodeTTL = time.Hour

// GenerateCode returns a six digit code drawn uniformly from
// [100000, 999999]. Codes never start with a zero so they survive
// being pasted into numeric form fields.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
