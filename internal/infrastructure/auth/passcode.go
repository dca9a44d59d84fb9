package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"rental_portal/internal/usecase/interfaces"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// PasscodeCost matches the salt rounds tenant passcodes have always been hashed with.
const PasscodeCost = 10

// PasscodeHasher issues six digit passcodes and stores them as bcrypt hashes.
type PasscodeHasher struct {
	cost int
}

var _ interfaces.ICredentialHasher = (*PasscodeHasher)(nil)

func NewPasscodeHasher(cost int) *PasscodeHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = PasscodeCost
	}
	return &PasscodeHasher{cost: cost}
}

// Generate returns a uniformly random passcode in [100000, 999999].
func (h *PasscodeHasher) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate passcode: %w", err)
	}
	return strconv.FormatInt(100000+n.Int64(), 10), nil
}

func (h *PasscodeHasher) Hash(passcode string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash passcode: %w", err)
	}
	return string(hash), nil
}

func (h *PasscodeHasher) Matches(hash, passcode string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)) == nil
}
