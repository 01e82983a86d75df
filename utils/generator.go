package utils

import (
	"math/rand"
	"time"

	"github.com/kamaubrian/portfolio-backend/models"
	"gorm.io/gorm"
)

const shortCodeLength = 8
const codeBytes = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateUniqueShortCode produces a code not yet used by any generated link.
func GenerateUniqueShortCode(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, shortCodeLength)
		for i := range b {
			b[i] = codeBytes[seededRand.Intn(len(codeBytes))]
		}
		code := string(b)

		var link models.GeneratedLink
		err := tx.Where("code = ?", code).First(&link).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}
