package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash возвращает bcrypt-хеш пароля
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Compare сравнение за постоянное время внутри bcrypt
func Compare(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
