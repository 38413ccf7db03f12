package jwt

import "golang.org/x/crypto/bcrypt"

func NewShopper(shopper RegisterShopper) (Shopper, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(shopper.Password), 10)
	if err != nil {
		return Shopper{}, err
	}

	return Shopper{
		Email:        shopper.Email,
		PasswordHash: string(hashedPassword),
	}, nil
}

func ValidatePassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
