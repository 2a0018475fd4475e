package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailValidator(t *testing.T) {
	assert.NoError(t, EmailValidator("alice@example.com"))
	assert.ErrorIs(t, EmailValidator(""), ErrEmailEmpty)
	assert.ErrorIs(t, EmailValidator("not-an-email"), ErrEmailInvalid)
}

func TestPasswordValidator(t *testing.T) {
	assert.NoError(t, PasswordValidator("longenough"))
	assert.ErrorIs(t, PasswordValidator(""), ErrPasswordEmpty)
	assert.ErrorIs(t, PasswordValidator("short"), ErrPasswordTooShort)
	assert.ErrorIs(t, PasswordValidator(strings.Repeat("x", 300)), ErrPasswordTooLong)
}

func TestUsernameValidator(t *testing.T) {
	assert.NoError(t, UsernameValidator("alice_92"))
	assert.ErrorIs(t, UsernameValidator(""), ErrUsernameEmpty)
	assert.ErrorIs(t, UsernameValidator(strings.Repeat("a", 40)), ErrUsernameTooLong)
	assert.ErrorIs(t, UsernameValidator("no spaces"), ErrUsernameInvalid)
}

func TestPetValidator(t *testing.T) {
	assert.NoError(t, PetValidator("Rex", "dog", "mixed"))
	assert.ErrorIs(t, PetValidator("", "dog", "mixed"), ErrPetNameEmpty)
	assert.ErrorIs(t, PetValidator("Rex", "", "mixed"), ErrPetSpeciesEmpty)
	assert.ErrorIs(t, PetValidator("Rex", "dog", ""), ErrPetBreedEmpty)

	assert.NoError(t, PetStatusValidator("available"))
	assert.NoError(t, PetStatusValidator("lost"))
	assert.ErrorIs(t, PetStatusValidator("adopted"), ErrPetStatusInvalid)
}
