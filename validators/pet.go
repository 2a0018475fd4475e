package validators

import (
	"errors"
	"slices"
)

var (
	ErrPetNameEmpty     = errors.New("no pet name provided")
	ErrPetSpeciesEmpty  = errors.New("no species provided")
	ErrPetBreedEmpty    = errors.New("no breed provided")
	ErrPetStatusInvalid = errors.New("invalid pet status provided")

	validPetStatuses = []string{"available", "reserved", "lost", "found"}
)

func PetValidator(name, species, breed string) error {
	if name == "" {
		return ErrPetNameEmpty
	}

	if species == "" {
		return ErrPetSpeciesEmpty
	}

	if breed == "" {
		return ErrPetBreedEmpty
	}

	return nil
}

func PetStatusValidator(s string) error {
	if !slices.Contains(validPetStatuses, s) {
		return ErrPetStatusInvalid
	}

	return nil
}
