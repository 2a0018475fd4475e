package util

import gonanoid "github.com/matoous/go-nanoid/v2"

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewID generates a 16 character record ID
func NewID() (string, error) {
	return gonanoid.Generate(idCharset, 16)
}
