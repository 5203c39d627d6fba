package pkg

import (
	petname "github.com/dustinkirkland/golang-petname"
)

const sessionNameWords = 2

// GenerateSessionName - generates a readable session name such as "brave-otter".
func GenerateSessionName() string {
	return petname.Generate(sessionNameWords, "-")
}
