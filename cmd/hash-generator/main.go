// Command hash-generator prints bcrypt hashes for the passwords given on
// the command line, using the same work factor as the signup path. Handy
// for seeding development databases with known credentials.
package main

import (
	"fmt"
	"os"

	"github.com/phrazzld/places-api/internal/service/auth"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator <password> [password...]")
		os.Exit(1)
	}

	hasher := auth.NewBcryptHasher()

	for _, password := range os.Args[1:] {
		hash, err := hasher.Hash(password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error hashing %q: %v\n", password, err)
			os.Exit(1)
		}
		fmt.Printf("%s\n", hash)
	}
}
