// Command hashgen prompts for a password and prints its encoded hash, handy
// for seeding users by hand.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/pingstack/pingstack-go/internal/crypto"
)

func main() {
	fmt.Print("Password to hash: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		fmt.Fprintln(os.Stderr, "reading password:", err)
		os.Exit(1)
	}
	if len(password) == 0 {
		fmt.Fprintln(os.Stderr, "password must not be empty")
		os.Exit(1)
	}

	hash, err := crypto.HashPassword(string(password))
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashing password:", err)
		os.Exit(1)
	}

	fmt.Println("\nGenerated hash:")
	fmt.Println(hash)
	fmt.Println("\nUse this value in the users.password column.")
}
