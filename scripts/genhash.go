// genhash prints bcrypt hashes in the format stored in users.password, for
// resetting a password by hand with SQL.
//
//	go run ./scripts/genhash.go 9876543210=newpass1 9123456780=newpass2
package main

import (
	"fmt"
	"os"
	"strings"

	"dailywage-backend/pkg/auth"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <phone>=<password> ...")
		os.Exit(1)
	}

	for _, arg := range os.Args[1:] {
		phone, pass, ok := strings.Cut(arg, "=")
		if !ok || pass == "" || !isPhone(phone) {
			fmt.Fprintf(os.Stderr, "skipping %q: expected <digits>=<password>\n", arg)
			continue
		}
		hash, err := auth.HashPassword(pass)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			continue
		}
		fmt.Printf("UPDATE users SET password = '%s', updated_at = NOW() WHERE phone = '%s';\n", hash, phone)
	}
}

func isPhone(s string) bool {
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
