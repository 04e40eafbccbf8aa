package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"pricingsite/internal/domain/editor"
)

// hashpw reads a password from the first argument or stdin and prints its bcrypt hash
func main() {
	var password string
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(os.Stderr, "usage: hashpw <password>  (or pipe it on stdin)")
			os.Exit(2)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		fmt.Fprintln(os.Stderr, "password must not be empty")
		os.Exit(2)
	}

	hash, err := editor.HashPassword(password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
