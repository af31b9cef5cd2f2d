// Command hash-gen prints the bcrypt hash to use as ADMIN_PASS.
//
//	hash-gen 's3cret'
//	echo 's3cret' | hash-gen
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"club-site.backend/pkg/crypto"
)

var (
	stdin          io.Reader = os.Stdin
	stdout         io.Writer = os.Stdout
	generateHashFn           = crypto.HashPassword
	fatalfFn                 = log.Fatalf
)

var errNoPassword = errors.New("usage: hash-gen <password> (or pass it on stdin)")

func resolvePassword(args []string, in io.Reader) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errNoPassword
	}
	return password, nil
}

func run(args []string) error {
	password, err := resolvePassword(args, stdin)
	if err != nil {
		return err
	}
	hash, err := generateHashFn(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	_, err = fmt.Fprintf(stdout, "ADMIN_PASS=%s\n", hash)
	return err
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fatalfFn("%v", err)
	}
}
