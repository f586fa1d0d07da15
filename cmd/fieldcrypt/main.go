// Command fieldcrypt encrypts or decrypts a single column value with the same
// key derivation the server uses, so operators can look up or inspect
// customer rows directly in the database.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SscSPs/bank_onboarding_app/internal/platform/fieldcrypt"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/term"
)

const usage = `Usage: fieldcrypt <command> [arguments]
Commands: encrypt <plaintext>, decrypt <ciphertext>, fingerprint
The key is read from ENCRYPTION_KEY, or prompted for when unset.`

var errUsage = errors.New("invalid arguments")

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}

	passphrase := os.Getenv("ENCRYPTION_KEY")
	if passphrase == "" {
		var err error
		passphrase, err = promptPassphrase()
		if err != nil {
			color.New(color.FgRed).Fprintln(os.Stderr, "Failed to read key:", err)
			os.Exit(1)
		}
	}

	if err := run(os.Args[1:], passphrase, os.Stdout); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func promptPassphrase() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("ENCRYPTION_KEY is not set and stdin is not a terminal")
	}
	fmt.Fprint(os.Stderr, "Encryption key: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func run(args []string, passphrase string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	km, err := fieldcrypt.DeriveKeyMaterial(passphrase)
	if err != nil {
		return err
	}
	cipher, err := fieldcrypt.NewFieldCipher(km)
	if err != nil {
		return err
	}

	label := color.New(color.FgCyan)
	switch args[0] {
	case "encrypt":
		if len(args) != 2 {
			return fmt.Errorf("%w: encrypt takes exactly one value", errUsage)
		}
		ct, err := cipher.EncryptString(args[1])
		if err != nil {
			return err
		}
		label.Fprint(out, "ciphertext: ")
		fmt.Fprintln(out, ct)
	case "decrypt":
		if len(args) != 2 {
			return fmt.Errorf("%w: decrypt takes exactly one value", errUsage)
		}
		pt, err := cipher.DecryptString(args[1])
		if err != nil {
			return err
		}
		label.Fprint(out, "plaintext: ")
		fmt.Fprintln(out, pt)
	case "fingerprint":
		label.Fprint(out, "key fingerprint: ")
		fmt.Fprintln(out, km.Fingerprint())
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	return nil
}
