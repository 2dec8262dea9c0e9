package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/Lukaszwutkowski/PasswordManager/internal/logging"
	"github.com/Lukaszwutkowski/PasswordManager/pkg/vault"

	"golang.org/x/term"
)

const (
	dbFileName  = "vault.db"
	keyFileName = "key.bin"
	logFileName = "app.log"
)

func main() {
	// Get home directory for storing the vault files
	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Printf("Error getting home directory: %v\n", err)
		os.Exit(1)
	}

	configDir := filepath.Join(homeDir, ".passwordmanager")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("Error creating config directory: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewFileLogger(filepath.Join(configDir, logFileName))
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}

	v, err := vault.New(vault.Options{
		DBPath:  filepath.Join(configDir, dbFileName),
		KeyFile: filepath.Join(configDir, keyFileName),
		Logger:  logger,
	})
	if err != nil {
		fmt.Printf("Error opening vault: %v\n", err)
		os.Exit(1)
	}
	defer v.Close()

	runCLI(v)
}

// runCLI runs the command-line interface
func runCLI(v *vault.Vault) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Password Manager ===")

	// First run: the vault ships with a well-known bootstrap password and
	// refuses to operate until a real one is set.
	if v.SetupRequired() {
		fmt.Println("First run detected. You must set the admin password before using the vault.")
		if err := setAdminPassword(v, "Set your master password: "); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("Master password set successfully.")
	} else if !login(v) {
		fmt.Println("Too many failed attempts.")
		return
	}

	// Main menu
	for {
		fmt.Println("\nMain Menu:")
		fmt.Println("1. List all passwords")
		fmt.Println("2. Add new password")
		fmt.Println("3. Search password")
		fmt.Println("4. Update password")
		fmt.Println("5. Delete password")
		fmt.Println("6. Generate password")
		fmt.Println("7. Change master password")
		fmt.Println("0. Exit")
		fmt.Print("Enter your choice: ")

		choice, err := reader.ReadString('\n')
		if err != nil {
			fmt.Printf("Error reading input: %v\n", err)
			continue
		}

		switch strings.TrimSpace(choice) {
		case "1":
			listPasswords(v)
		case "2":
			addPassword(v, reader)
		case "3":
			searchPassword(v, reader)
		case "4":
			updatePassword(v, reader)
		case "5":
			deletePassword(v, reader)
		case "6":
			generatePassword(v, reader)
		case "7":
			changeMasterPassword(v)
		case "0":
			fmt.Println("Exiting...")
			return
		default:
			fmt.Println("Invalid choice, please try again.")
		}
	}
}

// login prompts for the admin credentials, allowing three attempts
func login(v *vault.Vault) bool {
	for attempt := 0; attempt < 3; attempt++ {
		password, err := readPassword("Enter master password: ")
		if err != nil {
			fmt.Printf("Error reading password: %v\n", err)
			return false
		}

		ok, err := v.ValidateLogin(vault.AdminUsername, password)
		if err != nil {
			fmt.Printf("Error validating login: %v\n", err)
			return false
		}
		if ok {
			return true
		}
		fmt.Println("Invalid password.")
	}
	return false
}

// setAdminPassword prompts for a new admin password until it passes the
// strength gate and is confirmed, then rotates it.
func setAdminPassword(v *vault.Vault, prompt string) error {
	for {
		password, err := readPassword(prompt)
		if err != nil {
			return err
		}

		confirm, err := readPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			fmt.Println("Passwords do not match. Please try again.")
			continue
		}

		err = v.RotateAdminPassword(password)
		var vErr *vault.ValidationError
		if errors.As(err, &vErr) {
			fmt.Println("Password is too weak:")
			for _, msg := range vErr.Messages {
				fmt.Println("  - " + msg)
			}
			continue
		}
		return err
	}
}

func listPasswords(v *vault.Vault) {
	creds, err := v.GetPasswords()
	if err != nil {
		fmt.Printf("Error retrieving passwords: %v\n", err)
		return
	}
	if len(creds) == 0 {
		fmt.Println("No passwords stored.")
		return
	}

	for _, cred := range creds {
		fmt.Printf("Website: %s, Email: %s, Password: %s\n", cred.Website, cred.Email, cred.Password)
	}
}

func addPassword(v *vault.Vault, reader *bufio.Reader) {
	website := readLine(reader, "Website: ")
	email := readLine(reader, "Email: ")
	password, err := readPassword("Password: ")
	if err != nil {
		fmt.Printf("Error reading password: %v\n", err)
		return
	}

	if err := v.SavePassword(website, email, password); err != nil {
		printVaultError(err)
		return
	}
	fmt.Println("Password saved successfully.")
}

func searchPassword(v *vault.Vault, reader *bufio.Reader) {
	website := readLine(reader, "Website: ")

	cred, err := v.SearchPassword(website)
	if err != nil {
		printVaultError(err)
		return
	}
	fmt.Printf("Website: %s, Email: %s, Password: %s\n", cred.Website, cred.Email, cred.Password)
}

func updatePassword(v *vault.Vault, reader *bufio.Reader) {
	website := readLine(reader, "Website: ")
	password, err := readPassword("New password: ")
	if err != nil {
		fmt.Printf("Error reading password: %v\n", err)
		return
	}

	if err := v.UpdatePassword(website, password); err != nil {
		printVaultError(err)
		return
	}
	fmt.Println("Password updated successfully.")
}

func deletePassword(v *vault.Vault, reader *bufio.Reader) {
	website := readLine(reader, "Website: ")

	if err := v.DeletePassword(website); err != nil {
		printVaultError(err)
		return
	}
	fmt.Println("Password deleted successfully.")
}

func generatePassword(v *vault.Vault, reader *bufio.Reader) {
	lengthStr := readLine(reader, "Length (default 12): ")

	length := 12
	if lengthStr != "" {
		var err error
		length, err = strconv.Atoi(lengthStr)
		if err != nil {
			fmt.Println("Invalid length.")
			return
		}
	}

	password, err := v.GeneratePassword(length)
	if err != nil {
		fmt.Printf("Error generating password: %v\n", err)
		return
	}
	fmt.Printf("Generated password: %s\n", password)
}

func changeMasterPassword(v *vault.Vault) {
	current, err := readPassword("Current master password: ")
	if err != nil {
		fmt.Printf("Error reading password: %v\n", err)
		return
	}

	ok, err := v.ValidateLogin(vault.AdminUsername, current)
	if err != nil {
		fmt.Printf("Error validating login: %v\n", err)
		return
	}
	if !ok {
		fmt.Println("Invalid password.")
		return
	}

	if err := setAdminPassword(v, "New master password: "); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Master password updated successfully.")
}

// printVaultError renders vault errors in a user-facing form
func printVaultError(err error) {
	var vErr *vault.ValidationError
	switch {
	case errors.As(err, &vErr):
		fmt.Println("Password is too weak:")
		for _, msg := range vErr.Messages {
			fmt.Println("  - " + msg)
		}
	case errors.Is(err, vault.ErrNotFound):
		fmt.Println("Error: Website not found.")
	case errors.Is(err, vault.ErrMissingFields):
		fmt.Println("All fields (website, email, password) are required.")
	default:
		fmt.Printf("Error: %v\n", err)
	}
}

// readLine prompts and reads a single trimmed line
func readLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

// readPassword prompts and reads a password without echoing it
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
