package main

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sunglassai/outreach/internal/auth"
	"github.com/sunglassai/outreach/internal/config"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "User management commands",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new user",
	RunE:  runUserCreate,
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE:  runUserList,
}

var (
	userEmail    string
	userPassword string
	userName     string
)

func init() {
	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "User email")
	userCreateCmd.Flags().StringVar(&userPassword, "password", "", "User password (will prompt if not provided)")
	userCreateCmd.Flags().StringVar(&userName, "name", "", "User name")
	userCreateCmd.MarkFlagRequired("email")

	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userListCmd)

	userCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "Path to configuration file")
}

func openUserStore() (*auth.UserStore, *auth.DB, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}

	db, err := auth.OpenDB(cfg.Accounts.Path)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, nil, err
	}
	return auth.NewUserStore(db), db, nil
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	users, db, err := openUserStore()
	if err != nil {
		return err
	}
	defer db.Close()

	password := userPassword
	if password == "" {
		fmt.Print("Enter password: ")
		pwBytes, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()
		password = string(pwBytes)

		fmt.Print("Confirm password: ")
		pwBytes2, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		if password != string(pwBytes2) {
			return fmt.Errorf("passwords do not match")
		}
	}

	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	user, err := users.Create(userEmail, password, userName)
	if err != nil {
		return err
	}

	fmt.Printf("User %s created successfully (id %s)\n", user.Email, user.ID)
	return nil
}

func runUserList(cmd *cobra.Command, args []string) error {
	users, db, err := openUserStore()
	if err != nil {
		return err
	}
	defer db.Close()

	list, err := users.List()
	if err != nil {
		return err
	}

	fmt.Printf("%-36s  %-30s  %-20s  %s\n", "ID", "Email", "Name", "Created")
	for _, u := range list {
		fmt.Printf("%-36s  %-30s  %-20s  %s\n", u.ID, u.Email, u.Name, u.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
