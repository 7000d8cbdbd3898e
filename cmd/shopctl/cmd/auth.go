package cmd

import (
	"fmt"
	"time"

	"github.com/jrsteele09/go-shop-client/internal/utils"
	"github.com/jrsteele09/go-shop-client/token"
	"github.com/jrsteele09/go-shop-client/users"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string

	registerEmail     string
	registerPassword  string
	registerFirstName string
	registerLastName  string
	registerPhone     string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := shop.Auth.Login(cmd.Context(), users.LoginData{
			Email:    loginEmail,
			Password: loginPassword,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (%s)\n", user.FullName(), user.Email)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := shop.Auth.Register(cmd.Context(), users.RegisterData{
			Email:     registerEmail,
			Password:  registerPassword,
			FirstName: registerFirstName,
			LastName:  registerLastName,
			Phone:     registerPhone,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Registered %s (%s)\n", user.FullName(), user.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := shop.Auth.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !shop.Session.IsAuthenticated() {
			fmt.Println("Not logged in")
			return nil
		}
		user, err := shop.Auth.LoadCurrentUser(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n", user.FullName(), user.Email)
		fmt.Printf("Role: %s\n", user.Role.DisplayName)
		if user.IsAdmin() {
			fmt.Println("Admin: yes")
		}
		if creds, err := shop.Store().Get(); err == nil && creds != nil {
			if info := token.Introspect(creds.AccessToken); info.Active {
				expiresAt := time.Unix(utils.Value(info.Exp), 0)
				fmt.Printf("Session expires: %s\n", expiresAt.Format(time.RFC1123))
			}
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "account email")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "account password")
	registerCmd.Flags().StringVar(&registerFirstName, "first-name", "", "first name")
	registerCmd.Flags().StringVar(&registerLastName, "last-name", "", "last name")
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "phone number")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	_ = registerCmd.MarkFlagRequired("first-name")
	_ = registerCmd.MarkFlagRequired("last-name")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}
