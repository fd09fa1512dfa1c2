package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/ari/talentbridge/internal/client"
	"github.com/ari/talentbridge/internal/domain"
)

func (a *app) registerCmd(args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password (min 6 characters)")
	firstName := fs.String("first-name", "", "First name")
	lastName := fs.String("last-name", "", "Last name")
	role := fs.String("role", "applicant", "Account role (recruiter|applicant)")
	company := fs.String("company", "", "Company name (recruiters only)")
	fs.Parse(args)

	parsedRole, err := domain.ParseRole(*role)
	if err != nil {
		return err
	}

	input := client.RegisterInput{
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      parsedRole,
	}
	if parsedRole == domain.RoleRecruiter && *company != "" {
		input.Company = &domain.CompanyProfile{Name: *company}
	}

	user, err := a.session.Register(context.Background(), input)
	if err != nil {
		return err
	}
	fmt.Printf("Registered and signed in as %s (%s)\n", user.FullName(), user.Role.DisplayName())
	return nil
}

func (a *app) loginCmd(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password")
	fs.Parse(args)

	user, err := a.session.Login(context.Background(), *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Signed in as %s (%s)\n", user.FullName(), user.Role.DisplayName())
	return nil
}

func (a *app) logoutCmd(args []string) error {
	if err := a.session.Logout(context.Background()); err != nil {
		return err
	}
	fmt.Println("Signed out")
	return nil
}

func (a *app) whoamiCmd(args []string) error {
	if err := a.guard(""); err != nil {
		return err
	}
	user := a.session.CurrentUser()
	fmt.Printf("%s <%s>\nRole: %s\n", user.FullName(), user.Email, user.Role.DisplayName())
	if user.CompanyID != nil {
		fmt.Printf("Company: %s\n", user.CompanyID)
	}
	return nil
}

func (a *app) passwordResetCmd(args []string) error {
	fs := flag.NewFlagSet("password-reset", flag.ExitOnError)
	email := fs.String("email", "", "Account email (request a reset)")
	token := fs.String("token", "", "Reset token (complete a reset)")
	password := fs.String("password", "", "New password (with --token)")
	fs.Parse(args)

	ctx := context.Background()
	if *token != "" {
		msg, err := a.client.ResetPassword(ctx, *token, *password)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	}
	msg, err := a.client.RequestPasswordReset(ctx, *email)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}
