package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return
	}

	a, err := newApp()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	var runErr error
	switch command {
	case "register":
		runErr = a.registerCmd(args)
	case "login":
		runErr = a.loginCmd(args)
	case "logout":
		runErr = a.logoutCmd(args)
	case "whoami":
		runErr = a.whoamiCmd(args)
	case "password-reset":
		runErr = a.passwordResetCmd(args)
	case "stats":
		runErr = a.statsCmd(args)
	case "jobs":
		runErr = a.jobsCmd(args)
	case "candidates":
		runErr = a.candidatesCmd(args)
	case "apply":
		runErr = a.applyCmd(args)
	case "applications":
		runErr = a.applicationsCmd(args)
	case "resume":
		runErr = a.resumeCmd(args)
	case "ai":
		runErr = a.aiCmd(args)
	case "chat":
		runErr = a.chatCmd(args)
	case "files":
		runErr = a.filesCmd(args)
	case "company":
		runErr = a.companyCmd(args)
	case "health":
		runErr = a.healthCmd(args)
	case "info":
		runErr = a.infoCmd(args)
	case "rate-limits":
		runErr = a.rateLimitsCmd(args)
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if runErr != nil {
		fmt.Printf("Error: %v\n", runErr)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`talentctl - TalentBridge recruitment platform client

USAGE:
  talentctl <command> [options]

ACCOUNT:
  register        Create an account (--role recruiter|applicant)
  login           Sign in and persist the session token
  logout          Sign out and clear the session token
  whoami          Show the signed-in identity
  password-reset  Request or complete a password reset

RECRUITER:
  jobs            list | create | update | delete
  candidates      list | status

APPLICANT:
  apply           Apply to a job
  applications    List submitted applications
  resume          upload | parse | export
  ai              analyze | resume | cover-letter
  chat            send | history | suggestions | watch

GENERAL:
  stats           Role-specific dashboard summary
  files           upload | list | get | download | delete
  company         list | show | update | users
  health, info, rate-limits

ENVIRONMENT:
  TALENTBRIDGE_API_URL    Backend base URL (default: http://localhost:8080)
  TALENTBRIDGE_TOKEN_DIR  Where the session token is persisted`)
}
