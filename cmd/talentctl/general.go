package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/google/uuid"
)

func (a *app) statsCmd(args []string) error {
	if err := a.guard(""); err != nil {
		return err
	}
	stats, err := a.client.DashboardStats(context.Background())
	if err != nil {
		return err
	}

	switch a.session.CurrentUser().Role {
	case domain.RoleRecruiter:
		fmt.Printf("Active jobs: %d\nCandidates: %d\nNew applications: %d\nInterviews: %d\n",
			stats.ActiveJobs, stats.TotalCandidates, stats.NewApplications, stats.Interviews)
	case domain.RoleApplicant:
		fmt.Printf("Applications: %d\nDocuments generated: %d\nResumes parsed: %d\n",
			stats.ApplicationsSubmitted, stats.DocumentsGenerated, stats.ResumesParsed)
	case domain.RoleAdmin:
		fmt.Printf("Users: %d\nCompanies: %d\n", stats.TotalUsers, stats.TotalCompanies)
	}
	return nil
}

func (a *app) filesCmd(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: talentctl files <upload|list|get|download|delete> [options]")
	}
	if err := a.guard(""); err != nil {
		return err
	}

	ctx := context.Background()
	switch args[0] {
	case "upload":
		fs := flag.NewFlagSet("files upload", flag.ExitOnError)
		path := fs.String("file", "", "Path to the file")
		fileType := fs.String("type", "document", "File type (resume|cover_letter|document)")
		fs.Parse(args[1:])

		f, err := os.Open(*path)
		if err != nil {
			return err
		}
		defer f.Close()

		stored, err := a.client.UploadFile(ctx, filepath.Base(*path), domain.FileType(*fileType), f)
		if err != nil {
			return err
		}
		fmt.Printf("Uploaded %s, file id %s\n", stored.Name, stored.ID)
		return nil
	case "list":
		files, err := a.client.ListUserFiles(ctx)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println("No files")
			return nil
		}
		for _, f := range files {
			fmt.Printf("%s  [%s]  %s (%d bytes)\n", f.ID, f.Type, f.Name, f.Size)
		}
		return nil
	case "get", "download", "delete":
		fs := flag.NewFlagSet("files "+args[0], flag.ExitOnError)
		id := fs.String("id", "", "File id")
		out := fs.String("out", "", "Output path (download only)")
		yes := fs.Bool("yes", false, "Skip confirmation (delete only)")
		fs.Parse(args[1:])

		fileID, err := uuid.Parse(*id)
		if err != nil {
			return fmt.Errorf("invalid --id: %w", err)
		}
		switch args[0] {
		case "get":
			meta, err := a.client.GetFile(ctx, fileID)
			if err != nil {
				return err
			}
			fmt.Printf("%s  [%s]  %s (%d bytes, %s)\n", meta.ID, meta.Type, meta.Name, meta.Size, meta.ContentType)
		case "download":
			data, err := a.client.DownloadFile(ctx, fileID)
			if err != nil {
				return err
			}
			target := *out
			if target == "" {
				target = fileID.String()
			}
			if err := os.WriteFile(target, data, 0o644); err != nil {
				return err
			}
			fmt.Printf("Wrote %s (%d bytes)\n", target, len(data))
		case "delete":
			if !*yes && !confirm(fmt.Sprintf("Delete file %s?", fileID)) {
				fmt.Println("Aborted")
				return nil
			}
			if err := a.client.DeleteFile(ctx, fileID); err != nil {
				return err
			}
			fmt.Println("File deleted")
		}
		return nil
	default:
		return fmt.Errorf("unknown files subcommand: %s", args[0])
	}
}

func (a *app) companyCmd(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: talentctl company <list|show|update|users> [options]")
	}
	if err := a.guard(""); err != nil {
		return err
	}

	ctx := context.Background()
	switch args[0] {
	case "list":
		companies, err := a.client.ListCompanies(ctx)
		if err != nil {
			return err
		}
		for _, c := range companies {
			fmt.Printf("%s  %s\n", c.ID, c.Name)
		}
		return nil
	case "show", "users":
		fs := flag.NewFlagSet("company "+args[0], flag.ExitOnError)
		id := fs.String("id", "", "Company id")
		fs.Parse(args[1:])

		companyID, err := uuid.Parse(*id)
		if err != nil {
			return fmt.Errorf("invalid --id: %w", err)
		}
		if args[0] == "show" {
			company, err := a.client.GetCompany(ctx, companyID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n%s %s %s\n%s\n", company.Name, company.Industry, company.Size, company.Website, company.Description)
			return nil
		}
		users, err := a.client.CompanyUsers(ctx, companyID)
		if err != nil {
			return err
		}
		for _, u := range users {
			fmt.Printf("%s  %s <%s>  %s\n", u.ID, u.FullName(), u.Email, u.Role.DisplayName())
		}
		return nil
	case "update":
		fs := flag.NewFlagSet("company update", flag.ExitOnError)
		id := fs.String("id", "", "Company id")
		name := fs.String("name", "", "Company name")
		website := fs.String("website", "", "Website")
		industry := fs.String("industry", "", "Industry")
		size := fs.String("size", "", "Company size")
		description := fs.String("description", "", "Description")
		fs.Parse(args[1:])

		companyID, err := uuid.Parse(*id)
		if err != nil {
			return fmt.Errorf("invalid --id: %w", err)
		}
		company, err := a.client.UpdateCompany(ctx, companyID, domain.CompanyInput{
			Name:        *name,
			Website:     *website,
			Industry:    *industry,
			Size:        *size,
			Description: *description,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Updated company %s\n", company.Name)
		return nil
	default:
		return fmt.Errorf("unknown company subcommand: %s", args[0])
	}
}

func (a *app) healthCmd(args []string) error {
	health, err := a.client.Health(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Status: %s\nVersion: %s\nUptime: %s\n", health.Status, health.Version, health.Uptime)
	return nil
}

func (a *app) infoCmd(args []string) error {
	info, err := a.client.Info(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("%s %s (%s)\n", info.Name, info.Version, info.Environment)
	return nil
}

func (a *app) rateLimitsCmd(args []string) error {
	if err := a.guard(""); err != nil {
		return err
	}
	status, err := a.client.RateLimits(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Limit: %d/min  Burst: %d  Remaining: %.0f\n", status.Limit, status.Burst, status.Remaining)
	return nil
}
