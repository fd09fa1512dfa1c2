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

func (a *app) applyCmd(args []string) error {
	if err := a.guard(domain.RoleApplicant); err != nil {
		return err
	}

	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	job := fs.String("job", "", "Job id")
	resume := fs.String("resume", "", "Uploaded resume file id (optional)")
	cover := fs.String("cover-letter", "", "Cover letter text (optional)")
	fs.Parse(args)

	jobID, err := uuid.Parse(*job)
	if err != nil {
		return fmt.Errorf("invalid --job: %w", err)
	}
	input := domain.ApplicationInput{JobID: jobID, CoverLetter: *cover}
	if *resume != "" {
		resumeID, err := uuid.Parse(*resume)
		if err != nil {
			return fmt.Errorf("invalid --resume: %w", err)
		}
		input.ResumeID = &resumeID
	}

	app, err := a.client.Apply(context.Background(), input)
	if err != nil {
		return err
	}
	fmt.Printf("Application %s submitted (%s)\n", app.ID, app.Status)
	return nil
}

func (a *app) applicationsCmd(args []string) error {
	if err := a.guard(domain.RoleApplicant); err != nil {
		return err
	}

	apps, err := a.client.ListApplications(context.Background())
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		fmt.Println("No applications")
		return nil
	}
	for _, app := range apps {
		fmt.Printf("%s  job=%s  [%s]  %s\n", app.ID, app.JobID, app.Status, app.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func (a *app) resumeCmd(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: talentctl resume <upload|parse|export> [options]")
	}
	if err := a.guard(domain.RoleApplicant); err != nil {
		return err
	}

	switch args[0] {
	case "upload":
		return a.resumeUpload(args[1:])
	case "parse":
		return a.resumeParse(args[1:])
	case "export":
		return a.resumeExport(args[1:])
	default:
		return fmt.Errorf("unknown resume subcommand: %s", args[0])
	}
}

func (a *app) resumeUpload(args []string) error {
	fs := flag.NewFlagSet("resume upload", flag.ExitOnError)
	path := fs.String("file", "", "Path to the resume file")
	fs.Parse(args)

	f, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer f.Close()

	stored, err := a.client.UploadResume(context.Background(), filepath.Base(*path), f)
	if err != nil {
		return err
	}
	fmt.Printf("Uploaded %s (%d bytes), file id %s\n", stored.Name, stored.Size, stored.ID)
	return nil
}

func (a *app) resumeParse(args []string) error {
	fs := flag.NewFlagSet("resume parse", flag.ExitOnError)
	fileID := fs.String("file-id", "", "Uploaded resume file id")
	fs.Parse(args)

	id, err := uuid.Parse(*fileID)
	if err != nil {
		return fmt.Errorf("invalid --file-id: %w", err)
	}
	parsed, err := a.client.ParseResume(context.Background(), id)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\nSkills: %v\n", parsed.Name, parsed.Email, parsed.Skills)
	for _, exp := range parsed.Experience {
		fmt.Printf("  %s - %s\n", exp.Company, exp.Title)
	}
	return nil
}

func (a *app) resumeExport(args []string) error {
	fs := flag.NewFlagSet("resume export", flag.ExitOnError)
	contentPath := fs.String("content-file", "", "File holding the resume content")
	out := fs.String("out", "resume.pdf", "Output PDF path")
	fs.Parse(args)

	content, err := os.ReadFile(*contentPath)
	if err != nil {
		return err
	}
	pdf, err := a.client.ExportResumePDF(context.Background(), string(content))
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, pdf, 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d bytes)\n", *out, len(pdf))
	return nil
}

func (a *app) aiCmd(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: talentctl ai <analyze|resume|cover-letter> [options]")
	}
	if err := a.guard(domain.RoleApplicant); err != nil {
		return err
	}

	fs := flag.NewFlagSet("ai", flag.ExitOnError)
	descPath := fs.String("job-file", "", "File holding the job description")
	resumePath := fs.String("resume-file", "", "File holding the resume text (optional)")
	tone := fs.String("tone", "", "Generation tone (optional)")
	fs.Parse(args[1:])

	description, err := os.ReadFile(*descPath)
	if err != nil {
		return err
	}
	var resume string
	if *resumePath != "" {
		data, err := os.ReadFile(*resumePath)
		if err != nil {
			return err
		}
		resume = string(data)
	}

	ctx := context.Background()
	switch args[0] {
	case "analyze":
		analysis, err := a.client.AnalyzeJob(ctx, domain.AnalyzeJobInput{
			JobDescription: string(description),
			Resume:         resume,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Match score: %d\n%s\n", analysis.MatchScore, analysis.Summary)
		for _, s := range analysis.Strengths {
			fmt.Printf("  + %s\n", s)
		}
		for _, g := range analysis.Gaps {
			fmt.Printf("  - %s\n", g)
		}
		return nil
	case "resume", "cover-letter":
		input := domain.GenerateInput{
			JobDescription: string(description),
			Resume:         resume,
			Tone:           *tone,
		}
		var doc *domain.GeneratedDocument
		if args[0] == "resume" {
			doc, err = a.client.GenerateResume(ctx, input)
		} else {
			doc, err = a.client.GenerateCoverLetter(ctx, input)
		}
		if err != nil {
			return err
		}
		fmt.Println(doc.Content)
		return nil
	default:
		return fmt.Errorf("unknown ai subcommand: %s", args[0])
	}
}

func (a *app) chatCmd(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: talentctl chat <send|history|suggestions|watch> [options]")
	}
	if err := a.guard(""); err != nil {
		return err
	}

	ctx := context.Background()
	switch args[0] {
	case "send":
		fs := flag.NewFlagSet("chat send", flag.ExitOnError)
		message := fs.String("message", "", "Message to the career assistant")
		fs.Parse(args[1:])

		reply, err := a.client.SendChatMessage(ctx, *message)
		if err != nil {
			return err
		}
		fmt.Printf("assistant: %s\n", reply.Content)
		return nil
	case "history":
		history, err := a.client.ChatHistory(ctx)
		if err != nil {
			return err
		}
		for _, msg := range history {
			fmt.Printf("%s: %s\n", msg.Sender, msg.Content)
		}
		return nil
	case "suggestions":
		suggestions, err := a.client.ChatSuggestions(ctx)
		if err != nil {
			return err
		}
		for _, s := range suggestions {
			fmt.Printf("  %s\n", s)
		}
		return nil
	case "watch":
		stream, err := a.client.OpenChatStream(ctx)
		if err != nil {
			return err
		}
		defer stream.Close()

		fmt.Println("Watching chat (Ctrl-C to stop)...")
		for {
			msg, err := stream.Next()
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", msg.Sender, msg.Content)
		}
	default:
		return fmt.Errorf("unknown chat subcommand: %s", args[0])
	}
}
