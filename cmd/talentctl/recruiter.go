package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/google/uuid"
)

func (a *app) jobsCmd(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: talentctl jobs <list|create|update|delete> [options]")
	}
	if err := a.guard(domain.RoleRecruiter); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		return a.jobsList()
	case "create":
		return a.jobsCreate(args[1:])
	case "update":
		return a.jobsUpdate(args[1:])
	case "delete":
		return a.jobsDelete(args[1:])
	default:
		return fmt.Errorf("unknown jobs subcommand: %s", args[0])
	}
}

func (a *app) jobsList() error {
	jobs, err := a.client.ListJobs(context.Background())
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		fmt.Println("No job postings")
		return nil
	}
	for _, job := range jobs {
		fmt.Printf("%s  [%s]  %s\n", job.ID, job.Status, job.Title)
		if job.Location != "" {
			fmt.Printf("    %s", job.Location)
			if job.SalaryRange != "" {
				fmt.Printf("  (%s)", job.SalaryRange)
			}
			fmt.Println()
		}
	}
	return nil
}

func jobInputFlags(fs *flag.FlagSet) (title, description, location, salary, requirements, status *string) {
	title = fs.String("title", "", "Job title")
	description = fs.String("description", "", "Job description")
	location = fs.String("location", "", "Location")
	salary = fs.String("salary", "", "Salary range")
	requirements = fs.String("requirements", "", "Comma-separated requirements")
	status = fs.String("status", "", "Posting status (open|paused|closed)")
	return
}

func (a *app) jobsCreate(args []string) error {
	fs := flag.NewFlagSet("jobs create", flag.ExitOnError)
	title, description, location, salary, requirements, status := jobInputFlags(fs)
	fs.Parse(args)

	job, err := a.client.CreateJob(context.Background(), domain.JobInput{
		Title:        *title,
		Description:  *description,
		Location:     *location,
		SalaryRange:  *salary,
		Requirements: domain.Requirements(splitList(*requirements)),
		Status:       domain.JobStatus(*status),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created job %s: %s\n", job.ID, job.Title)
	return nil
}

func (a *app) jobsUpdate(args []string) error {
	fs := flag.NewFlagSet("jobs update", flag.ExitOnError)
	id := fs.String("id", "", "Job id")
	title, description, location, salary, requirements, status := jobInputFlags(fs)
	fs.Parse(args)

	jobID, err := uuid.Parse(*id)
	if err != nil {
		return fmt.Errorf("invalid --id: %w", err)
	}
	job, err := a.client.UpdateJob(context.Background(), jobID, domain.JobInput{
		Title:        *title,
		Description:  *description,
		Location:     *location,
		SalaryRange:  *salary,
		Requirements: domain.Requirements(splitList(*requirements)),
		Status:       domain.JobStatus(*status),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Updated job %s: %s\n", job.ID, job.Title)
	return nil
}

func (a *app) jobsDelete(args []string) error {
	fs := flag.NewFlagSet("jobs delete", flag.ExitOnError)
	id := fs.String("id", "", "Job id")
	yes := fs.Bool("yes", false, "Skip confirmation")
	fs.Parse(args)

	jobID, err := uuid.Parse(*id)
	if err != nil {
		return fmt.Errorf("invalid --id: %w", err)
	}
	if !*yes && !confirm(fmt.Sprintf("Delete job %s?", jobID)) {
		fmt.Println("Aborted")
		return nil
	}
	if err := a.client.DeleteJob(context.Background(), jobID); err != nil {
		return err
	}
	fmt.Println("Job deleted")
	return nil
}

func (a *app) candidatesCmd(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: talentctl candidates <list|status> [options]")
	}
	if err := a.guard(domain.RoleRecruiter); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		return a.candidatesList(args[1:])
	case "status":
		return a.candidateStatus(args[1:])
	default:
		return fmt.Errorf("unknown candidates subcommand: %s", args[0])
	}
}

func (a *app) candidatesList(args []string) error {
	fs := flag.NewFlagSet("candidates list", flag.ExitOnError)
	job := fs.String("job", "", "Narrow to one job id")
	fs.Parse(args)

	var jobID *uuid.UUID
	if *job != "" {
		id, err := uuid.Parse(*job)
		if err != nil {
			return fmt.Errorf("invalid --job: %w", err)
		}
		jobID = &id
	}

	candidates, err := a.client.ListCandidates(context.Background(), jobID)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		fmt.Println("No candidates")
		return nil
	}
	for _, c := range candidates {
		fmt.Printf("%s  [%s]  %s %s <%s>\n", c.ID, c.Status, c.FirstName, c.LastName, c.Email)
	}
	return nil
}

func (a *app) candidateStatus(args []string) error {
	fs := flag.NewFlagSet("candidates status", flag.ExitOnError)
	id := fs.String("id", "", "Candidate id")
	status := fs.String("status", "", "New pipeline status")
	fs.Parse(args)

	candidateID, err := uuid.Parse(*id)
	if err != nil {
		return fmt.Errorf("invalid --id: %w", err)
	}
	newStatus := domain.CandidateStatus(*status)
	if !newStatus.IsValid() {
		return domain.ErrInvalidCandidateStatus
	}

	candidate, err := a.client.UpdateCandidateStatus(context.Background(), candidateID, newStatus)
	if err != nil {
		return err
	}
	fmt.Printf("Candidate %s moved to %s\n", candidate.ID, candidate.Status)
	return nil
}
