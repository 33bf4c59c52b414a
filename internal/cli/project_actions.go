package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/projects/internal/cli/formatter"
	"github.com/alexanderramin/projects/internal/domain"
)

func projectActions() []MenuAction {
	return []MenuAction{
		{Code: 1, Label: "1) Add a project", Run: createProject},
		{Code: 2, Label: "2) List projects", Run: listProjects},
		{Code: 3, Label: "3) View a project", Run: viewProject},
		{Code: 4, Label: "4) Delete a project", Run: deleteProject},
	}
}

// createProject prompts for each project field in turn and hands the draft
// to the project service. No field is required here.
func createProject(ctx context.Context, m *Menu) error {
	name := m.in.ReadLine("Enter the project name")
	estimatedHours, err := m.in.ReadDecimal("Enter the estimated hours")
	if err != nil {
		return err
	}
	actualHours, err := m.in.ReadDecimal("Enter the actual hours")
	if err != nil {
		return err
	}
	difficulty, err := m.in.ReadInt("Enter the project difficulty (1-5)")
	if err != nil {
		return err
	}
	notes := m.in.ReadLine("Enter the project notes")

	if m.in.Exhausted() {
		return errIncompleteInput
	}

	draft := &domain.ProjectDraft{
		Name:           name,
		EstimatedHours: estimatedHours,
		ActualHours:    actualHours,
		Difficulty:     difficulty,
		Notes:          notes,
	}

	project, err := m.projects.Create(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "You have successfully created project: %s\n", project)
	return nil
}

func listProjects(ctx context.Context, m *Menu) error {
	projects, err := m.projects.List(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "\n%s\n", formatter.FormatProjectList(projects))
	return nil
}

func viewProject(ctx context.Context, m *Menu) error {
	number, err := m.in.ReadInt("Enter a project number")
	if err != nil {
		return err
	}
	if number == nil {
		fmt.Fprintln(m.out, "\nNo project selected.")
		return nil
	}

	project, err := m.projects.GetByNumber(ctx, *number)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "\n%s\n", formatter.FormatProjectDetail(project))
	return nil
}

func deleteProject(ctx context.Context, m *Menu) error {
	number, err := m.in.ReadInt("Enter the number of the project to delete")
	if err != nil {
		return err
	}
	if number == nil {
		fmt.Fprintln(m.out, "\nNo project selected.")
		return nil
	}

	project, err := m.projects.Delete(ctx, *number)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "\nDeleted project: %s\n", project)
	return nil
}
