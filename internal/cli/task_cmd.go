package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/fulfill/internal/cli/formatter"
	"github.com/alexanderramin/fulfill/internal/domain"
	"github.com/alexanderramin/fulfill/internal/service"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskStatusCmd(app),
		newTaskEditCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

type taskFlags struct {
	client      string
	title       string
	description string
	priority    string
	status      string
	due         string
}

func (f *taskFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.client, "client", "c", "", "Client id or name")
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "Task title")
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&f.priority, "priority", "p", "", "Low, Medium or High")
	cmd.Flags().StringVar(&f.status, "status", "", "Not Started, In Progress or Completed")
	cmd.Flags().StringVar(&f.due, "due", "", "Due date (YYYY-MM-DD)")
}

// input overlays the set flags on base.
func (f *taskFlags) input(cmd *cobra.Command, app *App, base domain.TaskInput) (domain.TaskInput, error) {
	in := base
	changed := cmd.Flags().Changed
	if changed("client") {
		id, err := resolveClientID(cmd.Context(), app, f.client)
		if err != nil {
			return in, err
		}
		in.ClientID = id
	}
	if changed("title") {
		in.Title = f.title
	}
	if changed("description") {
		in.Description = f.description
	}
	if changed("priority") {
		p, err := domain.ParsePriority(f.priority)
		if err != nil {
			return in, err
		}
		in.Priority = p
	}
	if changed("status") {
		st, err := domain.ParseStatus(f.status)
		if err != nil {
			return in, err
		}
		in.Status = st
	}
	if changed("due") {
		due, err := parseDateFlag("due", f.due)
		if err != nil {
			return in, err
		}
		in.DueDate = ""
		if due != nil {
			in.DueDate = *due
		}
	}
	return in, nil
}

func newTaskAddCmd(app *App) *cobra.Command {
	var flags taskFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task for a client",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.input(cmd, app, domain.TaskInput{})
			if err != nil {
				return err
			}
			t, err := app.Tasks.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s %s\n", formatter.Bold(t.Title), formatter.Dim("("+t.ID+")"))
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var client, status string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter service.TaskFilter
			if client != "" {
				id, err := resolveClientID(cmd.Context(), app, client)
				if err != nil {
					return err
				}
				filter.ClientID = id
			}
			if status != "" {
				st, err := domain.ParseStatus(status)
				if err != nil {
					return err
				}
				filter.Status = st
			}

			tasks, err := app.Tasks.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}
			clients, err := app.Clients.List(cmd.Context(), service.ListOptions{})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(tasks, clients, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&client, "client", "c", "", "Only tasks of this client")
	cmd.Flags().StringVar(&status, "status", "", "Only tasks with this status")
	return cmd
}

func newTaskStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <task-id> <status>",
		Short: "Move a task to Not Started, In Progress or Completed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := domain.ParseStatus(args[1])
			if err != nil {
				return err
			}
			t, err := app.Tasks.SetStatus(cmd.Context(), args[0], st)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.Bold(t.Title), formatter.StatusPill(t.Status))
			return nil
		},
	}
}

func newTaskEditCmd(app *App) *cobra.Command {
	var flags taskFlags

	cmd := &cobra.Command{
		Use:   "edit <task-id>",
		Short: "Change a task; unset flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := app.Tasks.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			in, err := flags.input(cmd, app, domain.TaskInput{
				ClientID:    current.ClientID,
				Title:       current.Title,
				Description: current.Description,
				Priority:    current.Priority,
				Status:      current.Status,
				DueDate:     current.DueDate,
			})
			if err != nil {
				return err
			}
			t, err := app.Tasks.Update(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", formatter.Bold(t.Title))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <task-id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", formatter.Dim(args[0]))
			return nil
		},
	}
}
