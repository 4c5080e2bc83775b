package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"todoapp/internal/client/api"
	"todoapp/internal/common"
)

func (a *App) ownerID() int64 {
	if a.user == nil {
		return 0
	}
	return a.user.ID
}

// findTask fetches the owner's list and returns the task with the given id.
func (a *App) findTask(ctx context.Context, id int64) (*api.Task, error) {
	tasks, err := a.client.ListTasks(ctx, a.ownerID())
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id: %s", arg)
	}
	return id, nil
}

// List prints the owner's tasks, one per line, oldest first.
func (a *App) List(ctx context.Context) error {
	tasks, err := a.client.ListTasks(ctx, a.ownerID())
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks")
		return nil
	}
	for _, task := range tasks {
		mark := " "
		if task.IsDone {
			mark = "x"
		}
		fmt.Fprintf(a.out, "[%s] %d: %s\n", mark, task.ID, task.Title)
	}
	return nil
}

// Add creates a new task with the given title words joined by spaces.
func (a *App) Add(ctx context.Context, args []string) error {
	title := strings.Join(args, " ")
	task, err := a.client.CreateTask(ctx, title, a.ownerID())
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Added task %d\n", task.ID)
	return nil
}

// Done marks the task with the given id as completed.
func (a *App) Done(ctx context.Context, args []string) error {
	return a.setDone(ctx, args, true)
}

// Undone marks the task with the given id as not completed.
func (a *App) Undone(ctx context.Context, args []string) error {
	return a.setDone(ctx, args, false)
}

func (a *App) setDone(ctx context.Context, args []string, done bool) error {
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	task, err := a.findTask(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	task.IsDone = done
	if err := a.client.UpdateTask(ctx, task); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Updated task %d\n", id)
	return nil
}

// Rename changes the title of the task with the given id.
func (a *App) Rename(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	task, err := a.findTask(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	task.Title = strings.Join(args[1:], " ")
	if err := a.client.UpdateTask(ctx, task); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Updated task %d\n", id)
	return nil
}

// Remove deletes the task with the given id.
func (a *App) Remove(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.client.DeleteTask(ctx, id); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Deleted task %d\n", id)
	return nil
}

// CompleteAll marks every open task as completed and reports the count.
func (a *App) CompleteAll(ctx context.Context) error {
	n, err := a.client.CompleteAll(ctx, a.ownerID())
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Completed %d task(s)\n", n)
	return nil
}

// UncompleteAll reopens every completed task and reports the count.
func (a *App) UncompleteAll(ctx context.Context) error {
	n, err := a.client.UncompleteAll(ctx, a.ownerID())
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Reopened %d task(s)\n", n)
	return nil
}

// ClearDone deletes every completed task and reports the count.
func (a *App) ClearDone(ctx context.Context) error {
	n, err := a.client.DeleteCompleted(ctx, a.ownerID())
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Deleted %d task(s)\n", n)
	return nil
}
