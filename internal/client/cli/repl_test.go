package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Add(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "add")
	f.args = append(f.args, args)
	return nil
}
func (f *fakeExec) Done(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "done")
	f.args = append(f.args, args)
	return nil
}
func (f *fakeExec) Undone(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "undone")
	f.args = append(f.args, args)
	return nil
}
func (f *fakeExec) Rename(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "rename")
	f.args = append(f.args, args)
	return nil
}
func (f *fakeExec) Remove(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "rm")
	f.args = append(f.args, args)
	return nil
}
func (f *fakeExec) CompleteAll(ctx context.Context) error {
	f.calls = append(f.calls, "complete-all")
	return nil
}
func (f *fakeExec) UncompleteAll(ctx context.Context) error {
	f.calls = append(f.calls, "uncomplete-all")
	return nil
}
func (f *fakeExec) ClearDone(ctx context.Context) error {
	f.calls = append(f.calls, "clear-done")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"add buy milk",
		"list",
		"done 3",
		"rename 3 buy oat milk",
		"complete-all",
		"clear-done",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "add", "list", "done", "rename", "complete-all", "clear-done"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}

	if got := exec.args[0]; len(got) != 2 || got[0] != "buy" || got[1] != "milk" {
		t.Fatalf("add args mismatch: %v", got)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("add\ndone\nrename 3\nrm\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
