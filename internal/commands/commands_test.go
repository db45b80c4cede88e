package commands_test

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"

	"caseshop/internal/app"
	"caseshop/internal/commands"
	"caseshop/internal/config"
	"caseshop/internal/exitcode"
	"caseshop/internal/service"
	"caseshop/internal/storage"
	"caseshop/internal/testutil"
)

const (
	email    = "ada@example.com"
	password = "secret1"
)

// env is a fake backend plus local state shared by consecutive runs.
type env struct {
	svc   *testutil.FakeService
	store *storage.MemoryStore
	quiet bool
}

func newEnv() *env {
	svc := testutil.NewFakeService()
	svc.AddUser("Ada", email, password)
	return &env{svc: svc, store: storage.NewMemoryStore()}
}

// signedInEnv is an env with a stored, valid token.
func signedInEnv(t *testing.T) *env {
	t.Helper()
	e := newEnv()
	if err := e.store.Set(context.Background(), storage.KeyToken, e.svc.IssueToken(email)); err != nil {
		t.Fatalf("failed to store token: %v", err)
	}
	return e
}

// start builds and starts an App the way the dispatcher does.
func (e *env) start(t *testing.T) *app.App {
	t.Helper()
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.Quiet = e.quiet
	a, err := app.New(app.Options{Config: cfg, Service: e.svc, Store: e.store})
	if err != nil {
		t.Fatalf("app: %v", err)
	}
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return a
}

// runCommand parses args with the command's flags and runs it against a
// freshly started App.
func runCommand(t *testing.T, e *env, cmd commands.Command, args ...string) (stdout, stderr string, code int, a *app.App) {
	t.Helper()
	a = e.start(t)
	stdout, stderr, code = runOn(t, a, cmd, args...)
	return stdout, stderr, code, a
}

func runOn(t *testing.T, a *app.App, cmd commands.Command, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	var outBuf, errBuf bytes.Buffer
	code = cmd.Run(context.Background(), a, fs.Args(), &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

// toast returns the visible notification message.
func toast(a *app.App) string {
	t, ok := a.Toasts.Current()
	if !ok {
		return ""
	}
	return t.Message
}

// firstColumn returns the leading integer of each output line.
func firstColumn(t *testing.T, out string) []int {
	t.Helper()
	var ids []int
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			t.Fatalf("line without leading number: %q", line)
		}
		ids = append(ids, id)
	}
	return ids
}

func assertCode(t *testing.T, want, got int) {
	t.Helper()
	if got != want {
		t.Errorf("expected exit code %d, got %d", want, got)
	}
}

func assertIDs(t *testing.T, want, got []int) {
	t.Helper()
	if fmt.Sprint(want) != fmt.Sprint(got) {
		t.Errorf("expected ids %v, got %v", want, got)
	}
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	stdout, stderr, code, _ := runCommand(t, newEnv(), &commands.VersionCmd{})

	assertCode(t, exitcode.Success, code)
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "caseshop 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	stdout, _, code, _ := runCommand(t, newEnv(), &commands.HelpCmd{})

	assertCode(t, exitcode.Success, code)
	if !strings.Contains(stdout, "Usage:") {
		t.Error("help output should contain 'Usage:'")
	}
	for _, cmd := range commands.DefaultRegistry.All() {
		if !strings.Contains(stdout, "caseshop "+cmd.Name()) {
			t.Errorf("help output does not mention %s", cmd.Name())
		}
	}
}

// Tests for products command
func TestProductsCommand_SortedByName(t *testing.T) {
	stdout, stderr, code, _ := runCommand(t, newEnv(), &commands.ProductsCmd{})

	assertCode(t, exitcode.Success, code)
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	assertIDs(t, []int{4, 2, 6, 5, 1, 3}, firstColumn(t, stdout))
	if !strings.Contains(stdout, "MacBook Pro Armor Case") || !strings.Contains(stdout, "out of stock") {
		t.Errorf("expected out of stock marker, got %q", stdout)
	}
}

func TestProductsCommand_SortByPrice(t *testing.T) {
	stdout, _, code, _ := runCommand(t, newEnv(), &commands.ProductsCmd{}, "--sort", "price")

	assertCode(t, exitcode.Success, code)
	assertIDs(t, []int{2, 4, 1, 5, 6, 3}, firstColumn(t, stdout))
}

func TestProductsCommand_CategoryAndSearch(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []int
	}{
		{"category", []string{"--category", "premium"}, []int{1}},
		{"search flag", []string{"--search", "CASE"}, []int{4, 6, 1, 3}},
		{"search argument", []string{"folio"}, []int{5}},
		{"category and search", []string{"--category", "laptop", "--search", "galaxy"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, code, _ := runCommand(t, newEnv(), &commands.ProductsCmd{}, tt.args...)
			assertCode(t, exitcode.Success, code)
			if tt.want == nil {
				if stdout != "no products match\n" {
					t.Errorf("expected empty result, got %q", stdout)
				}
				return
			}
			assertIDs(t, tt.want, firstColumn(t, stdout))
		})
	}
}

func TestProductsCommand_InvalidFilters(t *testing.T) {
	_, stderr, code, _ := runCommand(t, newEnv(), &commands.ProductsCmd{}, "--sort", "cost")
	assertCode(t, exitcode.UserError, code)
	if stderr != "error: unknown sort key: cost\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}

	_, stderr, code, _ = runCommand(t, newEnv(), &commands.ProductsCmd{}, "--category", "watches")
	assertCode(t, exitcode.UserError, code)
	if stderr != "error: unknown category: watches\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestCategoriesCommand(t *testing.T) {
	stdout, _, code, _ := runCommand(t, newEnv(), &commands.CategoriesCmd{})

	assertCode(t, exitcode.Success, code)
	testutil.GoldenString(t, "categories", stdout)
}

// Tests for cart commands
func TestAddCommand_RequiresLogin(t *testing.T) {
	e := newEnv()
	stdout, stderr, code, a := runCommand(t, e, &commands.AddCmd{}, "1")

	assertCode(t, exitcode.AuthError, code)
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: not logged in (run: caseshop login)\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if got := toast(a); got != "Please login to add items to cart" {
		t.Errorf("unexpected toast %q", got)
	}
	if a.Cart.ItemCount() != 0 {
		t.Error("cart should be empty")
	}
}

func TestAddCommand_SignedIn(t *testing.T) {
	e := signedInEnv(t)
	stdout, stderr, code, a := runCommand(t, e, &commands.AddCmd{}, "--qty", "2", "iphone")

	assertCode(t, exitcode.Success, code)
	if stdout != "ok\n" || stderr != "" {
		t.Errorf("unexpected output %q / %q", stdout, stderr)
	}
	if got := toast(a); got != "iPhone 16 Pro Max Elite Case added to cart!" {
		t.Errorf("unexpected toast %q", got)
	}
	if a.Cart.ItemCount() != 2 {
		t.Errorf("expected 2 items, got %d", a.Cart.ItemCount())
	}

	recorded := e.svc.TasksOf(email)
	if len(recorded) != 1 || recorded[0].Title != "Order Processing: iPhone 16 Pro Max Elite Case" {
		t.Errorf("expected order task, got %+v", recorded)
	}
}

func TestAddCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no product", nil},
		{"unknown product", []string{"42"}},
		{"ambiguous name", []string{"pro"}},
		{"zero quantity", []string{"--qty", "0", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code, _ := runCommand(t, signedInEnv(t), &commands.AddCmd{}, tt.args...)
			assertCode(t, exitcode.UserError, code)
			if !strings.HasPrefix(stderr, "error: ") {
				t.Errorf("unexpected stderr %q", stderr)
			}
		})
	}
}

func TestCartCommand(t *testing.T) {
	e := signedInEnv(t)
	a := e.start(t)
	runOn(t, a, &commands.AddCmd{}, "-n", "2", "1")
	runOn(t, a, &commands.AddCmd{}, "2")

	// A later run sees the persisted cart.
	stdout, _, code, _ := runCommand(t, e, &commands.CartCmd{})

	assertCode(t, exitcode.Success, code)
	testutil.GoldenString(t, "cart", stdout)
}

func TestCartCommand_Empty(t *testing.T) {
	stdout, _, code, _ := runCommand(t, newEnv(), &commands.CartCmd{})
	assertCode(t, exitcode.Success, code)
	if stdout != "cart is empty\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
}

func TestQtyCommand(t *testing.T) {
	e := signedInEnv(t)
	a := e.start(t)
	runOn(t, a, &commands.AddCmd{}, "5")

	stdout, _, code := runOn(t, a, &commands.QtyCmd{}, "ipad", "3")
	assertCode(t, exitcode.Success, code)
	if stdout != "ok\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	if a.Cart.ItemCount() != 3 {
		t.Errorf("expected 3 items, got %d", a.Cart.ItemCount())
	}

	_, _, code = runOn(t, a, &commands.QtyCmd{}, "5", "0")
	assertCode(t, exitcode.Success, code)
	if len(a.Cart.Lines()) != 0 {
		t.Errorf("quantity 0 should remove the line, got %+v", a.Cart.Lines())
	}

	_, stderr, code := runOn(t, a, &commands.QtyCmd{}, "5", "many")
	assertCode(t, exitcode.UserError, code)
	if stderr != "error: invalid quantity: many\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestRemoveAndClearCommands(t *testing.T) {
	e := signedInEnv(t)
	a := e.start(t)
	runOn(t, a, &commands.AddCmd{}, "1")
	runOn(t, a, &commands.AddCmd{}, "2")
	runOn(t, a, &commands.AddCmd{}, "4")

	_, _, code := runOn(t, a, &commands.RemoveCmd{}, "galaxy")
	assertCode(t, exitcode.Success, code)
	if got := toast(a); got != "Galaxy S24 Ultra Premium Skin removed from cart" {
		t.Errorf("unexpected toast %q", got)
	}
	if len(a.Cart.Lines()) != 2 {
		t.Errorf("expected 2 lines, got %d", len(a.Cart.Lines()))
	}

	_, _, code = runOn(t, a, &commands.ClearCmd{})
	assertCode(t, exitcode.Success, code)
	if len(a.Cart.Lines()) != 0 {
		t.Error("cart should be empty")
	}
	if e.store.Value(storage.KeyCartItems) != "[]" {
		t.Errorf("expected persisted empty cart, got %q", e.store.Value(storage.KeyCartItems))
	}
}

func TestCheckoutCommand(t *testing.T) {
	_, stderr, code, _ := runCommand(t, signedInEnv(t), &commands.CheckoutCmd{})
	assertCode(t, exitcode.UserError, code)
	if stderr != "error: cart is empty\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}

	e := signedInEnv(t)
	a := e.start(t)
	runOn(t, a, &commands.AddCmd{}, "1")
	_, _, code = runOn(t, a, &commands.CheckoutCmd{})
	assertCode(t, exitcode.Success, code)
	if got := toast(a); got != "Checkout feature coming soon!" {
		t.Errorf("unexpected toast %q", got)
	}
}

// Tests for wishlist commands
func TestWishCommand(t *testing.T) {
	_, _, code, anon := runCommand(t, newEnv(), &commands.WishCmd{}, "3")
	assertCode(t, exitcode.AuthError, code)
	if got := toast(anon); got != "Please login to add items to wishlist" {
		t.Errorf("unexpected toast %q", got)
	}

	e := signedInEnv(t)
	a := e.start(t)
	_, _, code = runOn(t, a, &commands.WishCmd{}, "macbook")
	assertCode(t, exitcode.Success, code)
	_, _, code = runOn(t, a, &commands.WishCmd{}, "3")
	assertCode(t, exitcode.Success, code)
	if got := toast(a); got != "Already in wishlist!" {
		t.Errorf("unexpected toast %q", got)
	}
	if len(a.Cart.Wishlist()) != 1 {
		t.Errorf("expected one wishlist item, got %d", len(a.Cart.Wishlist()))
	}

	stdout, _, _ := runOn(t, a, &commands.WishlistCmd{})
	assertIDs(t, []int{3}, firstColumn(t, stdout))

	_, _, code = runOn(t, a, &commands.UnwishCmd{}, "3")
	assertCode(t, exitcode.Success, code)
	stdout, _, _ = runOn(t, a, &commands.WishlistCmd{})
	if stdout != "wishlist is empty\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
}

// Tests for task commands
func seedTasks(e *env) {
	e.svc.AddTask(email, service.TaskDraft{Title: "Restock skins", Category: service.CategoryInventory})
	e.svc.AddTask(email, service.TaskDraft{Title: "Ship launch email", Status: service.StatusCompleted, Category: service.CategoryMarketing})
	e.svc.AddTask(email, service.TaskDraft{Title: "Review returns", Status: service.StatusInProgress, Priority: service.PriorityHigh})
}

func TestTasksCommand(t *testing.T) {
	e := signedInEnv(t)
	seedTasks(e)

	stdout, stderr, code, _ := runCommand(t, e, &commands.ListCmd{})

	assertCode(t, exitcode.Success, code)
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.GoldenString(t, "tasks", stdout)
}

func TestTasksCommand_FiltersKeepPositions(t *testing.T) {
	e := signedInEnv(t)
	seedTasks(e)

	stdout, _, code, _ := runCommand(t, e, &commands.ListCmd{}, "--status", "completed")
	assertCode(t, exitcode.Success, code)
	if stdout != "   2  [completed] Ship launch email  (medium, marketing)\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}

	stdout, _, _, _ = runCommand(t, e, &commands.ListCmd{}, "--category", "quality")
	if stdout != "no tasks\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
}

func TestTasksCommand_EmptyQuiet(t *testing.T) {
	e := signedInEnv(t)
	e.quiet = true

	stdout, _, code, _ := runCommand(t, e, &commands.ListCmd{})

	assertCode(t, exitcode.Success, code)
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

func TestTasksCommand_InvalidFilter(t *testing.T) {
	_, stderr, code, _ := runCommand(t, signedInEnv(t), &commands.ListCmd{}, "--status", "blocked")
	assertCode(t, exitcode.UserError, code)
	if stderr != "error: invalid status: blocked\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestStatsCommand(t *testing.T) {
	e := signedInEnv(t)
	seedTasks(e)

	stdout, _, code, _ := runCommand(t, e, &commands.StatsCmd{})

	assertCode(t, exitcode.Success, code)
	if stdout != "total 3  completed 1  pending 1  in-progress 1\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
}

func TestNewCommand(t *testing.T) {
	e := signedInEnv(t)
	stdout, _, code, a := runCommand(t, e, &commands.NewCmd{},
		"--priority", "high", "--category", "quality", "Inspect", "batch", "7")

	assertCode(t, exitcode.Success, code)
	if stdout != "ok\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	if got := toast(a); got != "Task created successfully!" {
		t.Errorf("unexpected toast %q", got)
	}
	saved := e.svc.TasksOf(email)
	if len(saved) != 1 {
		t.Fatalf("expected 1 task, got %d", len(saved))
	}
	if saved[0].Title != "Inspect batch 7" || saved[0].Priority != "high" || saved[0].Category != "quality" {
		t.Errorf("unexpected task %+v", saved[0])
	}
	if len(a.Tasks.Tasks()) != 1 {
		t.Error("created task should be in the local collection")
	}
}

func TestNewCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no title", nil, "error: title required\n"},
		{"bad priority", []string{"--priority", "urgent", "x"}, "error: invalid priority: urgent\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := signedInEnv(t)
			_, stderr, code, _ := runCommand(t, e, &commands.NewCmd{}, tt.args...)
			assertCode(t, exitcode.UserError, code)
			if stderr != tt.want {
				t.Errorf("expected %q, got %q", tt.want, stderr)
			}
			if e.svc.CallCount("CreateTask") != 0 {
				t.Error("no request should be made")
			}
		})
	}
}

func TestNewCommand_RevokedTokenEndsSession(t *testing.T) {
	e := signedInEnv(t)
	a := e.start(t)
	e.svc.RevokeToken(a.Session.Token())

	_, stderr, code := runOn(t, a, &commands.NewCmd{}, "x")

	assertCode(t, exitcode.AuthError, code)
	if !strings.HasPrefix(stderr, "error: auth error:") {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if a.Session.Current().Authenticated() {
		t.Error("session should be invalidated")
	}
	if e.store.Has(storage.KeyToken) {
		t.Error("token should be removed")
	}
}

func TestEditCommand(t *testing.T) {
	e := signedInEnv(t)
	seedTasks(e)
	a := e.start(t)

	_, _, code := runOn(t, a, &commands.EditCmd{}, "--title", "Restock all skins", "--priority", "low", "1")
	assertCode(t, exitcode.Success, code)
	got := e.svc.TasksOf(email)[0]
	if got.Title != "Restock all skins" || got.Priority != "low" || got.Category != "inventory" {
		t.Errorf("unexpected task %+v", got)
	}
	if toast(a) != "Task updated successfully!" {
		t.Errorf("unexpected toast %q", toast(a))
	}

	_, stderr, code := runOn(t, a, &commands.EditCmd{}, "1")
	assertCode(t, exitcode.UserError, code)
	if stderr != "error: nothing to change\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDoneCommand(t *testing.T) {
	e := signedInEnv(t)
	seedTasks(e)
	a := e.start(t)

	_, _, code := runOn(t, a, &commands.DoneCmd{}, "3")

	assertCode(t, exitcode.Success, code)
	if got := e.svc.TasksOf(email)[2].Status; got != service.StatusCompleted {
		t.Errorf("expected completed, got %s", got)
	}
	if a.Tasks.Stats().Completed != 2 {
		t.Errorf("expected 2 completed, got %d", a.Tasks.Stats().Completed)
	}
}

func TestRmCommand(t *testing.T) {
	e := signedInEnv(t)
	seedTasks(e)
	a := e.start(t)
	id := a.Tasks.Tasks()[0].ID

	_, _, code := runOn(t, a, &commands.RmCmd{}, id)

	assertCode(t, exitcode.Success, code)
	if len(e.svc.TasksOf(email)) != 2 {
		t.Errorf("expected 2 remaining tasks, got %d", len(e.svc.TasksOf(email)))
	}
	if toast(a) != "Task deleted successfully" {
		t.Errorf("unexpected toast %q", toast(a))
	}

	_, stderr, code := runOn(t, a, &commands.RmCmd{}, "9")
	assertCode(t, exitcode.UserError, code)
	if stderr != "error: task number out of range: 9\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestRmCommand_BackendError(t *testing.T) {
	e := signedInEnv(t)
	seedTasks(e)
	e.svc.DeleteTaskErr = fmt.Errorf("%w: connection refused", service.ErrTransport)

	_, stderr, code, a := runCommand(t, e, &commands.RmCmd{}, "1")

	assertCode(t, exitcode.BackendError, code)
	if !strings.HasPrefix(stderr, "error: backend error:") {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if toast(a) != "Error deleting task" {
		t.Errorf("unexpected toast %q", toast(a))
	}
	if len(a.Tasks.Tasks()) != 3 {
		t.Error("failed delete must keep the task")
	}
}

// Tests for pages
func TestHomeCommand(t *testing.T) {
	stdout, _, code, _ := runCommand(t, newEnv(), &commands.HomeCmd{})
	assertCode(t, exitcode.Success, code)
	testutil.GoldenString(t, "home_anonymous", stdout)

	stdout, _, _, _ = runCommand(t, signedInEnv(t), &commands.HomeCmd{})
	if !strings.Contains(stdout, "Signed in as Ada\n") {
		t.Errorf("expected signed in line, got %q", stdout)
	}
}

func TestShowCommand_RestrictedPages(t *testing.T) {
	tests := []struct {
		page  string
		title string
	}{
		{"dashboard", "Access Restricted"},
		{"profile", "Profile Access Required"},
	}

	for _, tt := range tests {
		t.Run(tt.page, func(t *testing.T) {
			stdout, _, code, a := runCommand(t, newEnv(), &commands.ShowCmd{}, tt.page)
			assertCode(t, exitcode.AuthError, code)
			if !strings.HasPrefix(stdout, tt.title+"\n") {
				t.Errorf("expected %q screen, got %q", tt.title, stdout)
			}
			if !a.Nav.AuthPrompt() {
				t.Error("auth prompt should be raised")
			}
		})
	}
}

func TestShowCommand_Dashboard(t *testing.T) {
	e := signedInEnv(t)
	seedTasks(e)

	stdout, _, code, _ := runCommand(t, e, &commands.DashboardCmd{})

	assertCode(t, exitcode.Success, code)
	if !strings.Contains(stdout, "total 3  completed 1  pending 1  in-progress 1\n") {
		t.Errorf("missing stats in %q", stdout)
	}
	if !strings.Contains(stdout, "   3  [in-progress] Review returns  (high, general)\n") {
		t.Errorf("missing task line in %q", stdout)
	}
}

func TestProfileCommand(t *testing.T) {
	e := signedInEnv(t)
	a := e.start(t)
	runOn(t, a, &commands.AddCmd{}, "--qty", "2", "1")

	stdout, _, code := runOn(t, a, &commands.ProfileCmd{})

	assertCode(t, exitcode.Success, code)
	for _, want := range []string{"Ada\n", "email         ada@example.com\n", "cart          2 item(s), $159.98\n", "tasks         1 (0 completed)\n"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("profile output missing %q:\n%s", want, stdout)
		}
	}
}

func TestShowCommand_UnknownPage(t *testing.T) {
	_, stderr, code, _ := runCommand(t, newEnv(), &commands.ShowCmd{}, "admin")
	assertCode(t, exitcode.UserError, code)
	if !strings.HasPrefix(stderr, "error: ") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for theme command
func TestThemeCommand(t *testing.T) {
	e := newEnv()
	a := e.start(t)

	stdout, _, _ := runOn(t, a, &commands.ThemeCmd{})
	if stdout != "light\n" {
		t.Errorf("expected light, got %q", stdout)
	}

	stdout, _, _ = runOn(t, a, &commands.ThemeCmd{}, "dark")
	if stdout != "dark\n" || e.store.Value(storage.KeyDarkMode) != "true" {
		t.Errorf("expected dark persisted, got %q / %q", stdout, e.store.Value(storage.KeyDarkMode))
	}

	stdout, _, _ = runOn(t, a, &commands.ThemeCmd{}, "toggle")
	if stdout != "light\n" || e.store.Value(storage.KeyDarkMode) != "false" {
		t.Errorf("expected light persisted, got %q / %q", stdout, e.store.Value(storage.KeyDarkMode))
	}

	_, stderr, code := runOn(t, a, &commands.ThemeCmd{}, "blue")
	assertCode(t, exitcode.UserError, code)
	if stderr != "error: unknown theme: blue\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for the registry
func TestRegistry_FindByAlias(t *testing.T) {
	tests := map[string]string{
		"list":   "tasks",
		"create": "new",
		"open":   "show",
		"shop":   "products",
		"signup": "register",
		"me":     "profile",
	}
	for alias, name := range tests {
		cmd, ok := commands.DefaultRegistry.Find(alias)
		if !ok {
			t.Errorf("alias %q not registered", alias)
			continue
		}
		if cmd.Name() != name {
			t.Errorf("alias %q resolves to %q, want %q", alias, cmd.Name(), name)
		}
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.VersionCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&commands.VersionCmd{}); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}
