package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mmynk/guestlist/internal/auth"
	"github.com/mmynk/guestlist/internal/guests"
	"github.com/mmynk/guestlist/internal/service"
	"github.com/mmynk/guestlist/internal/storage/memory"
	"github.com/mmynk/guestlist/pkg/api/apiconnect"
)

func startServer(t *testing.T) string {
	t.Helper()

	store, err := guests.Open(context.Background(), memory.New(), guests.DefaultKey)
	if err != nil {
		t.Fatalf("failed to open guest list: %v", err)
	}

	mux := http.NewServeMux()
	path, handler := apiconnect.NewGuestServiceHandler(service.NewGuestService(store))
	mux.Handle(path, handler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server.URL
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_AddListSelectDelete(t *testing.T) {
	url := startServer(t)

	out, err := run(t, "", "--server", url, "add", "--name", "Ana", "--age", "20", "--major", "--hobbies", "reading, chess")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(out, "Added guest 1") || !strings.Contains(out, "Hobbies: reading, chess") {
		t.Errorf("unexpected add output:\n%s", out)
	}

	if _, err := run(t, "", "--server", url, "add", "--name", "Bo", "--age", "33", "--hobbies", "golf"); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	out, err = run(t, "", "--server", url, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if out != "1\tAna\n2\tBo\n" {
		t.Errorf("unexpected list output: %q", out)
	}

	out, err = run(t, "", "--server", url, "select", "1")
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if !strings.Contains(out, "Adult:   yes") {
		t.Errorf("unexpected select output:\n%s", out)
	}

	out, err = run(t, "", "--server", url, "delete", "1")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !strings.Contains(out, "Selection cleared.") {
		t.Errorf("unexpected delete output:\n%s", out)
	}

	out, err = run(t, "", "--server", url, "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if out != "No guest selected.\n" {
		t.Errorf("unexpected show output: %q", out)
	}
}

func TestCLI_AddRejected(t *testing.T) {
	url := startServer(t)

	_, err := run(t, "", "--server", url, "add", "--name", "Lou", "--age", "15", "--major", "--hobbies", "art")
	if err == nil {
		t.Fatal("expected rejection")
	}
	if err.Error() != "guest rejected: a guest under 18 cannot be marked as an adult" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCLI_AddBadAge(t *testing.T) {
	_, err := run(t, "", "--server", "http://127.0.0.1:1", "add", "--name", "Ana", "--age", "twenty", "--hobbies", "x")
	if err == nil || !strings.Contains(err.Error(), "invalid age") {
		t.Errorf("expected invalid age error, got %v", err)
	}
}

func TestCLI_HashPassword(t *testing.T) {
	out, err := run(t, "correct horse battery\n", "hash-password")
	if err != nil {
		t.Fatalf("hash-password failed: %v", err)
	}

	a, err := auth.NewPasswordAuthenticator(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("output is not a bcrypt hash: %v", err)
	}
	if err := a.Authenticate(context.Background(), "correct horse battery"); err != nil {
		t.Errorf("hash does not match password: %v", err)
	}
}

func TestCLI_Timeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer slow.Close()

	if _, err := run(t, "", "--server", slow.URL, "--timeout", "20ms", "list"); err == nil {
		t.Error("expected timeout error")
	}
}
