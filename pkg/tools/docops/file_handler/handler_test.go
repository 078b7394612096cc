package file_handler

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"DocuOps/internal/models"
	"DocuOps/internal/pathguard"
	"DocuOps/pkg/logger"
)

func newTestHandler(t *testing.T, dir string) *Handler {
	t.Helper()
	guard, err := pathguard.New([]string{dir})
	if err != nil {
		t.Fatalf("pathguard.New failed: %v", err)
	}
	return NewHandler(guard, logger.New("test"))
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: args}}
}

func decodeDeletion(t *testing.T, res *mcp.CallToolResult) models.DeletionResult {
	t.Helper()
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", res.Content[0])
	}
	var out models.DeletionResult
	if err := json.Unmarshal([]byte(text.Text), &out); err != nil {
		t.Fatalf("result is not JSON: %v\n%s", err, text.Text)
	}
	return out
}

func TestDeleteFileRequiresConfirmationToken(t *testing.T) {
	dir := t.TempDir()
	h := newTestHandler(t, dir)
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("keep me"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := h.HandleDeleteFile(context.Background(), callRequest(map[string]any{
		"filepath": path,
		"confirm":  "yes please",
	}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if !res.IsError {
		t.Error("expected error result for bad token")
	}
	out := decodeDeletion(t, res)
	if out.Deleted {
		t.Error("result claims deletion happened")
	}
	if _, err := os.Stat(path); err != nil {
		t.Error("file was touched despite bad token")
	}
}

func TestDeleteFilePermanent(t *testing.T) {
	dir := t.TempDir()
	h := newTestHandler(t, dir)
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("bye"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := h.HandleDeleteFile(context.Background(), callRequest(map[string]any{
		"filepath": path,
		"confirm":  ConfirmPermanent,
	}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %+v", res)
	}
	out := decodeDeletion(t, res)
	if !out.Deleted || out.Method != "permanent" {
		t.Errorf("got deleted=%v method=%q, want permanent deletion", out.Deleted, out.Method)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file still exists after permanent deletion")
	}
}

func TestDeleteFileToTrash(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	h := newTestHandler(t, dir)
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("recover me"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := h.HandleDeleteFile(context.Background(), callRequest(map[string]any{
		"filepath": path,
		"confirm":  ConfirmTrash,
	}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %+v", res)
	}
	out := decodeDeletion(t, res)
	if !out.Deleted || out.Method != "trash" {
		t.Errorf("got deleted=%v method=%q, want trash", out.Deleted, out.Method)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file still at original location after trashing")
	}

	home, _ := os.UserHomeDir()
	trashed := filepath.Join(home, ".local", "share", "Trash", "files", "doc.txt")
	if _, err := os.Stat(trashed); err != nil {
		t.Errorf("trashed file not found at %s: %v", trashed, err)
	}
	info := filepath.Join(home, ".local", "share", "Trash", "info", "doc.txt.trashinfo")
	if _, err := os.Stat(info); err != nil {
		t.Errorf("trashinfo record not found at %s: %v", info, err)
	}
}

func TestDeleteFileRefusesDirectory(t *testing.T) {
	dir := t.TempDir()
	h := newTestHandler(t, dir)
	sub := filepath.Join(dir, "subdir")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	res, err := h.HandleDeleteFile(context.Background(), callRequest(map[string]any{
		"filepath": sub,
		"confirm":  ConfirmPermanent,
	}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if !res.IsError {
		t.Error("expected error result for directory target")
	}
	if _, err := os.Stat(sub); err != nil {
		t.Error("directory was deleted by delete_file")
	}
}

func TestDeleteDirectoryRefusesNonEmpty(t *testing.T) {
	dir := t.TempDir()
	h := newTestHandler(t, dir)
	sub := filepath.Join(dir, "full")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		if err := os.WriteFile(filepath.Join(sub, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	res, err := h.HandleDeleteDirectory(context.Background(), callRequest(map[string]any{
		"dirpath": sub,
		"confirm": ConfirmPermanent,
	}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if !res.IsError {
		t.Error("expected error result for non-empty directory")
	}
	out := decodeDeletion(t, res)
	if out.ItemCount != 3 {
		t.Errorf("item_count = %d, want 3", out.ItemCount)
	}
	if len(out.Contents) != 3 {
		t.Errorf("contents lists %d entries, want 3", len(out.Contents))
	}
	if out.Deleted {
		t.Error("result claims deletion happened")
	}
	if entries, _ := os.ReadDir(sub); len(entries) != 3 {
		t.Error("directory contents were modified")
	}
}

func TestDeleteDirectoryEmpty(t *testing.T) {
	dir := t.TempDir()
	h := newTestHandler(t, dir)
	sub := filepath.Join(dir, "empty")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	res, err := h.HandleDeleteDirectory(context.Background(), callRequest(map[string]any{
		"dirpath": sub,
		"confirm": ConfirmPermanent,
	}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected error result: %+v", res)
	}
	if _, err := os.Stat(sub); !os.IsNotExist(err) {
		t.Error("empty directory still exists")
	}
}

func TestDeleteFileOutsideAllowedDirs(t *testing.T) {
	dir := t.TempDir()
	h := newTestHandler(t, dir)
	outside := filepath.Join(t.TempDir(), "outside.txt")
	if err := os.WriteFile(outside, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := h.HandleDeleteFile(context.Background(), callRequest(map[string]any{
		"filepath": outside,
		"confirm":  ConfirmPermanent,
	}))
	if err != nil {
		t.Fatalf("handler returned transport error: %v", err)
	}
	if !res.IsError {
		t.Error("expected error result for path outside allowed directories")
	}
	if _, err := os.Stat(outside); err != nil {
		t.Error("file outside allowed directories was deleted")
	}
}
