// Package file_handler implements the deletion tools. Both require a
// literal French confirmation token choosing between recoverable trash and
// permanent removal, and directory deletion refuses non-empty directories.
package file_handler

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/djherbis/times"
	"github.com/mark3labs/mcp-go/mcp"

	"DocuOps/internal/filetype"
	"DocuOps/internal/models"
	"DocuOps/internal/pathguard"
	"DocuOps/pkg/logger"
	"DocuOps/pkg/tools/docops/toolresult"
)

// Confirmation tokens. The tool descriptions spell these out; anything else
// is refused without touching the file.
const (
	ConfirmTrash     = "CORBEILLE"
	ConfirmPermanent = "SUPPRESSION DÉFINITIVE"
)

// maxListedContents caps how many entries a refused directory deletion
// names in its result.
const maxListedContents = 10

// Handler handles the file management tool requests.
type Handler struct {
	guard *pathguard.Guard
	log   *logger.Logger
}

// NewHandler creates a new file management handler.
func NewHandler(guard *pathguard.Guard, log *logger.Logger) *Handler {
	return &Handler{guard: guard, log: log}
}

// HandleDeleteFile deletes a single file, either into the trash or
// permanently depending on the confirmation token. Directories are refused.
func (h *Handler) HandleDeleteFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("filepath")
	if err != nil {
		return nil, err
	}
	confirm, err := req.RequireString("confirm")
	if err != nil {
		return nil, err
	}

	log := h.log.WithTool("delete_file").WithPath(path)
	validPath, err := h.guard.Validate(path)
	if err != nil {
		log.WithError(err).Error("path rejected")
		return toolresult.Error(models.DeletionResult{Path: path, Error: err.Error()}), nil
	}

	info, err := os.Stat(validPath)
	if err != nil {
		log.WithError(err).Error("stat failed")
		return toolresult.Error(models.DeletionResult{Path: validPath, Error: err.Error()}), nil
	}
	if info.IsDir() {
		log.Warn("directory passed to delete_file")
		return toolresult.Error(models.DeletionResult{
			Path:  validPath,
			Error: fmt.Sprintf("%s is a directory; use delete_directory", validPath),
		}), nil
	}

	result := models.DeletionResult{
		Path:     validPath,
		MimeType: filetype.DetectMime(validPath),
	}
	if ts, err := times.Stat(validPath); err == nil {
		result.Modified = ts.ModTime().Format(time.RFC3339)
	}

	switch confirm {
	case ConfirmTrash:
		trashed, err := moveToTrash(validPath)
		if err != nil {
			log.WithError(err).Error("trash failed")
			result.Error = err.Error()
			return toolresult.Error(result), nil
		}
		result.Success = true
		result.Deleted = true
		result.Method = "trash"
		result.Message = fmt.Sprintf("moved to trash as %s; recoverable from there", trashed)

	case ConfirmPermanent:
		if err := os.Remove(validPath); err != nil {
			log.WithError(err).Error("delete failed")
			result.Error = err.Error()
			return toolresult.Error(result), nil
		}
		result.Success = true
		result.Deleted = true
		result.Method = "permanent"
		result.Message = "permanently deleted; this cannot be undone"

	default:
		log.Warn("bad confirmation token")
		result.Error = fmt.Sprintf(
			"confirmation required: pass %q to move to trash or %q to delete permanently; nothing was deleted",
			ConfirmTrash, ConfirmPermanent,
		)
		return toolresult.Error(result), nil
	}

	log.Info("file deleted")
	return toolresult.JSON(result), nil
}

// HandleDeleteDirectory deletes an empty directory. A non-empty directory
// is refused regardless of the token, reporting the item count and the
// first few entry names.
func (h *Handler) HandleDeleteDirectory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("dirpath")
	if err != nil {
		return nil, err
	}
	confirm, err := req.RequireString("confirm")
	if err != nil {
		return nil, err
	}

	log := h.log.WithTool("delete_directory").WithPath(path)
	validPath, err := h.guard.Validate(path)
	if err != nil {
		log.WithError(err).Error("path rejected")
		return toolresult.Error(models.DeletionResult{Path: path, Error: err.Error()}), nil
	}

	info, err := os.Stat(validPath)
	if err != nil {
		log.WithError(err).Error("stat failed")
		return toolresult.Error(models.DeletionResult{Path: validPath, Error: err.Error()}), nil
	}
	if !info.IsDir() {
		log.Warn("file passed to delete_directory")
		return toolresult.Error(models.DeletionResult{
			Path:  validPath,
			Error: fmt.Sprintf("%s is not a directory; use delete_file", validPath),
		}), nil
	}

	entries, err := os.ReadDir(validPath)
	if err != nil {
		log.WithError(err).Error("read failed")
		return toolresult.Error(models.DeletionResult{Path: validPath, Error: err.Error()}), nil
	}
	if len(entries) > 0 {
		names := make([]string, 0, min(len(entries), maxListedContents))
		for _, entry := range entries[:min(len(entries), maxListedContents)] {
			names = append(names, entry.Name())
		}
		uerr := &models.UnsupportedOperationError{
			Op:     "delete_directory",
			Path:   validPath,
			Reason: fmt.Sprintf("directory is not empty (%d item(s)); remove its contents first", len(entries)),
		}
		log.WithError(uerr).Warn("non-empty directory refused")
		return toolresult.Error(models.DeletionResult{
			Path:      validPath,
			ItemCount: len(entries),
			Contents:  names,
			Error:     uerr.Error(),
		}), nil
	}

	result := models.DeletionResult{Path: validPath}
	switch confirm {
	case ConfirmTrash:
		trashed, err := moveToTrash(validPath)
		if err != nil {
			log.WithError(err).Error("trash failed")
			result.Error = err.Error()
			return toolresult.Error(result), nil
		}
		result.Success = true
		result.Deleted = true
		result.Method = "trash"
		result.Message = fmt.Sprintf("moved to trash as %s; recoverable from there", trashed)

	case ConfirmPermanent:
		if err := os.Remove(validPath); err != nil {
			log.WithError(err).Error("delete failed")
			result.Error = err.Error()
			return toolresult.Error(result), nil
		}
		result.Success = true
		result.Deleted = true
		result.Method = "permanent"
		result.Message = "permanently deleted; this cannot be undone"

	default:
		log.Warn("bad confirmation token")
		result.Error = fmt.Sprintf(
			"confirmation required: pass %q to move to trash or %q to delete permanently; nothing was deleted",
			ConfirmTrash, ConfirmPermanent,
		)
		return toolresult.Error(result), nil
	}

	log.Info("directory deleted")
	return toolresult.JSON(result), nil
}
