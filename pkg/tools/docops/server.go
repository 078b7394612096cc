// Package docops assembles the document-operations MCP server: it wires the
// handlers for Word, Excel, PDF and file management tools onto one server
// instance and exposes the capability matrix as a resource.
package docops

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"DocuOps/internal/config"
	"DocuOps/internal/models"
	"DocuOps/internal/pathguard"
	"DocuOps/pkg/docrender"
	"DocuOps/pkg/logger"
	"DocuOps/pkg/tools/docops/excel_handler"
	"DocuOps/pkg/tools/docops/file_handler"
	"DocuOps/pkg/tools/docops/pdf_handler"
	"DocuOps/pkg/tools/docops/word_handler"
)

// NewServer creates the document-operations MCP server with every tool
// registered. allowedDirs come from the config; paths outside them are
// rejected by every handler.
func NewServer(cfg *config.AppConfig, log *logger.Logger) (*server.MCPServer, error) {
	guard, err := pathguard.New(cfg.Server.AllowedDirs)
	if err != nil {
		return nil, err
	}
	renderer := docrender.New(docrender.StyleFromConfig(cfg.Document))

	wh := word_handler.NewHandler(guard, renderer, log)
	eh := excel_handler.NewHandler(guard, log)
	ph := pdf_handler.NewHandler(guard, log)
	fh := file_handler.NewHandler(guard, log)

	s := server.NewMCPServer(
		cfg.App.Name,
		cfg.App.Version,
		server.WithResourceCapabilities(true, true),
	)

	s.AddResource(mcp.NewResource(
		"capabilities://",
		"Server Capabilities",
		mcp.WithResourceDescription("What document operations this server supports"),
		mcp.WithMIMEType("application/json"),
	), capabilitiesHandler(cfg))

	// --- Word tools ---
	s.AddTool(mcp.NewTool("create_word_document",
		mcp.WithDescription("Creates a new Word document containing the given text as a single paragraph."),
		mcp.WithString("filepath", mcp.Required(), mcp.Description("Path for the new .docx file.")),
		mcp.WithString("content", mcp.Description("Initial paragraph text. Empty creates a blank document.")),
	), wh.HandleCreateDocument)

	s.AddTool(mcp.NewTool("create_formatted_word_document",
		mcp.WithDescription("Creates a styled Word document from a JSON description with title, subtitle, header, footer and typed sections (heading, paragraph, bullet_list, numbered_list, table, key_value_table, page_break, spacer). Paragraph text supports **bold** spans."),
		mcp.WithString("filepath", mcp.Required(), mcp.Description("Path for the new .docx file.")),
		mcp.WithString("document_data", mcp.Required(), mcp.Description("JSON document description with a \"sections\" array.")),
	), wh.HandleCreateFormatted)

	s.AddTool(mcp.NewTool("read_word_document_structure",
		mcp.WithDescription("Reads the structural fingerprint of a Word document: table dimensions, column widths, row heights, paragraph count, header/footer presence."),
		mcp.WithString("filepath", mcp.Required(), mcp.Description("Path to the .docx file to inspect.")),
	), wh.HandleReadStructure)

	s.AddTool(mcp.NewTool("compare_word_documents",
		mcp.WithDescription("Compares the structural fingerprints of two Word documents and reports every difference."),
		mcp.WithString("filepath_1", mcp.Required(), mcp.Description("Path to the first .docx file.")),
		mcp.WithString("filepath_2", mcp.Required(), mcp.Description("Path to the second .docx file.")),
	), wh.HandleCompare)

	s.AddTool(mcp.NewTool("edit_word_document",
		mcp.WithDescription("Applies a JSON array of operations to an existing Word document: add_paragraph, add_heading, edit_paragraph, delete_paragraph."),
		mcp.WithString("filepath", mcp.Required(), mcp.Description("Path to the .docx file to edit.")),
		mcp.WithString("operations", mcp.Required(), mcp.Description("JSON array of operations, e.g. [{\"action\":\"add_heading\",\"text\":\"Intro\",\"level\":1}].")),
	), wh.HandleEdit)

	s.AddTool(mcp.NewTool("convert_txt_to_word",
		mcp.WithDescription("Converts a plain-text file to a Word document, one paragraph per non-blank line."),
		mcp.WithString("source_path", mcp.Required(), mcp.Description("Path to the text file to convert.")),
		mcp.WithString("target_path", mcp.Required(), mcp.Description("Path for the resulting .docx file.")),
	), wh.HandleConvertTxt)

	// --- Excel tools ---
	s.AddTool(mcp.NewTool("create_excel_file",
		mcp.WithDescription("Creates an Excel file from tabular content: a JSON array of arrays, or CSV text."),
		mcp.WithString("filepath", mcp.Required(), mcp.Description("Path for the new .xlsx file.")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Rows as a JSON array of arrays, or CSV lines.")),
	), eh.HandleCreateFile)

	s.AddTool(mcp.NewTool("edit_excel_file",
		mcp.WithDescription("Applies a JSON array of operations to an existing Excel file: update_cell, update_range, delete_row, delete_column, add_sheet, delete_sheet."),
		mcp.WithString("filepath", mcp.Required(), mcp.Description("Path to the .xlsx file to edit.")),
		mcp.WithString("operations", mcp.Required(), mcp.Description("JSON array of operations, e.g. [{\"action\":\"update_cell\",\"cell\":\"B2\",\"value\":42}].")),
	), eh.HandleEditFile)

	s.AddTool(mcp.NewTool("convert_csv_to_excel",
		mcp.WithDescription("Converts a CSV file to an Excel file, one sheet row per record."),
		mcp.WithString("source_path", mcp.Required(), mcp.Description("Path to the CSV file to convert.")),
		mcp.WithString("target_path", mcp.Required(), mcp.Description("Path for the resulting .xlsx file.")),
	), eh.HandleConvertCSV)

	// --- PDF tools ---
	s.AddTool(mcp.NewTool("create_pdf_file",
		mcp.WithDescription("Creates a PDF from plain text, one paragraph per line."),
		mcp.WithString("filepath", mcp.Required(), mcp.Description("Path for the new .pdf file.")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Text content of the PDF.")),
	), ph.HandleCreateFile)

	s.AddTool(mcp.NewTool("convert_word_to_pdf",
		mcp.WithDescription("Converts a Word document to PDF at the text level: paragraph text and order are preserved, page layout is not."),
		mcp.WithString("source_path", mcp.Required(), mcp.Description("Path to the .docx file to convert.")),
		mcp.WithString("target_path", mcp.Required(), mcp.Description("Path for the resulting .pdf file.")),
	), ph.HandleConvertWord)

	// --- File management tools ---
	s.AddTool(mcp.NewTool("delete_file",
		mcp.WithDescription("Deletes a file. Requires confirm=\"CORBEILLE\" to move it to the trash (recoverable) or confirm=\"SUPPRESSION DÉFINITIVE\" to delete permanently."),
		mcp.WithString("filepath", mcp.Required(), mcp.Description("Path to the file to delete.")),
		mcp.WithString("confirm", mcp.Required(), mcp.Description("Literal confirmation token: CORBEILLE or SUPPRESSION DÉFINITIVE.")),
	), fh.HandleDeleteFile)

	s.AddTool(mcp.NewTool("delete_directory",
		mcp.WithDescription("Deletes an empty directory with the same confirmation contract as delete_file. Non-empty directories are refused with their item count."),
		mcp.WithString("dirpath", mcp.Required(), mcp.Description("Path to the directory to delete.")),
		mcp.WithString("confirm", mcp.Required(), mcp.Description("Literal confirmation token: CORBEILLE or SUPPRESSION DÉFINITIVE.")),
	), fh.HandleDeleteDirectory)

	return s, nil
}

// capabilitiesHandler serves the capabilities:// resource.
func capabilitiesHandler(cfg *config.AppConfig) func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	caps := models.Capabilities{
		Name:        cfg.App.Name,
		Version:     cfg.App.Version,
		Description: "MCP server for document operations (Word, Excel, PDF) with file management",
		Operations: models.CapabilityOperations{
			Word: map[string]bool{
				"create": true, "create_formatted": true, "edit": true,
				"convert_from_txt": true, "analyze_structure": true, "compare": true,
			},
			Excel: map[string]bool{
				"create": true, "edit": true, "convert_from_csv": true,
			},
			PDF: map[string]bool{
				"create": true, "convert_from_word": true,
			},
			Files: map[string]bool{
				"delete_file": true, "delete_directory": true, "trash_support": true,
			},
		},
	}

	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := json.MarshalIndent(caps, "", "  ")
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
