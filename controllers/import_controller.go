package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mu6a9922/v3/app"
	"github.com/Mu6a9922/v3/importer"
)

type ImportController struct{ *Srv }

func NewImportController(s *Srv) *ImportController { return &ImportController{Srv: s} }

// ImportExcel accepts a workbook upload, stages its rows and reports
// per-row validation warnings without failing the whole batch.
func (ic *ImportController) ImportExcel(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "file is required"})
		return
	}
	if !importer.AllowedFile(fh.Filename, fh.Header.Get("Content-Type")) {
		c.JSON(http.StatusBadRequest, app.H{"error": "unsupported file type, expected .xlsx or .xls"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to read uploaded file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to read uploaded file"})
		return
	}

	rows, err := importer.ParseWorkbook(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "failed to read Excel file: " + err.Error()})
		return
	}

	res, err := ic.Repo.ImportComputers(c.Request.Context(), rows, ic.Cfg.ImportHeaderRows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "import failed"})
		return
	}

	reply := app.H{
		"success":   true,
		"count":     res.Inserted,
		"totalRows": res.Total,
		"batchId":   res.BatchID,
		"message":   fmt.Sprintf("Successfully imported %d records", res.Inserted),
	}
	if n := len(res.Errors); n > 0 {
		shown := n
		if shown > 10 {
			shown = 10
		}
		warnings := append([]string{}, res.Errors[:shown]...)
		if n > 10 {
			warnings = append(warnings, fmt.Sprintf("... and %d more errors", n-10))
		}
		reply["warnings"] = warnings
		reply["warningCount"] = n
		reply["message"] = fmt.Sprintf("Imported %d records with %d warnings", res.Inserted, n)
	}
	c.JSON(http.StatusOK, reply)
}

func (ic *ImportController) ListImported(c *gin.Context) {
	rows, err := ic.Repo.ListImportedComputers(c.Request.Context(), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "failed to list imported records"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Migrate promotes staged rows into the computers table. A short-lived
// Redis lock keeps concurrent migrations from racing each other; the
// unique indexes remain the backstop when Redis is down.
func (ic *ImportController) Migrate(c *gin.Context) {
	ok, err := ic.Cache.AcquireMigrateLock(c.Request.Context())
	if err != nil || !ok {
		c.JSON(http.StatusConflict, app.H{"error": "migration already in progress"})
		return
	}
	defer ic.Cache.ReleaseMigrateLock(c.Request.Context())

	res, err := ic.Repo.MigrateImported(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "migration failed"})
		return
	}

	errs := res.Errors
	if len(errs) > 10 {
		errs = append([]string{}, errs[:10]...)
		errs = append(errs, fmt.Sprintf("... and %d more errors", len(res.Errors)-10))
	}
	if errs == nil {
		errs = []string{}
	}
	c.JSON(http.StatusOK, app.H{
		"success":       true,
		"migratedCount": res.Migrated,
		"totalImported": res.Total,
		"errors":        errs,
	})
}

// SearchInventory resolves an inventory number to whichever table holds it.
func (ic *ImportController) SearchInventory(c *gin.Context) {
	number := c.Param("number")
	match, err := ic.Repo.SearchInventory(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"message": "device not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, match)
}
