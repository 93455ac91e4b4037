package service

import (
	"github.com/alexanderramin/goalaudit/internal/app"
)

// ExportService runs the clinical goal audit and writes the export file.
type ExportService interface {
	app.ExportUseCase
}

// ImportService loads case files into the case store.
type ImportService interface {
	app.ImportCaseUseCase
}

// ContextService selects and lists stored cases.
type ContextService interface {
	app.ContextUseCase
}
