package export

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/benshabbat/receipt-scanner/internal/entity"
)

// Service produces XLSX bytes for a parsed receipt so the result can be
// handed off for review or bookkeeping.
type Service struct {
	sheet  string
	logger *slog.Logger
}

func NewService(sheetName string, logger *slog.Logger) *Service {
	if sheetName == "" {
		sheetName = "Receipt"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{sheet: sheetName, logger: logger}
}

// ReceiptXLSX returns an XLSX workbook (as bytes) with one row per item plus
// store, date and total summary rows. Line totals are computed here, at
// presentation time — the engine stores unit prices.
func (s *Service) ReceiptXLSX(rec *entity.Receipt) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("close workbook", "error", cerr)
		}
	}()

	if _, err := f.NewSheet(s.sheet); err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}
	if defaultSheet := f.GetSheetName(0); defaultSheet != s.sheet {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return nil, fmt.Errorf("drop default sheet: %w", err)
		}
	}
	activeIndex, _ := f.GetSheetIndex(s.sheet)
	f.SetActiveSheet(activeIndex)

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(s.sheet, cell, v)
	}

	write(1, 1, "Store")
	write(2, 1, rec.StoreName)
	write(1, 2, "Date")
	write(2, 2, rec.Date.Format("2006-01-02"))

	headers := []string{"Item", "Category", "Quantity", "Unit Price", "Line Total"}
	const headerRow = 4
	for i, h := range headers {
		write(i+1, headerRow, h)
	}

	row := headerRow + 1
	for _, it := range rec.Items {
		write(1, row, it.Name)
		write(2, row, it.Category)
		write(3, row, it.Quantity)
		write(4, row, it.Price)
		write(5, row, it.LineTotal())
		row++
	}

	row++
	write(1, row, "Total")
	total := rec.TotalAmount
	if total == 0 {
		total = rec.ItemsSum()
	}
	write(5, row, total)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Debug("export.xlsx",
		"store", rec.StoreName,
		"items", len(rec.Items),
		"bytes", buf.Len(),
	)
	return buf.Bytes(), nil
}
